package world

import (
	"errors"
	"fmt"
)

// ErrInvalidState is wrapped by Load errors for malformed snapshots.
var ErrInvalidState = errors.New("invalid map state")

// TileState is the serialized form of a Tile.
type TileState struct {
	Explored    bool `json:"explored"`
	ScentAmount int  `json:"scentAmount"`
}

// CellState holds the serialized FOV substrate, indexed [x][y].
type CellState struct {
	Walkable    [][]bool `json:"walkable"`
	Transparent [][]bool `json:"transparent"`
}

// State is the plain structural snapshot of a Map. Tiles are indexed [x][y].
// CurrentScentValue is optional; zero means the level starts its counter
// again from ScentThreshold.
type State struct {
	Width             int           `json:"width"`
	Height            int           `json:"height"`
	Tiles             [][]TileState `json:"tiles"`
	Map               CellState     `json:"map"`
	CurrentScentValue int           `json:"currentScentValue,omitempty"`
}

// Save returns a snapshot of the map. FOV flags are not part of it.
func (m *Map) Save() *State {
	s := &State{
		Width:             m.width,
		Height:            m.height,
		Tiles:             make([][]TileState, m.width),
		Map:               CellState{Walkable: make([][]bool, m.width), Transparent: make([][]bool, m.width)},
		CurrentScentValue: m.currentScentValue,
	}
	for x := 0; x < m.width; x++ {
		s.Tiles[x] = make([]TileState, m.height)
		s.Map.Walkable[x] = make([]bool, m.height)
		s.Map.Transparent[x] = make([]bool, m.height)
		for y := 0; y < m.height; y++ {
			t := m.tiles[x][y]
			s.Tiles[x][y] = TileState{Explored: t.Explored, ScentAmount: t.ScentAmount}
			s.Map.Walkable[x][y] = m.fov.IsWalkable(x, y)
			s.Map.Transparent[x][y] = m.fov.IsTransparent(x, y)
		}
	}
	return s
}

// Load replaces the map with the snapshot. The map is left untouched when
// the snapshot is malformed. FOV is not recomputed; call ComputeFov after.
// A snapshot without a scent counter restarts it at ScentThreshold, so
// tiles stamped above that report a negative ScentStaleness until the
// counter catches up.
func (m *Map) Load(s *State) error {
	if err := s.validate(); err != nil {
		return err
	}

	m.width = s.Width
	m.height = s.Height
	m.fov = NewFov(s.Width, s.Height)
	m.tiles = make([][]Tile, s.Width)
	for x := 0; x < s.Width; x++ {
		m.tiles[x] = make([]Tile, s.Height)
		for y := 0; y < s.Height; y++ {
			m.tiles[x][y] = Tile{Explored: s.Tiles[x][y].Explored, ScentAmount: s.Tiles[x][y].ScentAmount}
			m.fov.SetCell(x, y, s.Map.Walkable[x][y], s.Map.Transparent[x][y])
		}
	}

	m.currentScentValue = s.CurrentScentValue
	if m.currentScentValue == 0 {
		m.currentScentValue = ScentThreshold
	}
	return nil
}

// LoadMap builds a new Map from a snapshot.
func LoadMap(s *State) (*Map, error) {
	m := &Map{}
	if err := m.Load(s); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *State) validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil snapshot", ErrInvalidState)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidState, s.Width, s.Height)
	}
	grids := map[string]int{
		"tiles":       len(s.Tiles),
		"walkable":    len(s.Map.Walkable),
		"transparent": len(s.Map.Transparent),
	}
	for name, n := range grids {
		if n != s.Width {
			return fmt.Errorf("%w: %s has %d columns, want %d", ErrInvalidState, name, n, s.Width)
		}
	}
	for x := 0; x < s.Width; x++ {
		if len(s.Tiles[x]) != s.Height || len(s.Map.Walkable[x]) != s.Height || len(s.Map.Transparent[x]) != s.Height {
			return fmt.Errorf("%w: column %d is not %d cells tall", ErrInvalidState, x, s.Height)
		}
	}
	return nil
}
