// Package world provides the tile grid of a dungeon level: wall/floor
// layout, field of view, explored state and the player scent field.
package world

import (
	"errors"
	"fmt"
	"math"
)

// ScentThreshold is the value the scent counter starts at on a fresh level.
// Monsters ignore scent weaker than this.
const ScentThreshold = 10

// Occupancy reports whether a blocking actor stands on a cell.
type Occupancy interface {
	IsBlocked(pos Position) bool
}

// Map is the grid of one dungeon level. It owns the tiles, the FOV
// substrate and the scent counter; all of them are replaced by Init or Load.
// Coordinates outside [0,Width)x[0,Height) panic.
type Map struct {
	width  int
	height int
	tiles  [][]Tile
	fov    *Fov

	currentScentValue int
}

// NewMap creates a map of the given size where every cell is a wall.
func NewMap(width, height int) *Map {
	m := &Map{}
	m.Init(width, height)
	return m
}

// Init (re)allocates the map with every cell a wall, every tile unexplored
// and the scent counter reset.
func (m *Map) Init(width, height int) {
	if width <= 0 || height <= 0 {
		panic("Map dimensions must be positive")
	}

	m.width = width
	m.height = height
	m.fov = NewFov(width, height)
	m.tiles = make([][]Tile, width)
	for x := range m.tiles {
		m.tiles[x] = make([]Tile, height)
	}
	m.currentScentValue = ScentThreshold
}

// Width returns the number of columns
func (m *Map) Width() int {
	return m.width
}

// Height returns the number of rows
func (m *Map) Height() int {
	return m.height
}

// CurrentScentValue returns the scent counter. It rises by one on every
// ComputeFov.
func (m *Map) CurrentScentValue() int {
	return m.currentScentValue
}

// IsValidPosition checks if a position is within map bounds
func (m *Map) IsValidPosition(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// SetFloor makes a cell walkable and transparent
func (m *Map) SetFloor(x, y int) {
	m.fov.SetCell(x, y, true, true)
}

// SetWall makes a cell blocked and opaque
func (m *Map) SetWall(x, y int) {
	m.fov.SetCell(x, y, false, false)
}

// IsWall returns true if the cell is not walkable
func (m *Map) IsWall(x, y int) bool {
	return !m.fov.IsWalkable(x, y)
}

// IsTransparent returns true if light passes through the cell
func (m *Map) IsTransparent(x, y int) bool {
	return m.fov.IsTransparent(x, y)
}

// CanWalk returns false if the cell is a wall or a blocking actor stands
// on it. All movement and placement checks go through here. A nil occ only
// checks walls.
func (m *Map) CanWalk(x, y int, occ Occupancy) bool {
	if m.IsWall(x, y) {
		return false
	}
	if occ != nil && occ.IsBlocked(Position{X: x, Y: y}) {
		return false
	}
	return true
}

// IsExplored returns true if the cell has ever been seen
func (m *Map) IsExplored(x, y int) bool {
	return m.tiles[x][y].Explored
}

// IsInFov reports whether the last ComputeFov marked the cell visible.
// It mutates: a visible cell is permanently marked explored.
func (m *Map) IsInFov(x, y int) bool {
	if m.fov.IsInFov(x, y) {
		m.tiles[x][y].Explored = true
		return true
	}
	return false
}

// IsVisible is IsInFov without the explored side effect, for tooling that
// must not change the map.
func (m *Map) IsVisible(x, y int) bool {
	return m.fov.IsInFov(x, y)
}

// Scent returns the stored scent of a cell
func (m *Map) Scent(x, y int) int {
	return m.tiles[x][y].ScentAmount
}

// ScentStaleness returns how many FOV updates ago the cell's scent was at
// full strength. Consumers should compare this, not the raw scent.
func (m *Map) ScentStaleness(x, y int) int {
	return m.currentScentValue - m.tiles[x][y].ScentAmount
}

// ComputeFov recomputes the visible cells around (x, y), then advances the
// scent counter and refreshes the scent field. The three always run together.
// The centre cell is always visible, even when it is a wall.
func (m *Map) ComputeFov(x, y, radius int) {
	if radius < 0 {
		radius = 0
	}
	m.fov.ComputeFov(x, y, radius)
	m.currentScentValue++
	m.updateScentField(x, y, radius)
}

// updateScentField stamps currentScentValue minus the floored distance to
// the centre on every visible cell, keeping the higher of old and new. The
// scan covers the radius box plus the ring of lit walls around it.
func (m *Map) updateScentField(xCenter, yCenter, radius int) {
	reach := radius + 1
	for x := max(0, xCenter-reach); x <= min(m.width-1, xCenter+reach); x++ {
		for y := max(0, yCenter-reach); y <= min(m.height-1, yCenter+reach); y++ {
			if !m.IsInFov(x, y) {
				continue
			}
			dx := x - xCenter
			dy := y - yCenter
			distance := int(math.Floor(math.Sqrt(float64(dx*dx + dy*dy))))
			newScent := m.currentScentValue - distance
			if newScent > m.tiles[x][y].ScentAmount {
				m.tiles[x][y].ScentAmount = newScent
			}
		}
	}
}

// ForEachCell iterates over all cells column by column
func (m *Map) ForEachCell(fn func(x, y int, tile Tile)) {
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			fn(x, y, m.tiles[x][y])
		}
	}
}

// FloorCount returns the number of walkable cells
func (m *Map) FloorCount() int {
	n := 0
	for x := 0; x < m.width; x++ {
		for y := 0; y < m.height; y++ {
			if !m.IsWall(x, y) {
				n++
			}
		}
	}
	return n
}

// ErrNoFloor is returned by Validate for a map with nothing carved.
var ErrNoFloor = errors.New("map has no floor")

// Validate checks the map for structural problems.
func (m *Map) Validate() error {
	if m.width <= 0 || m.height <= 0 || m.fov == nil {
		return fmt.Errorf("map has invalid dimensions %dx%d", m.width, m.height)
	}
	if len(m.tiles) != m.width {
		return fmt.Errorf("map has %d tile columns, want %d", len(m.tiles), m.width)
	}
	if m.FloorCount() == 0 {
		return ErrNoFloor
	}
	return nil
}
