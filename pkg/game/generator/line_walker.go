package generator

import (
	"delve/pkg/engine/rng"
	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
)

// LineWalkerBuilder generates levels by walking lines in random directions
// with branching probability, dropping a small room at the end of each line.
type LineWalkerBuilder struct {
	Carver

	BranchChance int // Percent chance to branch at each step, minus 10 per branch depth
	MinRun       int
	MaxRun       int
	ExtraWalks   int // Additional walks started from the first room
}

// NewLineWalkerBuilder creates a line walker with stock walk parameters
func NewLineWalkerBuilder(cfg Config, factory actors.Factory) *LineWalkerBuilder {
	return &LineWalkerBuilder{
		Carver:       Carver{Config: cfg, Factory: factory},
		BranchChance: 30,
		MinRun:       3,
		MaxRun:       8,
		ExtraWalks:   2,
	}
}

// Name returns the name of this builder
func (g *LineWalkerBuilder) Name() string {
	return "Line Walker"
}

// walk is the per-build state of a line walker
type walk struct {
	g   *LineWalkerBuilder
	m   *world.Map
	pop Population
	r   rng.Random
}

// Build carves corridors outward from a start room in the map centre.
// Every corridor starts on already carved floor, so the level is connected.
// A nil r uses a time-seeded generator.
func (g *LineWalkerBuilder) Build(m *world.Map, pop Population, r rng.Random) {
	if r == nil {
		r = rng.NewTimeSeeded()
	}
	w := &walk{g: g, m: m, pop: pop, r: r}

	if m.Width() < 3 || m.Height() < 3 {
		g.CreateRoom(m, pop, r, true, 0, 0, m.Width()-1, m.Height()-1)
		return
	}

	// Start in the center (which is always in playable area)
	x, y := m.Width()/2, m.Height()/2
	w.room(true, x, y)

	// Build main corridors in all four directions
	for _, dir := range world.CardinalDirections() {
		w.line(x, y, dir, g.BranchChance)
	}

	for i := 0; i < g.ExtraWalks; i++ {
		w.line(x, y, w.randomDirection(), g.BranchChance)
	}

	if err := validate(m, pop); err != nil {
		panic("Generated invalid map: " + err.Error())
	}
}

// isPlayable checks if a position is within the playable area (not on the
// perimeter). This keeps a 1-cell wall border around the map.
func (w *walk) isPlayable(x, y int) bool {
	return x >= 1 && x < w.m.Width()-1 && y >= 1 && y < w.m.Height()-1
}

// randomDirection returns a random cardinal direction
func (w *walk) randomDirection() world.Direction {
	return world.Direction(w.r.Number(int(world.North), int(world.West)))
}

// room digs a small room around (x, y), clipped to the playable area
func (w *walk) room(first bool, x, y int) {
	half := w.g.Config.RoomMinSize / 2
	hw := w.r.Number(1, half)
	hh := w.r.Number(1, half)
	x1, y1 := max(1, x-hw), max(1, y-hh)
	x2, y2 := min(w.m.Width()-2, x+hw), min(w.m.Height()-2, y+hh)
	w.g.CreateRoom(w.m, w.pop, w.r, first, x1, y1, x2, y2)
}

// line carves a line of floor starting from (x, y) in the given direction,
// branching as it goes, and ends it with a room
func (w *walk) line(x, y int, dir world.Direction, branchChance int) {
	dx, dy := dir.Delta()
	distance := w.r.Number(w.g.MinRun, w.g.MaxRun)

	for segment := 0; segment < distance; segment++ {
		Dig(w.m, x, y, x, y)

		// If the next cell would be outside playable area, stop here
		if !w.isPlayable(x+dx, y+dy) {
			break
		}

		if branchChance > 0 && rng.Chance(w.r, branchChance) {
			w.line(x, y, w.randomDirection(), branchChance-10)
		}

		x += dx
		y += dy
	}

	Dig(w.m, x, y, x, y)
	w.room(false, x, y)
}
