package generator

import (
	"fmt"

	"delve/pkg/engine/rng"
	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
)

// Population is what a builder needs from the actor manager: occupancy
// checks for placement, the player to position, and somewhere to put
// monsters and items.
type Population interface {
	world.Occupancy
	Player() *actors.Actor
	AddCreature(a *actors.Actor)
	AddItem(a *actors.Actor)
}

// Builder carves a level into an all-wall map and populates it. A nil
// Random falls back to a time-seeded one.
type Builder interface {
	Build(m *world.Map, pop Population, r rng.Random)
	Name() string
}

// Available builders
var (
	BSP        = NewBSPBuilder(DefaultConfig(), actors.NewDefaultFactory())
	LineWalker = NewLineWalkerBuilder(DefaultConfig(), actors.NewDefaultFactory())
)

// DefaultBuilder is the default level builder
var DefaultBuilder Builder = BSP

// ByName returns the registered builder with the given name or key
func ByName(name string) (Builder, error) {
	switch name {
	case "", "bsp", BSP.Name():
		return BSP, nil
	case "walker", LineWalker.Name():
		return LineWalker, nil
	}
	return nil, fmt.Errorf("unknown builder %q", name)
}

// validate checks that every floor cell is reachable from the player.
func validate(m *world.Map, pop Population) error {
	if err := m.Validate(); err != nil {
		return err
	}
	p := pop.Player()
	if m.IsWall(p.X, p.Y) {
		return fmt.Errorf("player placed in a wall at %d,%d", p.X, p.Y)
	}
	if reached, total := m.Reachable(p.X, p.Y).Size(), m.FloorCount(); reached != total {
		return fmt.Errorf("only %d of %d floor cells reachable from the player", reached, total)
	}
	return nil
}
