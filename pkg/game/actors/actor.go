// Package actors holds the creatures and items that live on a level and
// the manager the map queries for blocking occupants.
package actors

import (
	"delve/pkg/engine/world"
)

// Destructible gives an actor hit points.
type Destructible struct {
	MaxHP      int
	HP         int
	Defense    int
	CorpseName string
}

// IsDead returns true once hit points are exhausted
func (d *Destructible) IsDead() bool {
	return d.HP <= 0
}

// Attacker lets an actor deal damage.
type Attacker struct {
	Power int
}

// Pickable marks an actor as an item that can be carried and used.
type Pickable struct {
	Kind   ItemKind
	Amount int // heal amount or damage
	Range  int // 0 for self-targeted items
}

// Actor is anything positioned on the map: the player, monsters, items.
type Actor struct {
	Name   string
	Glyph  rune
	Color  string
	X, Y   int
	Blocks bool

	Destructible *Destructible
	Attacker     *Attacker
	Pickable     *Pickable
}

// Position returns the actor's cell
func (a *Actor) Position() world.Position {
	return world.Position{X: a.X, Y: a.Y}
}

// MoveTo places the actor on a cell
func (a *Actor) MoveTo(pos world.Position) {
	a.X, a.Y = pos.X, pos.Y
}

// IsBlocking returns true if other creatures cannot share the actor's
// cell. Corpses never block.
func (a *Actor) IsBlocking() bool {
	if !a.Blocks {
		return false
	}
	return a.Destructible == nil || !a.Destructible.IsDead()
}
