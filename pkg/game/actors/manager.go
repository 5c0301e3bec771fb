package actors

import (
	"delve/pkg/engine/world"
)

// Manager tracks the actors of the current level. The player is always the
// first creature.
type Manager struct {
	player    *Actor
	creatures []*Actor
	items     []*Actor
}

// NewManager creates a manager holding only the player
func NewManager(player *Actor) *Manager {
	return &Manager{
		player:    player,
		creatures: []*Actor{player},
	}
}

// Player returns the player actor
func (m *Manager) Player() *Actor {
	return m.player
}

// Creatures returns every creature, the player included
func (m *Manager) Creatures() []*Actor {
	return m.creatures
}

// Items returns the items lying on the level
func (m *Manager) Items() []*Actor {
	return m.items
}

// AddCreature adds a monster to the level
func (m *Manager) AddCreature(a *Actor) {
	m.creatures = append(m.creatures, a)
}

// AddItem adds an item to the level
func (m *Manager) AddItem(a *Actor) {
	m.items = append(m.items, a)
}

// RemoveItem takes an item off the level, returning false if it was not there
func (m *Manager) RemoveItem(a *Actor) bool {
	for i, it := range m.items {
		if it == a {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return true
		}
	}
	return false
}

// FindActorsOnCell returns the actors of set standing on pos
func (m *Manager) FindActorsOnCell(pos world.Position, set []*Actor) []*Actor {
	var found []*Actor
	for _, a := range set {
		if a.X == pos.X && a.Y == pos.Y {
			found = append(found, a)
		}
	}
	return found
}

// IsBlocked returns true if a blocking creature stands on pos
func (m *Manager) IsBlocked(pos world.Position) bool {
	for _, a := range m.FindActorsOnCell(pos, m.creatures) {
		if a.IsBlocking() {
			return true
		}
	}
	return false
}

// Reset drops every monster and item, keeping the player for the next level
func (m *Manager) Reset() {
	m.creatures = []*Actor{m.player}
	m.items = nil
}
