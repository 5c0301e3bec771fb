package world

import (
	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/queue"
)

// Reachable returns every floor cell connected to (x, y) through
// orthogonal floor steps, the start included. A wall start yields an
// empty set.
func (m *Map) Reachable(x, y int) mapset.Set[Position] {
	visited := mapset.New[Position]()
	if m.IsWall(x, y) {
		return visited
	}

	start := Position{X: x, Y: y}
	visited.Put(start)
	q := queue.New[Position]()
	q.Enqueue(start)

	for !q.Empty() {
		current := q.Dequeue()
		for _, dir := range CardinalDirections() {
			next := current.Step(dir)
			if !m.IsValidPosition(next.X, next.Y) || m.IsWall(next.X, next.Y) || visited.Has(next) {
				continue
			}
			visited.Put(next)
			q.Enqueue(next)
		}
	}

	return visited
}
