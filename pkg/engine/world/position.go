package world

// Position is a cell coordinate on a Map.
type Position struct {
	X, Y int
}

// Step returns the position one cell away in direction d.
func (p Position) Step(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}
