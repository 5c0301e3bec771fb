package world

// Tile is the per-cell state the Map keeps beside the FOV substrate.
type Tile struct {
	// Explored becomes true the first time the cell is seen and never
	// goes back.
	Explored bool

	// ScentAmount is the highest scent the player left on the cell during
	// this level. It never decreases.
	ScentAmount int
}
