// Package generator builds dungeon levels: it carves rooms and corridors
// into a world.Map and decides where monsters and items go.
package generator

// Config holds the generation tuning
type Config struct {
	RoomMinSize        int     // Minimum room side, also the BSP minimum leaf side
	MaxMonstersPerRoom int     // Upper bound of the per-room monster draw
	MaxItemsPerRoom    int     // Upper bound of the per-room item draw
	BSPDepth           int     // Maximum number of BSP split levels
	MaxHVRatio         float64 // Aspect ratio above which a region is cut across its long axis
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		RoomMinSize:        4,
		MaxMonstersPerRoom: 3,
		MaxItemsPerRoom:    2,
		BSPDepth:           8,
		MaxHVRatio:         1.5,
	}
}
