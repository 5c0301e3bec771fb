// Package state holds the running game: the current level map, its actors
// and the turn loop that moves the player and refreshes the field of view.
package state

import (
	"errors"
	"fmt"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/zyedidia/generic/mapset"

	"delve/pkg/engine/rng"
	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
	"delve/pkg/game/generator"
)

// FovRadius is the player's sight radius in cells
const FovRadius = 10

const maxMessages = 5

// ErrLevelMismatch is returned by Restore for a snapshot of another level
var ErrLevelMismatch = errors.New("saved level does not match the current level")

// Game represents the game state for one run
type Game struct {
	Map *world.Map

	Actors *actors.Manager

	Builder generator.Builder

	// Items picked up by the player
	Inventory mapset.Set[*actors.Actor]

	Messages []string

	Level int // Current level/floor number
	Seed  int64
	Turns int

	FovRadius int

	rng rng.Random
}

// NewGame creates a game with an all-wall map of the given size. Call
// BuildLevel to carve the first level.
func NewGame(builder generator.Builder, seed int64, width, height int) *Game {
	return &Game{
		Map:       world.NewMap(width, height),
		Actors:    actors.NewManager(actors.NewPlayer()),
		Builder:   builder,
		Inventory: mapset.New[*actors.Actor](),
		Messages:  make([]string, 0),
		Level:     1,
		Seed:      seed,
		FovRadius: FovRadius,
		rng:       rng.NewCMWC(uint32(seed)),
	}
}

// BuildLevel wipes the map and the level's actors, builds a fresh level
// and computes the player's initial field of view.
func (g *Game) BuildLevel() {
	g.Map.Init(g.Map.Width(), g.Map.Height())
	g.Actors.Reset()
	g.Builder.Build(g.Map, g.Actors, g.rng)

	p := g.Actors.Player()
	g.Map.ComputeFov(p.X, p.Y, g.FovRadius)
}

// LevelKey names the current level in a store. Games that share a key
// build the same layout: seed, map size, builder and level number.
func (g *Game) LevelKey() string {
	builder := strings.ToLower(strings.ReplaceAll(g.Builder.Name(), " ", "-"))
	return fmt.Sprintf("seed-%d-%dx%d-%s-level-%d", g.Seed, g.Map.Width(), g.Map.Height(), builder, g.Level)
}

// Restore brings back explored cells and scent from a snapshot of the
// current level and recomputes the player's field of view. A snapshot
// with other dimensions or another layout is rejected and the map is left
// as it was.
func (g *Game) Restore(s *world.State) error {
	saved, err := world.LoadMap(s)
	if err != nil {
		return err
	}
	if saved.Width() != g.Map.Width() || saved.Height() != g.Map.Height() {
		return fmt.Errorf("%w: saved map is %dx%d, level is %dx%d", ErrLevelMismatch,
			saved.Width(), saved.Height(), g.Map.Width(), g.Map.Height())
	}

	p := g.Actors.Player()
	if saved.IsWall(p.X, p.Y) {
		return fmt.Errorf("%w: player cell %d,%d is a wall in the saved map", ErrLevelMismatch, p.X, p.Y)
	}
	var diff *world.Position
	g.Map.ForEachCell(func(x, y int, _ world.Tile) {
		if diff == nil && saved.IsWall(x, y) != g.Map.IsWall(x, y) {
			diff = &world.Position{X: x, Y: y}
		}
	})
	if diff != nil {
		return fmt.Errorf("%w: layout differs at %d,%d", ErrLevelMismatch, diff.X, diff.Y)
	}

	if err := g.Map.Load(s); err != nil {
		return err
	}
	g.Map.ComputeFov(p.X, p.Y, g.FovRadius)
	return nil
}

// AdvanceLevel increments the level counter and builds the next level
func (g *Game) AdvanceLevel() {
	g.Level++
	g.ClearMessages()
	g.BuildLevel()
	g.AddMessage(gotext.Get("You descend deeper into the dungeon."))
}

// MovePlayer tries to step the player one cell in dir. A successful move
// picks up items on the new cell and recomputes the field of view, which
// also lays fresh scent.
func (g *Game) MovePlayer(dir world.Direction) bool {
	player := g.Actors.Player()
	pos := player.Position().Step(dir)

	if !g.Map.IsValidPosition(pos.X, pos.Y) || g.Map.IsWall(pos.X, pos.Y) {
		g.AddMessage(gotext.Get("You bump into a wall."))
		return false
	}
	if !g.Map.CanWalk(pos.X, pos.Y, g.Actors) {
		for _, a := range g.Actors.FindActorsOnCell(pos, g.Actors.Creatures()) {
			if a.IsBlocking() {
				g.AddMessage(gotext.Get("The %s blocks your way.", a.Name))
				break
			}
		}
		return false
	}

	player.MoveTo(pos)
	g.Turns++
	g.pickUpItems(pos)
	g.Map.ComputeFov(pos.X, pos.Y, g.FovRadius)
	return true
}

func (g *Game) pickUpItems(pos world.Position) {
	for _, it := range g.Actors.FindActorsOnCell(pos, g.Actors.Items()) {
		g.Actors.RemoveItem(it)
		g.Inventory.Put(it)
		g.AddMessage(gotext.Get("You pick up the %s.", it.Name))
	}
}

// HasItem checks if the player carries a specific item
func (g *Game) HasItem(item *actors.Actor) bool {
	return g.Inventory.Has(item)
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}
