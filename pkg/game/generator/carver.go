package generator

import (
	"delve/pkg/engine/rng"
	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
)

// Percent chance that a monster is the weak kind
const weakMonsterChance = 80

// itemWeights is the cumulative draw table for room items, out of 100.
var itemWeights = []struct {
	upTo int
	kind actors.ItemKind
}{
	{70, actors.ItemHealthPotion},
	{80, actors.ItemLightningBoltScroll},
	{90, actors.ItemFireballScroll},
	{100, actors.ItemConfusionScroll},
}

// Dig turns every cell of the inclusive rectangle into floor. Corners may
// be given in any order.
func Dig(m *world.Map, x1, y1, x2, y2 int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	for x := x1; x <= x2; x++ {
		for y := y1; y <= y2; y++ {
			m.SetFloor(x, y)
		}
	}
}

// DigCorridor carves an L-shaped corridor: horizontal along y1 from x1 to
// x2, then vertical along x2 from y1 to y2.
func DigCorridor(m *world.Map, x1, y1, x2, y2 int) {
	Dig(m, x1, y1, x2, y1)
	Dig(m, x2, y1, x2, y2)
}

// Carver digs rooms and fills them. Builders embed it.
type Carver struct {
	Config  Config
	Factory actors.Factory
}

// CreateRoom digs the room. The first room of a level receives the player
// at its centre; every other room gets monsters, then items.
func (c *Carver) CreateRoom(m *world.Map, pop Population, r rng.Random, first bool, x1, y1, x2, y2 int) {
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	if y2 < y1 {
		y1, y2 = y2, y1
	}
	Dig(m, x1, y1, x2, y2)
	if first {
		// put the player in the first room
		pop.Player().MoveTo(world.Position{X: (x1 + x2) / 2, Y: (y1 + y2) / 2})
		return
	}
	c.createMonsters(m, pop, r, x1, y1, x2, y2)
	c.createItems(m, pop, r, x1, y1, x2, y2)
}

// createMonsters draws a monster count and drops each on a random room
// cell. Cells that cannot be walked are skipped, not retried.
func (c *Carver) createMonsters(m *world.Map, pop Population, r rng.Random, x1, y1, x2, y2 int) {
	for count := r.Number(0, c.Config.MaxMonstersPerRoom); count > 0; count-- {
		x := r.Number(x1, x2)
		y := r.Number(y1, y2)
		if !m.CanWalk(x, y, pop) {
			continue
		}
		kind := actors.MonsterStrong
		if rng.Chance(r, weakMonsterChance) {
			kind = actors.MonsterWeak
		}
		pop.AddCreature(c.Factory.CreateMonster(x, y, kind))
	}
}

func (c *Carver) createItems(m *world.Map, pop Population, r rng.Random, x1, y1, x2, y2 int) {
	for count := r.Number(0, c.Config.MaxItemsPerRoom); count > 0; count-- {
		x := r.Number(x1, x2)
		y := r.Number(y1, y2)
		if !m.CanWalk(x, y, pop) {
			continue
		}
		pop.AddItem(c.Factory.CreateItem(x, y, drawItemKind(r)))
	}
}

func drawItemKind(r rng.Random) actors.ItemKind {
	dice := r.Number(0, 99)
	for _, w := range itemWeights {
		if dice < w.upTo {
			return w.kind
		}
	}
	return itemWeights[len(itemWeights)-1].kind
}
