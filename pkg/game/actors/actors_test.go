package actors

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delve/pkg/engine/world"
)

func TestManager_PlayerIsACreature(t *testing.T) {
	player := NewPlayer()
	m := NewManager(player)
	require.Len(t, m.Creatures(), 1)
	assert.Same(t, player, m.Player())
	assert.True(t, m.IsBlocked(world.Position{}), "player blocks its own cell")
}

func TestManager_FindActorsOnCell(t *testing.T) {
	m := NewManager(NewPlayer())
	f := NewDefaultFactory()
	orc := f.CreateMonster(3, 4, MonsterWeak)
	potion := f.CreateItem(3, 4, ItemHealthPotion)
	m.AddCreature(orc)
	m.AddItem(potion)

	pos := world.Position{X: 3, Y: 4}
	assert.Equal(t, []*Actor{orc}, m.FindActorsOnCell(pos, m.Creatures()))
	assert.Equal(t, []*Actor{potion}, m.FindActorsOnCell(pos, m.Items()))
	assert.Empty(t, m.FindActorsOnCell(world.Position{X: 9, Y: 9}, m.Creatures()))
}

func TestManager_IsBlocked(t *testing.T) {
	m := NewManager(NewPlayer())
	f := NewDefaultFactory()
	troll := f.CreateMonster(5, 5, MonsterStrong)
	m.AddCreature(troll)
	m.AddItem(f.CreateItem(6, 6, ItemFireballScroll))

	assert.True(t, m.IsBlocked(world.Position{X: 5, Y: 5}))
	assert.False(t, m.IsBlocked(world.Position{X: 6, Y: 6}), "items never block")

	troll.Destructible.HP = 0
	assert.False(t, m.IsBlocked(world.Position{X: 5, Y: 5}), "corpses do not block")

	m.Reset()
	assert.Len(t, m.Creatures(), 1)
	assert.Empty(t, m.Items())
}

func TestDefaultFactory_Templates(t *testing.T) {
	f := NewDefaultFactory()

	orc := f.CreateMonster(1, 2, MonsterWeak)
	troll := f.CreateMonster(1, 2, MonsterStrong)
	assert.Equal(t, "orc", orc.Name)
	assert.Equal(t, "troll", troll.Name)
	assert.Equal(t, world.Position{X: 1, Y: 2}, orc.Position())
	assert.True(t, orc.IsBlocking())
	assert.Less(t, orc.Destructible.MaxHP, troll.Destructible.MaxHP)
	assert.Less(t, orc.Attacker.Power, troll.Attacker.Power)
	assert.Zero(t, orc.Destructible.Defense)
	assert.Equal(t, "troll carcass", troll.Destructible.CorpseName)

	for kind, want := range map[ItemKind]string{
		ItemHealthPotion:        "health potion",
		ItemLightningBoltScroll: "scroll of lightning bolt",
		ItemFireballScroll:      "scroll of fireball",
		ItemConfusionScroll:     "scroll of confusion",
	} {
		item := f.CreateItem(0, 0, kind)
		assert.Equal(t, want, item.Name)
		require.NotNil(t, item.Pickable)
		assert.Equal(t, kind, item.Pickable.Kind)
		assert.False(t, item.IsBlocking())
	}
}

func TestManager_RemoveItem(t *testing.T) {
	m := NewManager(NewPlayer())
	f := NewDefaultFactory()
	first := f.CreateItem(1, 1, ItemHealthPotion)
	second := f.CreateItem(2, 2, ItemConfusionScroll)
	m.AddItem(first)
	m.AddItem(second)

	assert.True(t, m.RemoveItem(first))
	assert.Equal(t, []*Actor{second}, m.Items())
	assert.False(t, m.RemoveItem(first), "already removed")
}
