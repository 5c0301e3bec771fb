package devtools

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/gookit/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delve/pkg/engine/rng"
	"delve/pkg/engine/world"
	"delve/pkg/game/actors"
	"delve/pkg/game/generator"
	"delve/pkg/game/state"
)

// corridorBuilder carves a room and a corridor leading east out of it,
// with an orc and a potion in the room.
type corridorBuilder struct{}

func (corridorBuilder) Name() string { return "corridor" }

func (corridorBuilder) Build(m *world.Map, pop generator.Population, _ rng.Random) {
	generator.Dig(m, 1, 1, 3, 3)
	generator.Dig(m, 4, 2, 18, 2)
	pop.Player().MoveTo(world.Position{X: 2, Y: 2})
	f := actors.NewDefaultFactory()
	pop.AddCreature(f.CreateMonster(1, 1, actors.MonsterWeak))
	pop.AddItem(f.CreateItem(3, 3, actors.ItemHealthPotion))
}

func newDumpGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame(corridorBuilder{}, 7, 20, 5)
	g.FovRadius = 4
	g.BuildLevel()
	return g
}

func dump(t *testing.T, g *state.Game, opts Options) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, WriteMapDump(&buf, g, opts))
	return buf.String()
}

func TestWriteMapDump_Sections(t *testing.T) {
	out := dump(t, newDumpGame(t), Options{})

	for _, want := range []string{
		"--- Metadata ---",
		"seed: 7",
		"builder: corridor",
		"width: 20",
		"player: 2,2",
		"--- Map (explored cells only) ---",
		"--- Map (full layout) ---",
		"--- Scent ---",
		"Creatures:",
		"=== END MAP DUMP ===",
	} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, `name: "orc"`)
}

func TestWriteMapDump_RevealedGridHidesUnexplored(t *testing.T) {
	g := newDumpGame(t)
	out := dump(t, g, Options{RevealedOnly: true})
	assert.NotContains(t, out, "--- Map (full layout) ---")

	lines := strings.Split(out, "\n")
	start := -1
	for i, l := range lines {
		if l == "--- Map (explored cells only) ---" {
			start = i + 1
		}
	}
	require.NotEqual(t, -1, start)

	row := lines[start+2]
	require.Len(t, row, 20)
	assert.Equal(t, byte('@'), row[2])
	assert.Equal(t, byte(' '), row[17], "far end of the corridor is out of sight")
}

func TestWriteMapDump_FullGridShowsLayout(t *testing.T) {
	out := dump(t, newDumpGame(t), Options{})
	lines := strings.Split(out, "\n")
	start := -1
	for i, l := range lines {
		if l == "--- Map (full layout) ---" {
			start = i + 1
		}
	}
	require.NotEqual(t, -1, start)

	assert.Equal(t, "####################", lines[start])
	assert.Equal(t, "#o..################", lines[start+1])
	assert.Equal(t, "#.@................#", lines[start+2])
	assert.Equal(t, "#..!################", lines[start+3])
}

func TestWriteMapDump_ColoredMatchesPlain(t *testing.T) {
	g := newDumpGame(t)
	plain := dump(t, g, Options{})
	colored := dump(t, g, Options{Colored: true})

	assert.Equal(t, plain, color.ClearCode(colored))
}

func TestScentSymbol(t *testing.T) {
	m := world.NewMap(12, 3)
	generator.Dig(m, 0, 1, 11, 1)
	m.ComputeFov(0, 1, 3)

	assert.Equal(t, '0', scentSymbol(m, 0, 1))
	assert.Equal(t, '2', scentSymbol(m, 2, 1))
	assert.Equal(t, ' ', scentSymbol(m, 11, 1))

	for i := 0; i < scentLevels; i++ {
		m.ComputeFov(11, 1, 1)
	}
	assert.Equal(t, '+', scentSymbol(m, 0, 1))
}

func TestScentSymbol_ClampsAheadOfCounter(t *testing.T) {
	m := world.NewMap(12, 3)
	generator.Dig(m, 0, 1, 11, 1)
	for i := 0; i < 5; i++ {
		m.ComputeFov(0, 1, 3)
	}
	saved := m.Save()
	saved.CurrentScentValue = 0

	loaded, err := world.LoadMap(saved)
	require.NoError(t, err)
	require.Negative(t, loaded.ScentStaleness(0, 1))

	assert.Equal(t, '0', scentSymbol(loaded, 0, 1))
}

func TestDumpMapToFile(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	path, err := DumpMapToFile(newDumpGame(t))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "=== MAP DUMP DEBUG"))
}
