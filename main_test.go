package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"delve/pkg/game/generator"
	"delve/pkg/game/state"
	"delve/pkg/game/store"
)

func newLevelStore(t *testing.T) store.Store {
	t.Helper()
	levels, err := store.NewJSONStore(filepath.Join(t.TempDir(), "levels.json"))
	require.NoError(t, err)
	t.Cleanup(func() { levels.Close() })
	return levels
}

func TestRestoreLevel_ResizedTerminalGetsFreshKey(t *testing.T) {
	levels := newLevelStore(t)

	small := state.NewGame(generator.BSP, 5, 30, 15)
	small.BuildLevel()
	require.NoError(t, levels.SaveLevel(small.LevelKey(), small.Map.Save()))

	big := state.NewGame(generator.BSP, 5, 100, 40)
	big.BuildLevel()
	require.NotEqual(t, small.LevelKey(), big.LevelKey())
	assert.NoError(t, restoreLevel(big, levels, big.LevelKey()), "nothing saved for this size")
}

func TestRestoreLevel_RejectsSnapshotOfOtherSize(t *testing.T) {
	levels := newLevelStore(t)

	small := state.NewGame(generator.BSP, 5, 30, 15)
	small.BuildLevel()
	require.NoError(t, levels.SaveLevel("level", small.Map.Save()))

	big := state.NewGame(generator.BSP, 5, 100, 40)
	big.BuildLevel()

	var err error
	require.NotPanics(t, func() { err = restoreLevel(big, levels, "level") })
	assert.ErrorIs(t, err, state.ErrLevelMismatch)
	assert.Equal(t, 100, big.Map.Width())
}

func TestRestoreLevel_RoundTrip(t *testing.T) {
	levels := newLevelStore(t)

	first := state.NewGame(generator.LineWalker, 9, 40, 20)
	first.BuildLevel()
	walk(first, 9, 30)
	require.NoError(t, levels.SaveLevel(first.LevelKey(), first.Map.Save()))

	rerun := state.NewGame(generator.LineWalker, 9, 40, 20)
	rerun.BuildLevel()
	require.NoError(t, restoreLevel(rerun, levels, rerun.LevelKey()))
	assert.Greater(t, rerun.Map.CurrentScentValue(), first.Map.CurrentScentValue())
}
