package levels_test

import (
	"testing"

	"github.com/automoto/pigking/assets/levels"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedLevels(t *testing.T) {
	lvls, err := leveldata.LoadAllLevels(levels.FS, ".")
	require.NoError(t, err)
	require.Len(t, lvls, 2)
	assert.Equal(t, "level1", lvls[0].Name)
	assert.Equal(t, "level2", lvls[1].Name)

	for _, lvl := range lvls {
		assert.NotEmpty(t, lvl.Blocks, lvl.Name)
		assert.NotEmpty(t, lvl.Platforms, lvl.Name)
		assert.NotEmpty(t, lvl.Enemies, lvl.Name)
		assert.NotEmpty(t, lvl.Checkpoints, lvl.Name)

		_, ok := lvl.Door(leveldata.DoorEntry)
		assert.True(t, ok, lvl.Name)
		_, ok = lvl.Door(leveldata.DoorExit)
		assert.True(t, ok, lvl.Name)

		assert.Equal(t, 640.0, lvl.Width)
		assert.Equal(t, 272.0, lvl.Height)
		assert.Equal(t, 640.0, lvl.Bounds().Width)
	}
}
