package assets

import (
	"image"
	_ "image/png"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/automoto/pigking/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderMissingImage(t *testing.T) {
	p := NewProvider(fstest.MapFS{})

	img, err := p.Image("images/objects/nope.png")
	assert.Nil(t, img)

	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "images/objects/nope.png", le.Key)
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, again := p.Image("images/objects/nope.png")
	assert.Same(t, le, again, "failures are cached")
}

func TestProviderCorruptImage(t *testing.T) {
	p := NewProvider(fstest.MapFS{"bad.png": {Data: []byte("not a png")}})

	_, err := p.Image("bad.png")
	var le *LoadError
	require.ErrorAs(t, err, &le)
	assert.NotErrorIs(t, err, ErrAssetNotFound)
}

func TestFrameOfMissingSheetIsSkipped(t *testing.T) {
	p := NewProvider(fstest.MapFS{})
	assert.Nil(t, p.Frame(SheetKey("dragon", config.Idle), 0, 16, 16))
}

func TestKeys(t *testing.T) {
	assert.Equal(t, "images/spritesheets/king/doorIn.png", SheetKey("king", config.DoorIn))
	assert.Equal(t, "images/objects/door.png", ObjectKey("door.png"))
	assert.Equal(t, image.Rect(78, 0, 156, 58), FrameRect(1, 78, 58))
}

func TestEmbeddedSheetsMatchClipTables(t *testing.T) {
	for _, key := range config.SpeciesKeys() {
		s := config.Species[key]
		for state := config.StateID(0); state < config.StateCount; state++ {
			if !s.Clips.Has(state) {
				continue
			}
			f, err := imageFS.Open(SheetKey(key, state))
			require.NoError(t, err, "%s/%s", key, state)

			cfg, _, err := image.DecodeConfig(f)
			f.Close()
			require.NoError(t, err)
			assert.Equal(t, s.FrameWidth*s.Clips[state].FrameCount, cfg.Width, "%s/%s", key, state)
			assert.Equal(t, s.FrameHeight, cfg.Height, "%s/%s", key, state)
		}
	}
}

func TestEmbeddedObjects(t *testing.T) {
	for _, name := range []string{"door.png", "checkpoint.png"} {
		_, err := fs.Stat(imageFS, ObjectKey(name))
		assert.NoError(t, err, name)
	}
}
