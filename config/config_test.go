package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/automoto/pigking/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetSpecies restores default tuning after a test mutates it.
func resetSpecies(t *testing.T) {
	t.Helper()
	camera := Camera
	t.Cleanup(func() {
		for key, def := range defaultSpecies() {
			*Species[key] = *def
		}
		Camera = camera
	})
}

func TestClipTables(t *testing.T) {
	for _, key := range SpeciesKeys() {
		s := Species[key]
		for state := StateID(0); state < StateCount; state++ {
			clip := s.Clips[state]
			if !s.Clips.Has(state) {
				continue
			}
			assert.Greater(t, clip.Speed, 0.0, "%s/%s speed", key, state)
			if clip.Locked {
				assert.True(t, s.Clips.Has(clip.OnComplete), "%s/%s completes into a playable state", key, state)
			}
		}
		assert.True(t, s.Clips[Dead].Terminal(Dead), "%s dead clip is terminal", key)
		assert.False(t, s.Clips[Attack].Terminal(Attack))
	}
	assert.False(t, KingPig.Clips.Has(DoorIn), "pigs have no door clips")
}

func TestStateNames(t *testing.T) {
	assert.Equal(t, "doorOut", DoorOut.String())
	assert.Equal(t, "unknown", StateCount.String())

	s, ok := ParseState("attack")
	assert.True(t, ok)
	assert.Equal(t, Attack, s)
	_, ok = ParseState("dance")
	assert.False(t, ok)
}

func TestHitboxDerivation(t *testing.T) {
	pos := gamemath.Vector2{X: 100, Y: 50}
	hb := KingPig.HitboxAt(pos)

	assert.InDelta(t, pos.X+KingPig.HitboxOffsetX, hb.X, 1e-9)
	assert.InDelta(t, KingPig.Width*0.6, hb.Width, 1e-9)
	assert.InDelta(t, KingPig.Height*0.8, hb.Height, 1e-9)

	right := KingPig.AttackBoxAt(hb, DirectionRight)
	left := KingPig.AttackBoxAt(hb, DirectionLeft)
	assert.Equal(t, hb.Right(), right.X)
	assert.Equal(t, hb.X, left.Right())
	assert.Equal(t, right.Y, left.Y)
}

func TestApplyOverrides(t *testing.T) {
	resetSpecies(t)
	held := KingPig

	err := ApplyOverrides([]byte(`
species:
  kingPig:
    run_speed: 95
    detection_range: 240
camera:
  follow_smoothing: 0.2
`))
	require.NoError(t, err)

	assert.Equal(t, 95.0, held.RunSpeed, "pointer holders see the update")
	assert.Equal(t, 240.0, held.DetectionRange)
	assert.Equal(t, 50.0, held.AttackRange, "unlisted fields keep defaults")
	assert.Equal(t, 0.2, Camera.FollowSmoothing)
	assert.Equal(t, 12, held.Clips[Idle].FrameCount, "clips are not tunable")
}

func TestApplyOverridesUnknownSpecies(t *testing.T) {
	resetSpecies(t)

	err := ApplyOverrides([]byte("species:\n  kingPig:\n    run_speed: 1\n  dragon:\n    run_speed: 2\n"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownSpecies))
	assert.Equal(t, 80.0, KingPig.RunSpeed, "nothing applies when one entry fails")
}

func TestLoadOverridesMissingFile(t *testing.T) {
	err := LoadOverrides(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWatchOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("species: {}\n"), 0o644))

	w, err := WatchOverrides(path)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("species:\n  king:\n    run_speed: 120\n"), 0o644))

	select {
	case got := <-w.Events:
		abs, _ := filepath.Abs(path)
		assert.Equal(t, abs, got)
	case <-time.After(2 * time.Second):
		t.Fatal("no change event")
	}
}
