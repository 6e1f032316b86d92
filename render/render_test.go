package render

import (
	"testing"

	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

func TestSpriteRectFacingRight(t *testing.T) {
	s := config.Player
	dst, flip := SpriteRect(s, gamemath.Vector2{X: 100, Y: 50}, config.DirectionRight)
	assert.False(t, flip)
	assert.Equal(t, gamemath.NewRect(100, 50, s.Width, s.Height), dst)
}

func TestSpriteRectFacingLeftKeepsBodyOverHitbox(t *testing.T) {
	for _, s := range []*config.SpeciesConfig{config.Player, config.KingPig} {
		pos := gamemath.Vector2{X: 100, Y: 50}
		hitbox := s.HitboxAt(pos)

		dst, flip := SpriteRect(s, pos, config.DirectionLeft)
		assert.True(t, flip)
		assert.Equal(t, pos.Y, dst.Y)
		// In the mirrored sprite the body centre sits that far from the right edge.
		mirroredCentre := dst.Right() - (s.HitboxOffsetX + s.HitboxWidth/2)
		assert.InDelta(t, hitbox.CenterX(), mirroredCentre, 1e-9, s.Name)
	}
}

func TestCharacterSkipsMissingFrame(t *testing.T) {
	var rec Recorder
	anim := components.NewAnimation(&config.Player.Clips)
	Character(&rec, nil, config.Player, gamemath.Vector2{}, &anim)
	assert.Empty(t, rec.Calls)
}
