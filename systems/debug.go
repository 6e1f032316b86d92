package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/pigking/collision"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/fonts"
	"github.com/automoto/pigking/render"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based faces come from the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines the collision geometry, hitboxes and live attack boxes.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	sink := newSink(ecs, screen)

	if level := getLevel(ecs); level != nil {
		drawSpace(sink, level.World)
	}

	draw := func(e *donburi.Entry) {
		c := core.FromEntry(e)
		strokeRect(sink, c.Hitbox(), cfg.Debug.HitboxColor)
		if c.Combat.AttackActive {
			strokeRect(sink, c.Combat.AttackBox, cfg.Debug.AttackColor)
		}
	}
	tags.Enemy.Each(ecs.World, draw)
	tags.Player.Each(ecs.World, draw)

	line := fmt.Sprintf("FPS %.0f TPS %.0f", ebiten.ActualFPS(), ebiten.ActualTPS())
	text.Draw(screen, line, fonts.Small.Get(), 4, screen.Bounds().Dy()-4, cfg.White)
}

// drawSpace draws the broadphase objects, which are stored relative to the
// world origin.
func drawSpace(sink *render.ScreenSink, world *collision.World) {
	space := world.Space()
	if space == nil {
		return
	}
	origin := world.Origin()
	for _, obj := range space.Objects() {
		r := gamemath.NewRect(obj.X+origin.X, obj.Y+origin.Y, obj.W, obj.H)
		c := cfg.Debug.BlockColor
		if obj.HasTags(collision.TagPlatform) {
			c = cfg.Debug.PlatColor
		}
		strokeRect(sink, r, c)
	}
}

func strokeRect(sink *render.ScreenSink, r gamemath.Rect, c color.RGBA) {
	if sink.Camera != nil && !gamemath.Overlaps(sink.Camera.View(), r) {
		return
	}
	s := sink.ScreenRect(r)
	vector.StrokeRect(sink.Screen, float32(s.X), float32(s.Y), float32(s.Width), float32(s.Height), 1, c, false)
}
