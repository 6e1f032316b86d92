// Package render draws simulation state through a Sink. The simulation never
// touches the screen; systems hand it a sink bound to the current frame.
package render

import (
	"image"

	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sink receives sprite draws: the image, the source rect within it, the
// world-space destination and whether to mirror horizontally.
type Sink interface {
	Draw(img *ebiten.Image, src image.Rectangle, dst gamemath.Rect, flip bool)
}

// SpriteRect returns where a character sprite is drawn. Facing left mirrors
// the sprite about the hitbox centre so the body stays over the hitbox,
// which itself is never mirrored.
func SpriteRect(s *config.SpeciesConfig, pos gamemath.Vector2, facing float64) (gamemath.Rect, bool) {
	dst := gamemath.NewRect(pos.X, pos.Y, s.Width, s.Height)
	if facing >= 0 {
		return dst, false
	}
	centre := pos.X + s.HitboxOffsetX + s.HitboxWidth/2
	dst.X = centre - (s.Width - (s.HitboxOffsetX + s.HitboxWidth/2))
	return dst, true
}

// Character draws one animation frame of a character.
func Character(sink Sink, frame *ebiten.Image, s *config.SpeciesConfig, pos gamemath.Vector2, anim *components.AnimationData) {
	if frame == nil {
		return
	}
	dst, flip := SpriteRect(s, pos, anim.Facing)
	sink.Draw(frame, frame.Bounds(), dst, flip)
}

// ScreenSink draws onto an ebiten image through a camera. Flash whitens the
// following draws when a shader is set.
type ScreenSink struct {
	Screen *ebiten.Image
	Camera *components.CameraData
	Shader *ebiten.Shader
	Flash  float64

	op       ebiten.DrawImageOptions
	shaderOp ebiten.DrawRectShaderOptions
}

func NewScreenSink(screen *ebiten.Image, camera *components.CameraData, shader *ebiten.Shader) *ScreenSink {
	return &ScreenSink{Screen: screen, Camera: camera, Shader: shader}
}

func (s *ScreenSink) Draw(img *ebiten.Image, src image.Rectangle, dst gamemath.Rect, flip bool) {
	if img == nil || src.Empty() || dst.Empty() {
		return
	}
	if s.Camera != nil && !gamemath.Overlaps(s.Camera.View(), dst) {
		return
	}

	tl := s.toScreen(gamemath.Vector2{X: dst.X, Y: dst.Y})
	br := s.toScreen(gamemath.Vector2{X: dst.Right(), Y: dst.Bottom()})
	sw, sh := float64(src.Dx()), float64(src.Dy())

	var geo ebiten.GeoM
	if flip {
		geo.Scale(-1, 1)
		geo.Translate(sw, 0)
	}
	geo.Scale((br.X-tl.X)/sw, (br.Y-tl.Y)/sh)
	geo.Translate(tl.X, tl.Y)

	sub := img.SubImage(src).(*ebiten.Image)
	if s.Flash > 0 && s.Shader != nil {
		s.shaderOp.GeoM = geo
		s.shaderOp.Images[0] = sub
		s.shaderOp.Uniforms = map[string]any{"Flash": float32(gamemath.Clamp(s.Flash, 0, 1))}
		s.Screen.DrawRectShader(src.Dx(), src.Dy(), s.Shader, &s.shaderOp)
		return
	}
	s.op.GeoM = geo
	s.Screen.DrawImage(sub, &s.op)
}

func (s *ScreenSink) toScreen(p gamemath.Vector2) gamemath.Vector2 {
	if s.Camera == nil {
		return p
	}
	return s.Camera.WorldToScreen(p)
}

// ScreenRect converts a world rect to screen space.
func (s *ScreenSink) ScreenRect(r gamemath.Rect) gamemath.Rect {
	tl := s.toScreen(gamemath.Vector2{X: r.X, Y: r.Y})
	br := s.toScreen(gamemath.Vector2{X: r.Right(), Y: r.Bottom()})
	return gamemath.NewRect(tl.X, tl.Y, br.X-tl.X, br.Y-tl.Y)
}

// Recorder is a Sink that keeps every draw call, used by tests and tools.
type Recorder struct {
	Calls []Call
}

type Call struct {
	Image *ebiten.Image
	Src   image.Rectangle
	Dst   gamemath.Rect
	Flip  bool
}

func (r *Recorder) Draw(img *ebiten.Image, src image.Rectangle, dst gamemath.Rect, flip bool) {
	r.Calls = append(r.Calls, Call{Image: img, Src: src, Dst: dst, Flip: flip})
}
