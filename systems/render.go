package systems

import (
	"image"
	"math"

	"github.com/automoto/pigking/assets"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/render"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Hit flash blink rate in blinks per second.
const hitBlinkRate = 12.0

const (
	doorImage       = "door.png"
	checkpointImage = "checkpoint.png"
)

func getCamera(ecs *ecs.ECS) *components.CameraData {
	entry, ok := components.Camera.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Camera.Get(entry)
}

func newSink(ecs *ecs.ECS, screen *ebiten.Image) *render.ScreenSink {
	return render.NewScreenSink(screen, getCamera(ecs), assets.FlashShader)
}

// DrawLevel draws the pre-rendered tile layers of the current level.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	levels := assets.LoadedLevels()
	if level.LevelIndex >= len(levels) {
		return
	}
	bg := levels[level.LevelIndex].Background
	newSink(ecs, screen).Draw(bg, bg.Bounds(), level.Level.Bounds(), false)
}

// DrawCharacters draws enemies, then the player on top. Characters recovering
// from a hit blink white.
func DrawCharacters(ecs *ecs.ECS, screen *ebiten.Image) {
	sink := newSink(ecs, screen)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		drawCharacter(sink, e)
	})
	if entry, ok := tags.Player.First(ecs.World); ok {
		drawCharacter(sink, entry)
	}
}

func drawCharacter(sink *render.ScreenSink, entry *donburi.Entry) {
	c := core.FromEntry(entry)
	sprite := components.Sprite.Get(entry)
	frame := assets.GetFrame(sprite.SheetKey, c.Anim.State, c.Anim.Frame, c.Species.FrameWidth, c.Species.FrameHeight)

	sink.Flash = hitFlash(c.Combat)
	render.Character(sink, frame, c.Species, c.Body.Position, c.Anim)
	sink.Flash = 0
}

func hitFlash(combat *components.CombatData) float64 {
	if !combat.IsHit || combat.IsDead {
		return 0
	}
	if math.Mod(combat.HitCooldown*hitBlinkRate, 1) < 0.5 {
		return 1
	}
	return 0
}

// DrawDoors draws each door closed, with the open frame faded in by how far
// the door has swung.
func DrawDoors(ecs *ecs.ECS, screen *ebiten.Image) {
	sink := newSink(ecs, screen)
	img := assets.GetObjectImage(doorImage)

	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		closed, open := twoFrames(img)
		sink.Draw(img, closed, door.Rect, false)
		if door.Open <= 0 || open.Empty() {
			return
		}
		sink.Screen.DrawImage(frameAt(img, open), doorOpenOp(sink, door, open))
	})
}

func doorOpenOp(sink *render.ScreenSink, door *components.DoorData, src image.Rectangle) *ebiten.DrawImageOptions {
	dst := sink.ScreenRect(door.Rect)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.Width/float64(src.Dx()), dst.Height/float64(src.Dy()))
	op.GeoM.Translate(dst.X, dst.Y)
	op.ColorScale.ScaleAlpha(float32(gamemath.Clamp(door.Open, 0, 1)))
	return op
}

// DrawCheckpoints draws each checkpoint flag, raised once activated.
func DrawCheckpoints(ecs *ecs.ECS, screen *ebiten.Image) {
	sink := newSink(ecs, screen)
	img := assets.GetObjectImage(checkpointImage)

	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		inactive, active := twoFrames(img)
		src := inactive
		if cp.Activated && !active.Empty() {
			src = active
		}
		sink.Draw(img, src, cp.Rect, false)
	})
}

// twoFrames splits a two-frame horizontal strip. Images too small to split,
// such as the placeholder, are used whole for the first frame.
func twoFrames(img *ebiten.Image) (first, second image.Rectangle) {
	b := img.Bounds()
	if b.Dx() < 2 {
		return b, image.Rectangle{}
	}
	w := b.Dx() / 2
	return assets.FrameRect(0, w, b.Dy()), assets.FrameRect(1, w, b.Dy())
}

func frameAt(img *ebiten.Image, src image.Rectangle) *ebiten.Image {
	return img.SubImage(src).(*ebiten.Image)
}
