package systems

import (
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // font.Face based faces come from the fonts package
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause toggles pause.
// This system should run AFTER UpdateInput but BEFORE other game systems.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	input := getOrCreateInput(ecs)

	if input.JustPressed(cfg.ActionPause) {
		pause.IsPaused = !pause.IsPaused
	}
}

// DrawPause renders the pause overlay.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}

	width := screen.Bounds().Dx()
	height := screen.Bounds().Dy()

	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	title := "PAUSED"
	face := fonts.Bold.Get()
	tw := text.BoundString(face, title).Dx()
	text.Draw(screen, title, face, (width-tw)/2, height/2, cfg.White)

	hint := "Esc: Resume"
	small := fonts.Small.Get()
	hw := text.BoundString(small, hint).Dx()
	text.Draw(screen, hint, small, (width-hw)/2, height/2+20, cfg.White)
}

// WithPauseCheck wraps a system to skip execution when paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if pause := GetOrCreatePause(e); pause.IsPaused {
			return
		}
		system(e)
	}
}

// WithGameplayChecks wraps a system to skip execution while paused or once
// the level is complete.
func WithGameplayChecks(system ecs.System) ecs.System {
	return WithPauseCheck(func(e *ecs.ECS) {
		if level, ok := components.Level.First(e.World); ok && components.Level.Get(level).Completed {
			return
		}
		system(e)
	})
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}
