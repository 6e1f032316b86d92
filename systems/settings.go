package systems

import (
	"log"

	cfg "github.com/automoto/pigking/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings handles the window and debug hotkeys and stores any change.
func UpdateSettings(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	changed := false

	if input.JustPressed(cfg.ActionDebug) {
		cfg.Debug.Overlay = !cfg.Debug.Overlay
		log.Printf("Debug overlay: %v", cfg.Debug.Overlay)
		changed = true
	}
	if input.JustPressed(cfg.ActionFullscreen) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
		changed = true
	}
	if input.JustPressed(cfg.ActionResolution) && len(cfg.Settings.Resolutions) > 0 {
		resolutionIndex = nextResolution(resolutionIndex)
		res := cfg.Settings.Resolutions[resolutionIndex]
		if !ebiten.IsFullscreen() {
			ebiten.SetWindowSize(res.Width, res.Height)
		}
		log.Printf("Resolution: %s", res.Label)
		changed = true
	}

	if changed {
		_ = SaveSettings(CurrentSettings())
	}
}

// nextResolution cycles through the configured window sizes.
func nextResolution(i int) int {
	n := len(cfg.Settings.Resolutions)
	if n == 0 || i < 0 || i >= n {
		return 0
	}
	return (i + 1) % n
}
