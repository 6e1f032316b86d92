package systems

import (
	"math"

	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Shake oscillation rates in radians per second.
const (
	shakeRateX = 66.0
	shakeRateY = 78.0
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	if target, ok := cameraTarget(e, camera); ok {
		camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
	}

	updateScreenShake(cameraEntry, camera)
}

// SnapCamera moves the camera onto its target without smoothing.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	if target, ok := cameraTarget(e, camera); ok {
		camera.Position.X = target.X
		camera.Position.Y = target.Y
	}
}

// cameraTarget centres the view on the player's hitbox, clamped so the view
// never leaves the level.
func cameraTarget(e *ecs.ECS, camera *components.CameraData) (gamemath.Vector2, bool) {
	_, player, ok := getPlayer(e)
	level := getLevel(e)
	if !ok || level == nil {
		return gamemath.Vector2{}, false
	}

	view := camera.View()
	center := player.Hitbox().Center()
	return gamemath.Vector2{
		X: gamemath.Clamp(center.X-view.Width/2, 0, max(0, level.Level.Width-view.Width)),
		Y: gamemath.Clamp(center.Y-view.Height/2, 0, max(0, level.Level.Height-view.Height)),
	}, true
}

// updateScreenShake offsets the camera while the shake intensity decays.
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	dt := config.C.DeltaTime()
	shake.Elapsed += dt
	intensity, done := shake.Decay.Update(float32(dt))
	shake.Intensity = float64(intensity)

	camera.Position.X += math.Sin(shake.Elapsed*shakeRateX) * shake.Intensity
	camera.Position.Y += math.Cos(shake.Elapsed*shakeRateY) * shake.Intensity

	if done {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake. A running shake is only replaced
// by a stronger one.
func TriggerScreenShake(ecs *ecs.ECS, intensity, duration float64) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || intensity <= 0 || duration <= 0 {
		return
	}

	next := components.ScreenShakeData{
		Intensity: intensity,
		Decay:     gween.New(float32(intensity), 0, float32(duration), ease.Linear),
	}
	if cameraEntry.HasComponent(components.ScreenShake) {
		if shake := components.ScreenShake.Get(cameraEntry); intensity > shake.Intensity {
			*shake = next
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, next)
}
