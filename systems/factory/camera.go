package factory

import (
	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
		Zoom:   cfg.Camera.Zoom,
	})
	return camera
}
