package factory

import (
	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCheckpoint(ecs *ecs.ECS, cp leveldata.Checkpoint, activated bool) *donburi.Entry {
	entry := archetypes.Checkpoint.Spawn(ecs)
	components.Checkpoint.SetValue(entry, components.CheckpointData{
		ID:        cp.ID,
		Rect:      cp.Rect,
		Activated: activated,
	})
	return entry
}
