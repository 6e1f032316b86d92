package factory

import (
	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateDoor(ecs *ecs.ECS, door leveldata.Door) *donburi.Entry {
	entry := archetypes.Door.Spawn(ecs)
	components.Door.SetValue(entry, components.DoorData{
		Kind: door.Kind,
		Rect: door.Rect,
	})
	return entry
}
