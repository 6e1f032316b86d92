package factory

import (
	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the singleton that tracks the save slot and play
// time of the running game.
func CreateSession(ecs *ecs.ECS, slot int, playTime float64) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{
		Slot:     slot,
		PlayTime: playTime,
	})
	return entry
}

func CreateHUD(ecs *ecs.ECS, health float64) *donburi.Entry {
	entry := archetypes.HUD.Spawn(ecs)
	components.HUD.SetValue(entry, components.HUDData{
		Displayed: health,
		Target:    health,
	})
	return entry
}
