package systems

import (
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// doorSwingTime is how long the exit door takes to open, in seconds.
const doorSwingTime = 0.3

// SwingDoor tweens a door from its current opening to target.
func SwingDoor(door *components.DoorData, target, seconds float64) {
	door.Tween = gween.New(float32(door.Open), float32(target), float32(seconds), ease.OutQuad)
}

// UpdateDoors advances door tweens.
func UpdateDoors(ecs *ecs.ECS) {
	dt := float32(cfg.C.DeltaTime())
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		door := components.Door.Get(e)
		if door.Tween == nil {
			return
		}
		open, done := door.Tween.Update(dt)
		door.Open = float64(open)
		if done {
			door.Tween = nil
		}
	})
}

func findDoor(ecs *ecs.ECS, kind string) *components.DoorData {
	var found *components.DoorData
	tags.Door.Each(ecs.World, func(e *donburi.Entry) {
		if d := components.Door.Get(e); found == nil && d.Kind == kind {
			found = d
		}
	})
	return found
}

// StartDoorOut plays the door-out clip on the player and closes the entry
// door behind it over the length of the clip.
func StartDoorOut(ecs *ecs.ECS, kind string) {
	_, player, ok := getPlayer(ecs)
	if !ok || !player.Anim.Lock(cfg.DoorOut) {
		return
	}
	if door := findDoor(ecs, kind); door != nil {
		door.Open = 1
		SwingDoor(door, 0, player.Species.Clips[cfg.DoorOut].Duration())
	}
}
