package systems

import (
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this tick's input into player intent. Pressing up at
// the exit door while standing starts the door-in sequence instead.
func UpdatePlayer(ecs *ecs.ECS) {
	entry, player, ok := getPlayer(ecs)
	if !ok {
		return
	}

	intent := IntentFrom(getOrCreateInput(ecs))
	if intent.Up && tryEnterDoor(ecs, entry, player) {
		return
	}
	player.Control(intent)
}

func tryEnterDoor(ecs *ecs.ECS, entry *donburi.Entry, player *core.Character) bool {
	if player.Dead() || player.Anim.Locked || !player.Body.IsOnGround {
		return false
	}
	door := findDoor(ecs, leveldata.DoorExit)
	if door == nil || !gamemath.Overlaps(player.Hitbox(), door.Rect) {
		return false
	}
	if !player.Anim.Lock(cfg.DoorIn) {
		return false
	}

	player.Body.Velocity.X = 0
	components.Player.Get(entry).EnteringDoor = true
	SwingDoor(door, 1, doorSwingTime)
	return true
}
