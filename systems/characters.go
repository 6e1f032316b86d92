package systems

import (
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCharacters runs one kinematic step for the player, then for every
// enemy. Finished death clips mark the entity for removal and a finished
// door-in clip completes the level.
func UpdateCharacters(ecs *ecs.ECS) {
	level := getLevel(ecs)
	if level == nil {
		return
	}
	dt := cfg.C.DeltaTime()

	if entry, player, ok := getPlayer(ecs); ok {
		res := player.Step(level.World, dt)
		if res.ClipDone {
			switch res.Completed {
			case cfg.Dead:
				markDead(entry, cfg.C.GameOverDelay)
			case cfg.DoorIn:
				components.Player.Get(entry).EnteringDoor = false
				level.Completed = true
			}
		}
	}

	var finished []*donburi.Entry
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.Death) {
			return
		}
		res := core.FromEntry(e).Step(level.World, dt)
		if res.ClipDone && res.Completed == cfg.Dead {
			finished = append(finished, e)
		}
	})
	for _, e := range finished {
		markDead(e, 0)
	}
}

func markDead(entry *donburi.Entry, delay float64) {
	if entry.HasComponent(components.Death) {
		return
	}
	entry.AddComponent(components.Death)
	components.Death.SetValue(entry, components.DeathData{Timer: delay})
}
