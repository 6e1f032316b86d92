package systems

import (
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func getLevel(ecs *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func getSession(ecs *ecs.ECS) *components.SessionData {
	entry, ok := components.Session.First(ecs.World)
	if !ok {
		return nil
	}
	return components.Session.Get(entry)
}

func getPlayer(ecs *ecs.ECS) (*donburi.Entry, *core.Character, bool) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return nil, nil, false
	}
	return entry, core.FromEntry(entry), true
}

// IsLevelComplete reports whether the player has left through the exit door.
func IsLevelComplete(ecs *ecs.ECS) bool {
	level := getLevel(ecs)
	return level != nil && level.Completed
}

// PlayerSnapshot returns the persistent state of the player, if alive.
func PlayerSnapshot(ecs *ecs.ECS) (core.CharacterSnapshot, bool) {
	_, player, ok := getPlayer(ecs)
	if !ok || player.Dead() {
		return core.CharacterSnapshot{}, false
	}
	return player.Snapshot(), true
}
