package factory

import (
	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/assets"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/core"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

// CreateLevelAtIndex spawns the level entity. Out-of-range indices wrap to
// the first level, so finishing the last level starts over.
func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	levels := assets.LoadedLevels()
	if len(levels) == 0 {
		panic("No levels found in embedded level files")
	}
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	lvl := levels[levelIndex].Level

	level := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(level, components.LevelData{
		Level:      lvl,
		World:      core.NewWorld(lvl),
		LevelIndex: levelIndex,
		LevelCount: len(levels),
		Respawn:    lvl.PlayerSpawn,
	})
	return level
}
