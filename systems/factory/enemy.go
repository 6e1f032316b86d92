package factory

import (
	"log"

	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns an enemy of the species named by the level. Unknown
// species are skipped with a warning and nil is returned.
func CreateEnemy(ecs *ecs.ECS, spawn leveldata.EnemySpawn) *donburi.Entry {
	species, ok := cfg.LookupSpecies(spawn.Species)
	if !ok {
		log.Printf("Warning: unknown enemy species %q at (%.0f, %.0f), skipping", spawn.Species, spawn.X, spawn.Y)
		return nil
	}

	enemy := archetypes.Enemy.Spawn(ecs)
	setCharacter(enemy, core.Spawn(spawn.X, spawn.Y, species))
	components.Enemy.SetValue(enemy, components.EnemyData{})

	// Enemies start facing left, toward where the player enters.
	components.Animation.Get(enemy).Facing = cfg.DirectionLeft
	return enemy
}
