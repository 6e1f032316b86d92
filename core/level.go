package core

import (
	"log"

	"github.com/automoto/pigking/collision"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/shared/leveldata"
)

// NewWorld builds the collision world of a parsed level.
func NewWorld(lvl *leveldata.Level) *collision.World {
	world := collision.NewWorld(lvl.Blocks, lvl.Platforms)
	log.Printf("Loaded level %s: %d blocks, %d platforms, %d enemies, %.0fx%.0f map",
		lvl.Name, len(lvl.Blocks), len(lvl.Platforms), len(lvl.Enemies), lvl.Width, lvl.Height)
	return world
}

// Spawn places a character of the given species at a level spawn point.
// Spawn points mark the bottom-centre of the hitbox so species of any size
// stand on the same floor.
func Spawn(x, y float64, s *config.SpeciesConfig) *Character {
	return New(SpawnOrigin(x, y, s), s)
}

// SpawnOrigin converts a bottom-centre spawn point into a sprite origin.
func SpawnOrigin(x, y float64, s *config.SpeciesConfig) gamemath.Vector2 {
	return gamemath.Vector2{
		X: x - s.HitboxOffsetX - s.HitboxWidth/2,
		Y: y - s.HitboxOffsetY - s.HitboxHeight,
	}
}
