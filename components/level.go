package components

import (
	"github.com/automoto/pigking/collision"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Level      *leveldata.Level
	World      *collision.World
	LevelIndex int
	LevelCount int

	// Respawn is where the player starts after loading this level from a
	// save. It moves to the last activated checkpoint.
	Respawn          gamemath.Vector2
	ActiveCheckpoint string
	// Completed is set once the player has walked through the exit door.
	Completed bool
}

var Level = donburi.NewComponentType[LevelData]()
