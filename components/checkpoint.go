package components

import (
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
)

type CheckpointData struct {
	ID        string
	Rect      gamemath.Rect
	Activated bool
}

var Checkpoint = donburi.NewComponentType[CheckpointData]()
