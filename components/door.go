package components

import (
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type DoorData struct {
	Kind string
	Rect gamemath.Rect
	// Open is 0 when closed and 1 when fully open.
	Open  float64
	Tween *gween.Tween
}

var Door = donburi.NewComponentType[DoorData]()
