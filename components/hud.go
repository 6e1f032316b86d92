package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// HUDData smooths the health bar: Displayed drains toward the real value.
type HUDData struct {
	Displayed float64
	Target    float64
	Tween     *gween.Tween
}

var HUD = donburi.NewComponentType[HUDData]()
