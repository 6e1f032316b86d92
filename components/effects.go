package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake effect on the camera. Intensity
// decays to zero over the shake duration.
type ScreenShakeData struct {
	Intensity float64 // current max offset in pixels
	Elapsed   float64
	Decay     *gween.Tween
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
