package components

import "github.com/yohamta/donburi"

// SpriteData names the sprite sheet directory of a character. Frames are
// resolved through the asset provider at draw time.
type SpriteData struct {
	SheetKey string
}

var Sprite = donburi.NewComponentType[SpriteData]()
