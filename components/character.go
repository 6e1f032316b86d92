package components

import (
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CharacterData binds an entity to its species tuning.
type CharacterData struct {
	Species *config.SpeciesConfig
}

// Hitbox is derived from position every time it is needed and never cached.
func (c *CharacterData) Hitbox(pos gamemath.Vector2) gamemath.Rect {
	return c.Species.HitboxAt(pos)
}

var Character = donburi.NewComponentType[CharacterData]()
