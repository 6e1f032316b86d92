package factory

import (
	"github.com/automoto/pigking/archetypes"
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the king with the bottom-centre of its hitbox at spawn.
func CreatePlayer(ecs *ecs.ECS, spawn gamemath.Vector2) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)
	setCharacter(player, core.Spawn(spawn.X, spawn.Y, cfg.Player))
	components.Player.SetValue(player, components.PlayerData{})
	return player
}

// setCharacter copies a freshly built character into the entry's components.
func setCharacter(entry *donburi.Entry, c *core.Character) {
	components.Character.SetValue(entry, components.CharacterData{Species: c.Species})
	components.Body.SetValue(entry, *c.Body)
	components.Animation.SetValue(entry, *c.Anim)
	components.Combat.SetValue(entry, *c.Combat)
	components.Sprite.SetValue(entry, components.SpriteData{SheetKey: c.Species.Name})
}
