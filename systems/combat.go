package systems

import (
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCombat resolves active attack boxes: the player's against every
// enemy, then each enemy's against the player. Hits shake the camera.
func UpdateCombat(ecs *ecs.ECS) {
	entry, player, ok := getPlayer(ecs)
	if !ok {
		return
	}

	var enemies []*core.Character
	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemies = append(enemies, core.FromEntry(e))
	})

	if player.CheckAttackCollision(enemies) > 0 {
		TriggerScreenShake(ecs, cfg.ScreenShake.EnemyDamageIntensity, cfg.ScreenShake.EnemyDamageDuration)
	}

	before := player.Combat.Health
	targets := []*core.Character{player}
	for _, enemy := range enemies {
		enemy.CheckAttackCollision(targets)
	}

	pd := components.Player.Get(entry)
	pd.DamageTaken = before - player.Combat.Health
	if pd.DamageTaken > 0 {
		TriggerScreenShake(ecs, cfg.ScreenShake.PlayerDamageIntensity, cfg.ScreenShake.PlayerDamageDuration)
	}
}
