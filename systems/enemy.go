package systems

import (
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/core"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEnemies runs the chase AI of every enemy against the player.
func UpdateEnemies(ecs *ecs.ECS) {
	target, hasTarget := playerTarget(ecs)

	tags.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		enemy := core.FromEntry(e)
		enemy.Think(components.Enemy.Get(e), target, hasTarget)
	})
}

// playerTarget returns the hitbox enemies chase. A dead or missing player
// is no target.
func playerTarget(ecs *ecs.ECS) (gamemath.Rect, bool) {
	_, player, ok := getPlayer(ecs)
	if !ok || player.Dead() {
		return gamemath.Rect{}, false
	}
	return player.Hitbox(), true
}
