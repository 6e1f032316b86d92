package systems

import (
	"log"

	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCheckpoints activates the first inactive checkpoint the player
// touches. Every other checkpoint is deactivated, the respawn point moves to
// the checkpoint floor and a save is requested.
func UpdateCheckpoints(ecs *ecs.ECS) {
	_, player, ok := getPlayer(ecs)
	level := getLevel(ecs)
	if !ok || level == nil || player.Dead() {
		return
	}

	hitbox := player.Hitbox()
	var touched *components.CheckpointData
	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		if touched == nil && !cp.Activated && gamemath.Overlaps(hitbox, cp.Rect) {
			touched = cp
		}
	})
	if touched == nil {
		return
	}

	id := touched.ID
	tags.Checkpoint.Each(ecs.World, func(e *donburi.Entry) {
		cp := components.Checkpoint.Get(e)
		cp.Activated = cp.ID == id
	})

	level.ActiveCheckpoint = id
	level.Respawn = gamemath.Vector2{X: touched.Rect.CenterX(), Y: touched.Rect.Bottom()}
	if session := getSession(ecs); session != nil {
		session.AutosaveRequested = true
	}
	log.Printf("Checkpoint %s activated", id)
}
