package systems

import (
	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths counts down finished deaths and removes the entities whose
// timer ran out. The scene treats a missing player as game over.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	var expired []*donburi.Entry
	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})
	for _, e := range expired {
		ecs.World.Remove(e.Entity())
	}
}
