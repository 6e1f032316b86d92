package archetypes

import (
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Default is the only render layer.
const Default ecs.LayerID = 0

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Character,
		components.Body,
		components.Animation,
		components.Combat,
		components.Sprite,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Character,
		components.Body,
		components.Animation,
		components.Combat,
		components.Sprite,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
	)
	Door = newArchetype(
		tags.Door,
		components.Door,
	)
	Session = newArchetype(
		components.Session,
	)
	HUD = newArchetype(
		components.HUD,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		Default,
		append(a.components, cs...)...,
	))
	return e
}
