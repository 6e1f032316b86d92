package core

import (
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
)

// CharacterSnapshot is the persistent part of a character.
type CharacterSnapshot struct {
	Species string  `json:"species"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Health  int     `json:"health"`
	Facing  float64 `json:"facing"`
}

func (c *Character) Snapshot() CharacterSnapshot {
	return CharacterSnapshot{
		Species: c.Species.Name,
		X:       c.Body.Position.X,
		Y:       c.Body.Position.Y,
		Health:  c.Combat.Health,
		Facing:  c.Anim.Facing,
	}
}

// Restore places the character from a snapshot. Velocity, animation and
// transient combat state reset. Health is clamped to the species range and a
// non-positive value restores full health.
func (c *Character) Restore(s CharacterSnapshot) {
	c.Body.Position = gamemath.Vector2{X: s.X, Y: s.Y}
	c.Body.Velocity = gamemath.Vector2{}
	c.Body.GroundContact = false

	health := s.Health
	if health <= 0 {
		health = c.Species.MaxHealth
	}
	c.Combat.Health = min(health, c.Species.MaxHealth)
	c.Combat.IsHit = false
	c.Combat.IsDead = false
	c.Combat.IsAttacking = false
	c.Combat.AttackActive = false
	c.Combat.HitCooldown = 0

	*c.Anim = components.NewAnimation(&c.Species.Clips)
	if s.Facing != 0 {
		c.Anim.Facing = gamemath.Sign(s.Facing)
	} else {
		c.Anim.Facing = config.DirectionRight
	}
}
