package components

import (
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
)

// CombatData holds health and the transient combat flags of a character.
// Timers are countdowns in seconds.
type CombatData struct {
	Health    int
	MaxHealth int

	IsHit       bool
	IsDead      bool
	IsAttacking bool

	HitCooldown    float64
	AttackCooldown float64

	AttackBox    gamemath.Rect
	AttackActive bool
}

func NewCombat(maxHealth int) CombatData {
	return CombatData{Health: maxHealth, MaxHealth: maxHealth}
}

// Tick counts down the cooldowns. IsHit clears when the hit cooldown ends.
func (c *CombatData) Tick(dt float64) {
	if c.HitCooldown > 0 {
		c.HitCooldown -= dt
		if c.HitCooldown <= 0 {
			c.HitCooldown = 0
			c.IsHit = false
		}
	}
	if c.AttackCooldown > 0 {
		c.AttackCooldown = max(0, c.AttackCooldown-dt)
	}
}

// HealthFraction returns health in [0, 1].
func (c *CombatData) HealthFraction() float64 {
	if c.MaxHealth <= 0 {
		return 0
	}
	return gamemath.Clamp(float64(c.Health)/float64(c.MaxHealth), 0, 1)
}

var Combat = donburi.NewComponentType[CombatData]()
