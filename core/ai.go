package core

import (
	"math"

	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/shared/gamemath"
)

// Think runs the enemy chase behaviour for one tick:
//
//   - aggro latches once the target is within detection range
//   - the enemy faces the target and attacks within attack range
//   - it jumps when the target is above and close, or when a wall blocks it
//   - otherwise it runs toward the target
//
// Distances are measured between hitbox centres. hasTarget is false when
// there is no living target; the enemy then stands still.
func (c *Character) Think(ai *components.EnemyData, target gamemath.Rect, hasTarget bool) {
	if c.Combat.IsDead || c.Anim.Locked {
		return
	}
	if !hasTarget {
		c.Body.Velocity.X = 0
		return
	}

	s := c.Species
	hb := c.Hitbox()
	dx := target.CenterX() - hb.CenterX()
	dy := target.CenterY() - hb.CenterY()
	dist := math.Hypot(dx, dy)

	if !ai.Aggro && dist <= s.DetectionRange {
		ai.Aggro = true
	}
	if !ai.Aggro {
		c.Body.Velocity.X = 0
		return
	}

	if dx != 0 {
		c.Anim.Facing = gamemath.Sign(dx)
	}

	if dist <= s.AttackRange {
		c.Body.Velocity.X = 0
		c.Attack()
		return
	}

	if c.Body.IsOnGround {
		targetAbove := dy < s.JumpTriggerDY && math.Abs(dx) < s.JumpTriggerDX
		if targetAbove || c.Body.BlockedX {
			c.Jump()
		}
	}
	c.Body.Velocity.X = c.Anim.Facing * s.RunSpeed
}
