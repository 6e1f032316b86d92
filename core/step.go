package core

import (
	"github.com/automoto/pigking/collision"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
)

// StepResult reports what happened during one tick.
type StepResult struct {
	Ground components.GroundEvent
	// ClipDone is set when a locked clip finished this tick; Completed names
	// it.
	ClipDone  bool
	Completed config.StateID
}

// Step advances the character by one fixed tick of length dt:
//
//  1. count down combat timers
//  2. apply gravity, then cap the fall speed
//  3. move horizontally and push out of blocks
//  4. move vertically, push out of blocks, then land on platforms, then
//     probe for resting contact
//  5. update the debounced ground state, animation and attack box
func (c *Character) Step(world *collision.World, dt float64) StepResult {
	var res StepResult
	b := c.Body

	c.Combat.Tick(dt)
	b.ApplyGravity(dt)

	b.BlockedX = false
	if b.Velocity.X != 0 {
		b.Position.X += b.Velocity.X * dt
		if hit := world.ResolveHorizontal(c.Hitbox(), b.Velocity.X); hit.Hit {
			b.Position.X += hit.Shift
			b.Velocity.X = 0
			b.BlockedX = true
		}
	}

	b.GroundContact = false
	b.Position.Y += b.Velocity.Y * dt
	if hit := world.ResolveVertical(c.Hitbox(), b.Velocity.Y); hit.Hit {
		b.Position.Y += hit.Shift
		b.Velocity.Y = 0
		b.GroundContact = hit.Ground
	}
	if !b.GroundContact {
		if hit := world.ResolvePlatforms(c.Hitbox(), b.Velocity.Y); hit.Hit {
			b.Position.Y += hit.Shift
			b.Velocity.Y = 0
			b.GroundContact = true
		}
	}
	if !b.GroundContact && b.Velocity.Y >= 0 && world.Supported(c.Hitbox()) {
		b.Velocity.Y = 0
		b.GroundContact = true
	}

	res.Ground = b.UpdateGround(dt)

	c.Anim.Derive(b.Velocity)
	if completed, done := c.Anim.Update(dt); done {
		res.ClipDone = true
		res.Completed = completed
		if completed == config.Attack {
			c.Combat.IsAttacking = false
			c.Combat.AttackActive = false
			c.Combat.AttackCooldown = c.Species.AttackCooldown
		}
	}
	c.Combat.AttackBox = c.AttackBox()

	return res
}
