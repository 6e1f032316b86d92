// Package core is the shared per-character simulation: kinematics against a
// collision world, animation locking and melee combat. Every species runs
// the same code with its own tuning. Nothing here draws or reads devices;
// callers pass the world, intent and time step explicitly.
package core

import (
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Character is the capability set shared by the player and enemies. It
// operates on component data owned elsewhere, usually by an ECS entry.
type Character struct {
	Body    *components.BodyData
	Anim    *components.AnimationData
	Combat  *components.CombatData
	Species *config.SpeciesConfig
}

// New builds a standalone character with its own component data.
func New(pos gamemath.Vector2, s *config.SpeciesConfig) *Character {
	body := components.NewBody(pos, s)
	anim := components.NewAnimation(&s.Clips)
	combat := components.NewCombat(s.MaxHealth)
	return &Character{Body: &body, Anim: &anim, Combat: &combat, Species: s}
}

// FromEntry wraps the components of an ECS entry. The entry must carry Body,
// Animation, Combat and Character.
func FromEntry(entry *donburi.Entry) *Character {
	return &Character{
		Body:    components.Body.Get(entry),
		Anim:    components.Animation.Get(entry),
		Combat:  components.Combat.Get(entry),
		Species: components.Character.Get(entry).Species,
	}
}

// Hitbox is always derived from the current position.
func (c *Character) Hitbox() gamemath.Rect {
	return c.Species.HitboxAt(c.Body.Position)
}

// AttackBox is the area a melee attack would hit right now.
func (c *Character) AttackBox() gamemath.Rect {
	return c.Species.AttackBoxAt(c.Hitbox(), c.Anim.Facing)
}

func (c *Character) Dead() bool {
	return c.Combat.IsDead
}

// Jump launches the character when it is on the ground.
func (c *Character) Jump() bool {
	if c.Combat.IsDead {
		return false
	}
	return c.Body.Jump(c.Species.JumpPower)
}

// Attack starts a melee attack. It does nothing while another clip is locked,
// after death or during the attack cooldown. Attacking stops horizontal
// movement.
func (c *Character) Attack() bool {
	if c.Anim.Locked || c.Combat.IsDead || c.Combat.AttackCooldown > 0 {
		return false
	}
	if !c.Anim.Lock(config.Attack) {
		return false
	}
	c.Body.Velocity.X = 0
	c.Combat.IsAttacking = true
	c.Combat.AttackActive = true
	c.Combat.AttackBox = c.AttackBox()
	return true
}

// TakeDamage applies a hit. It is ignored while the character is still
// recovering from the previous hit or is dead. attackerFacing is the
// direction the attacker faces and decides the knockback direction; zero
// knocks the character backwards from its own facing.
func (c *Character) TakeDamage(amount int, attackerFacing float64) bool {
	cb := c.Combat
	if cb.IsHit || cb.IsDead {
		return false
	}

	cb.Health = max(0, cb.Health-max(0, amount))
	cb.IsHit = true
	cb.HitCooldown = c.Species.HitCooldown
	cb.IsAttacking = false
	cb.AttackActive = false

	if cb.Health == 0 {
		cb.IsDead = true
		c.Body.Velocity = gamemath.Vector2{}
		c.Body.GroundContact = false
		c.Anim.Lock(config.Dead)
		return true
	}

	dir := gamemath.Sign(attackerFacing)
	if dir == 0 {
		dir = -c.Anim.Facing
	}
	c.Body.Velocity.X = dir * c.Species.KnockbackX
	c.Body.Velocity.Y = c.Species.KnockbackY
	c.Body.GroundContact = false
	c.Anim.Lock(config.Hit)
	return true
}

// CheckAttackCollision damages every target overlapping the active attack
// box and returns how many took damage. Targets already recovering from a
// hit ignore repeated checks on later ticks.
func (c *Character) CheckAttackCollision(targets []*Character) int {
	if !c.Combat.AttackActive || c.Combat.IsHit || c.Combat.IsDead {
		return 0
	}
	box := c.Combat.AttackBox
	hits := 0
	for _, t := range targets {
		if t == nil || t == c {
			continue
		}
		if gamemath.Overlaps(box, t.Hitbox()) && t.TakeDamage(c.Species.Damage, c.Anim.Facing) {
			hits++
		}
	}
	return hits
}

// Intent is one tick of player control.
type Intent struct {
	Left, Right bool
	Jump        bool
	Attack      bool
	Up          bool
}

// Control applies player intent. Locked clips keep their velocity so
// knockback and attacks play out.
func (c *Character) Control(in Intent) {
	if c.Combat.IsDead || c.Anim.Locked {
		return
	}

	vx := 0.0
	if in.Left {
		vx -= c.Species.RunSpeed
	}
	if in.Right {
		vx += c.Species.RunSpeed
	}
	c.Body.Velocity.X = vx

	if in.Jump {
		c.Jump()
	}
	if in.Attack {
		c.Attack()
	}
}
