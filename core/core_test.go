package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/automoto/pigking/collision"
	"github.com/automoto/pigking/components"
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/automoto/pigking/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const dt = 1.0 / 60

// boxSpecies is the player tuning with a 16x8 hitbox at the sprite origin.
func boxSpecies() *config.SpeciesConfig {
	s := *config.Player
	s.HitboxOffsetX = 0
	s.HitboxOffsetY = 0
	s.HitboxWidth = 16
	s.HitboxHeight = 8
	s.AttackCooldown = 0
	return &s
}

func floorWorld() *collision.World {
	return collision.NewWorld([]gamemath.Rect{gamemath.NewRect(-16, 16, 48, 16)}, nil)
}

func TestSettlesOnBlock(t *testing.T) {
	c := New(gamemath.Vector2{}, boxSpecies())
	world := floorWorld()

	landedAt := -1
	for tick := 1; tick <= 30; tick++ {
		c.Step(world, dt)
		if landedAt < 0 && c.Body.GroundContact {
			landedAt = tick
		}
	}

	assert.Equal(t, 10, landedAt)
	assert.True(t, c.Body.IsOnGround)
	assert.Zero(t, c.Body.Velocity.Y)
	assert.InDelta(t, 16-collision.Buffer, c.Hitbox().Bottom(), 1e-9)
	assert.Equal(t, config.Idle, c.Anim.State)
}

func TestFreeFallWithoutGeometry(t *testing.T) {
	s := boxSpecies()
	s.MaxFallSpeed = 1e9
	c := New(gamemath.Vector2{}, s)
	world := collision.NewWorld(nil, nil)

	const n = 40
	for i := 0; i < n; i++ {
		c.Step(world, dt)
		require.False(t, c.Body.GroundContact)
	}
	assert.InDelta(t, s.Gravity*n*dt, c.Body.Velocity.Y, 1e-9)
}

func TestFallSpeedIsCapped(t *testing.T) {
	c := New(gamemath.Vector2{}, boxSpecies())
	world := collision.NewWorld(nil, nil)
	for i := 0; i < 600; i++ {
		c.Step(world, dt)
	}
	assert.Equal(t, config.Player.MaxFallSpeed, c.Body.Velocity.Y)
}

func TestPlatformLanding(t *testing.T) {
	world := collision.NewWorld(nil, []gamemath.Rect{gamemath.NewRect(0, 40, 32, 4)})

	t.Run("from above", func(t *testing.T) {
		c := New(gamemath.Vector2{X: 8, Y: 20}, boxSpecies())
		for i := 0; i < 60; i++ {
			c.Step(world, dt)
		}
		assert.True(t, c.Body.GroundContact)
		assert.Zero(t, c.Body.Velocity.Y)
		assert.InDelta(t, 40-collision.Buffer, c.Hitbox().Bottom(), 1e-9)
	})

	t.Run("from below", func(t *testing.T) {
		c := New(gamemath.Vector2{X: 8, Y: 50}, boxSpecies())
		c.Body.Velocity.Y = -300
		for i := 0; i < 8; i++ {
			c.Step(world, dt)
			require.False(t, c.Body.GroundContact, "tick %d", i)
		}
		assert.Less(t, c.Hitbox().Bottom(), 40.0, "passed up through the platform")
	})

	t.Run("from the side", func(t *testing.T) {
		c := New(gamemath.Vector2{X: -40, Y: 34}, boxSpecies())
		c.Body.Velocity.X = 200
		c.Step(world, dt)
		assert.False(t, c.Body.BlockedX)
		assert.False(t, c.Body.GroundContact)
	})
}

func TestWallStopsHorizontalMovement(t *testing.T) {
	world := collision.NewWorld([]gamemath.Rect{
		gamemath.NewRect(-16, 16, 96, 16),
		gamemath.NewRect(40, 0, 16, 16),
	}, nil)
	c := New(gamemath.Vector2{X: 0, Y: 8 - collision.Buffer}, boxSpecies())

	for i := 0; i < 60; i++ {
		c.Control(Intent{Right: true})
		c.Step(world, dt)
	}
	assert.InDelta(t, 40-collision.Buffer, c.Hitbox().Right(), 1e-9)
	assert.True(t, c.Body.BlockedX)
}

func TestJump(t *testing.T) {
	c := New(gamemath.Vector2{}, boxSpecies())
	assert.False(t, c.Jump(), "airborne")
	assert.Zero(t, c.Body.Velocity.Y)

	world := floorWorld()
	for i := 0; i < 30; i++ {
		c.Step(world, dt)
	}
	require.True(t, c.Body.IsOnGround)

	c.Control(Intent{Jump: true})
	assert.Equal(t, -c.Species.JumpPower, c.Body.Velocity.Y)
	assert.False(t, c.Body.IsOnGround)

	c.Step(world, dt)
	assert.Equal(t, config.Jump, c.Anim.State)
}

func TestCoyoteJump(t *testing.T) {
	world := collision.NewWorld([]gamemath.Rect{gamemath.NewRect(0, 16, 16, 16)}, nil)
	c := New(gamemath.Vector2{X: 0, Y: 8 - collision.Buffer}, boxSpecies())
	c.Step(world, dt)
	require.True(t, c.Body.IsOnGround)

	c.Body.Position.X = 20
	c.Step(world, dt)
	assert.False(t, c.Body.GroundContact)
	assert.True(t, c.Body.IsOnGround, "still within the ground buffer")
	assert.True(t, c.Jump())
}

func TestTakeDamage(t *testing.T) {
	c := New(gamemath.Vector2{}, boxSpecies())

	assert.True(t, c.TakeDamage(50, config.DirectionRight))
	assert.Equal(t, 50, c.Combat.Health)
	assert.True(t, c.Combat.IsHit)
	assert.Equal(t, config.Hit, c.Anim.State)
	assert.Equal(t, c.Species.KnockbackX, c.Body.Velocity.X)
	assert.Equal(t, c.Species.KnockbackY, c.Body.Velocity.Y)

	assert.False(t, c.TakeDamage(50, config.DirectionRight), "still recovering")
	assert.Equal(t, 50, c.Combat.Health)

	world := floorWorld()
	for i := 0; i < 40; i++ {
		c.Step(world, dt)
	}
	assert.False(t, c.Combat.IsHit)
	assert.True(t, c.TakeDamage(10, 0))
	assert.Equal(t, 40, c.Combat.Health)
	assert.Equal(t, -c.Anim.Facing*c.Species.KnockbackX, c.Body.Velocity.X, "no attacker facing knocks backwards")
}

func TestNegativeDamageIsClamped(t *testing.T) {
	c := New(gamemath.Vector2{}, boxSpecies())
	c.TakeDamage(-30, 1)
	assert.Equal(t, c.Species.MaxHealth, c.Combat.Health)
}

func TestDeathIsTerminal(t *testing.T) {
	c := New(gamemath.Vector2{}, boxSpecies())
	assert.True(t, c.TakeDamage(100, 1))
	assert.True(t, c.Combat.IsDead)
	assert.Equal(t, 0, c.Combat.Health)
	assert.Equal(t, config.Dead, c.Anim.State)
	assert.True(t, c.Anim.Terminal())

	world := floorWorld()
	for i := 0; i < 120; i++ {
		c.Step(world, dt)
	}
	assert.False(t, c.TakeDamage(10, 1))
	assert.False(t, c.Attack())
	c.Control(Intent{Right: true, Jump: true})
	assert.Zero(t, c.Body.Velocity.X)
	assert.Equal(t, config.Dead, c.Anim.State)
	assert.Equal(t, 0, c.Combat.Health)
}

func TestAttack(t *testing.T) {
	attacker := New(gamemath.Vector2{}, boxSpecies())
	target := New(gamemath.Vector2{X: 20}, boxSpecies())
	attacker.Body.Velocity.X = 100

	require.True(t, attacker.Attack())
	assert.Zero(t, attacker.Body.Velocity.X, "attacking stops movement")
	assert.True(t, attacker.Anim.Locked)
	assert.False(t, attacker.Attack(), "locked")

	assert.Equal(t, 1, attacker.CheckAttackCollision([]*Character{attacker, target}))
	assert.Equal(t, target.Species.MaxHealth-attacker.Species.Damage, target.Combat.Health)
	assert.Equal(t, 0, attacker.CheckAttackCollision([]*Character{target}), "target guards against repeats")

	world := collision.NewWorld(nil, nil)
	for i := 0; i < 30; i++ {
		attacker.Step(world, dt)
	}
	assert.False(t, attacker.Combat.AttackActive)
	assert.False(t, attacker.Combat.IsAttacking)
	assert.False(t, attacker.Anim.Locked)
}

func TestAttackMissesBehind(t *testing.T) {
	attacker := New(gamemath.Vector2{}, boxSpecies())
	behind := New(gamemath.Vector2{X: -20}, boxSpecies())
	attacker.Attack()
	assert.Equal(t, 0, attacker.CheckAttackCollision([]*Character{behind}))
}

// targetAt returns a small rect centred dx, dy away from c's hitbox centre.
func targetAt(c *Character, dx, dy float64) gamemath.Rect {
	hb := c.Hitbox()
	return gamemath.NewRect(hb.CenterX()+dx-4, hb.CenterY()+dy-4, 8, 8)
}

func TestThink(t *testing.T) {
	pig := New(gamemath.Vector2{}, config.KingPig)
	pig.Body.IsOnGround = true
	var ai components.EnemyData

	pig.Think(&ai, targetAt(pig, 500, 0), true)
	assert.False(t, ai.Aggro)
	assert.Zero(t, pig.Body.Velocity.X)

	pig.Think(&ai, targetAt(pig, -150, 0), true)
	assert.True(t, ai.Aggro)
	assert.Equal(t, -1.0, pig.Anim.Facing)
	assert.Equal(t, -pig.Species.RunSpeed, pig.Body.Velocity.X)

	pig.Think(&ai, targetAt(pig, 500, 0), true)
	assert.True(t, ai.Aggro, "aggro latches")
	assert.Equal(t, pig.Species.RunSpeed, pig.Body.Velocity.X)

	pig.Think(&ai, targetAt(pig, 100, -80), true)
	assert.Equal(t, -pig.Species.JumpPower, pig.Body.Velocity.Y, "jumps toward a target above")

	pig.Think(&ai, targetAt(pig, 30, 0), true)
	assert.Equal(t, config.Attack, pig.Anim.State)
	assert.Zero(t, pig.Body.Velocity.X)

	pig.Anim.Locked = false
	pig.Think(&ai, targetAt(pig, 100, 0), false)
	assert.Zero(t, pig.Body.Velocity.X, "no target")
}

func TestThinkJumpsWhenBlocked(t *testing.T) {
	pig := New(gamemath.Vector2{}, config.KingPig)
	pig.Body.IsOnGround = true
	pig.Body.BlockedX = true
	ai := components.EnemyData{Aggro: true}

	pig.Think(&ai, targetAt(pig, 120, 0), true)
	assert.Equal(t, -pig.Species.JumpPower, pig.Body.Velocity.Y)
}

func TestSnapshotRestore(t *testing.T) {
	c := New(gamemath.Vector2{X: 12, Y: 34}, boxSpecies())
	c.TakeDamage(30, 1)
	c.Anim.Facing = -1
	snap := c.Snapshot()

	fresh := New(gamemath.Vector2{}, boxSpecies())
	fresh.Restore(snap)
	assert.Equal(t, c.Body.Position, fresh.Body.Position)
	assert.Equal(t, 70, fresh.Combat.Health)
	assert.Equal(t, -1.0, fresh.Anim.Facing)
	assert.False(t, fresh.Combat.IsHit)

	snap.Health = 0
	fresh.Restore(snap)
	assert.Equal(t, fresh.Species.MaxHealth, fresh.Combat.Health)
}

func testLevel() *leveldata.Level {
	return &leveldata.Level{
		Name:        "test",
		Blocks:      []gamemath.Rect{gamemath.NewRect(0, 160, 640, 16)},
		PlayerSpawn: gamemath.Vector2{X: 40, Y: 150},
		Enemies: []leveldata.EnemySpawn{
			{Species: config.SpeciesKingPig, X: 560, Y: 150},
			{Species: "dragon", X: 300, Y: 150},
		},
		Width:  640,
		Height: 176,
	}
}

func TestLoopSettlesCharacters(t *testing.T) {
	l := NewLoop(testLevel(), dt)
	require.Len(t, l.Enemies, 1, "unknown species are skipped")

	l.Advance(60)
	assert.Equal(t, 60, l.Tick)
	assert.True(t, l.Player.Body.IsOnGround)
	assert.InDelta(t, 160-collision.Buffer, l.Player.Hitbox().Bottom(), 1e-9)
	assert.True(t, l.Enemies[0].Body.IsOnGround)
	assert.False(t, l.Enemies[0].AI.Aggro, "player is out of range")
}

func TestLoopRemovesDeadEnemies(t *testing.T) {
	l := NewLoop(testLevel(), dt)
	l.Enemies[0].TakeDamage(1000, 1)

	l.Advance(120)
	assert.Empty(t, l.Enemies)
	assert.Equal(t, 1, l.Removed)
}

func TestLoopInput(t *testing.T) {
	l := NewLoop(testLevel(), dt)
	l.Input = func(int) Intent { return Intent{Right: true} }
	start := l.Player.Body.Position.X

	l.Advance(30)
	assert.Greater(t, l.Player.Body.Position.X, start)
	assert.Equal(t, 1.0, l.Player.Anim.Facing)
}

func TestLoopRunStopsWithContext(t *testing.T) {
	l := NewLoop(testLevel(), dt)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := l.Run(ctx, 1000)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Greater(t, l.Tick, 0)
}

func TestLoopWithoutInputStopsAfterKnockback(t *testing.T) {
	l := NewLoop(testLevel(), dt)
	l.Advance(30)
	start := l.Player.Body.Position.X

	require.True(t, l.Player.TakeDamage(10, 1))
	require.Equal(t, config.Player.KnockbackX, l.Player.Body.Velocity.X)

	l.Advance(600)
	assert.Zero(t, l.Player.Body.Velocity.X)
	assert.Equal(t, config.Idle, l.Player.Anim.State)
	assert.Less(t, l.Player.Body.Position.X-start, 100.0, "knockback only lasts while the hit clip plays")
	assert.True(t, l.Player.Body.IsOnGround)
}

func TestLoopRunRejectsInvalidTickRate(t *testing.T) {
	l := NewLoop(testLevel(), dt)

	assert.Error(t, l.Run(context.Background(), 0))
	assert.Error(t, l.Run(context.Background(), -60))
	assert.Zero(t, l.Tick)
}
