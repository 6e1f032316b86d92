package components

import (
	"testing"

	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/stretchr/testify/assert"
)

const dt = 1.0 / 60

func TestGravityWithoutGround(t *testing.T) {
	b := BodyData{Gravity: 580, MaxFallSpeed: 10000}
	for i := 0; i < 30; i++ {
		b.ApplyGravity(dt)
	}
	assert.InDelta(t, 580*30*dt, b.Velocity.Y, 1e-9)
	assert.False(t, b.GroundContact)
}

func TestGravityClampsFallSpeed(t *testing.T) {
	b := BodyData{Gravity: 580, MaxFallSpeed: 700, Velocity: gamemath.Vector2{Y: 695}}
	b.ApplyGravity(dt)
	assert.Equal(t, 700.0, b.Velocity.Y)
}

func TestGravitySkippedOnContact(t *testing.T) {
	b := BodyData{Gravity: 580, MaxFallSpeed: 700, GroundContact: true}
	b.ApplyGravity(dt)
	assert.Zero(t, b.Velocity.Y)
}

func TestGroundLeftExactlyOnce(t *testing.T) {
	b := BodyData{GroundBufferTime: 0.1, GroundContact: true}
	assert.Equal(t, GroundLanded, b.UpdateGround(dt))
	assert.True(t, b.IsOnGround)

	b.GroundContact = false
	var left int
	for i := 0; i < 60; i++ {
		if b.UpdateGround(dt) == GroundLeft {
			left++
			assert.GreaterOrEqual(t, b.TimeOffGround, 0.1)
		}
	}
	assert.Equal(t, 1, left)
	assert.False(t, b.IsOnGround)
}

func TestJump(t *testing.T) {
	b := BodyData{GroundBufferTime: 0.1}
	assert.False(t, b.Jump(250), "airborne jump is a no-op")
	assert.Zero(t, b.Velocity.Y)

	b.IsOnGround = true
	b.GroundContact = true
	assert.True(t, b.Jump(250))
	assert.Equal(t, -250.0, b.Velocity.Y)
	assert.False(t, b.IsOnGround)
	assert.False(t, b.GroundContact)
	assert.Equal(t, GroundNone, b.UpdateGround(dt), "no second leave event after a jump")
}

func newKingAnim() AnimationData {
	return NewAnimation(&config.Player.Clips)
}

func TestDeriveState(t *testing.T) {
	tests := []struct {
		name   string
		vel    gamemath.Vector2
		want   config.StateID
		facing float64
	}{
		{"rising", gamemath.Vector2{X: 5, Y: -1}, config.Jump, 1},
		{"falling", gamemath.Vector2{X: -5, Y: 1}, config.Fall, -1},
		{"running left", gamemath.Vector2{X: -5}, config.Run, -1},
		{"idle", gamemath.Vector2{}, config.Idle, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newKingAnim()
			a.Derive(tt.vel)
			assert.Equal(t, tt.want, a.State)
			assert.Equal(t, tt.facing, a.Facing)
		})
	}
}

func TestLockedClipIgnoresVelocity(t *testing.T) {
	a := newKingAnim()
	a.Facing = 1
	assert.True(t, a.Lock(config.Attack))
	a.Derive(gamemath.Vector2{X: -10, Y: -10})
	assert.Equal(t, config.Attack, a.State)
	assert.Equal(t, 1.0, a.Facing, "facing holds while locked")
}

func TestLockedClipCompletesToIdle(t *testing.T) {
	a := newKingAnim()
	a.Lock(config.Attack)
	clip := config.Player.Clips[config.Attack]

	var completed []config.StateID
	ticks := int(clip.Duration()/dt) + 10
	for i := 0; i < ticks; i++ {
		if s, done := a.Update(dt); done {
			completed = append(completed, s)
		}
	}
	assert.Equal(t, []config.StateID{config.Attack}, completed)
	assert.False(t, a.Locked)
	assert.Equal(t, config.Idle, a.State)
}

func TestDeadIsTerminal(t *testing.T) {
	a := newKingAnim()
	assert.True(t, a.Lock(config.Dead))
	assert.True(t, a.Terminal())
	assert.False(t, a.Lock(config.Hit))

	var completions int
	for i := 0; i < 120; i++ {
		if _, done := a.Update(dt); done {
			completions++
		}
	}
	assert.Equal(t, 1, completions)
	assert.Equal(t, config.Dead, a.State)
	assert.Equal(t, config.Player.Clips[config.Dead].FrameCount-1, a.Frame)

	a.Derive(gamemath.Vector2{X: 10})
	assert.Equal(t, config.Dead, a.State)
}

func TestLockUnknownClipIgnored(t *testing.T) {
	a := NewAnimation(&config.KingPig.Clips)
	assert.False(t, a.Lock(config.DoorIn))
	assert.Equal(t, config.Idle, a.State)
}

func TestCombatCooldown(t *testing.T) {
	c := NewCombat(100)
	c.IsHit = true
	c.HitCooldown = 0.5

	ticks := 0
	for c.IsHit && ticks < 100 {
		c.Tick(dt)
		ticks++
	}
	assert.InDelta(t, 30, ticks, 1)
	assert.Equal(t, 1.0, c.HealthFraction())
}

func TestCameraConversions(t *testing.T) {
	cam := CameraData{Width: 480, Height: 270, Zoom: 2}
	cam.Position.X = 100
	cam.Position.Y = 40

	world := gamemath.Vector2{X: 130, Y: 50}
	screen := cam.WorldToScreen(world)
	assert.Equal(t, gamemath.Vector2{X: 60, Y: 20}, screen)
	assert.Equal(t, world, cam.ScreenToWorld(screen))
	assert.Equal(t, 240.0, cam.View().Width)
}

func TestInputJustPressed(t *testing.T) {
	var in InputData
	var next [config.ActionCount]bool
	next[config.ActionJump] = true

	in.Advance(next)
	assert.True(t, in.JustPressed(config.ActionJump))
	in.Advance(next)
	assert.False(t, in.JustPressed(config.ActionJump))
	assert.True(t, in.Pressed(config.ActionJump))
}
