package components

import (
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
)

// GroundEvent reports a change of the debounced ground state.
type GroundEvent int

const (
	GroundNone GroundEvent = iota
	GroundLanded
	GroundLeft
)

// BodyData is a kinematic body: position, velocity and ground state.
//
// GroundContact is raw and refreshed every tick by collision. IsOnGround is
// the debounced state: it turns false only after GroundBufferTime seconds
// without contact, which lets characters jump shortly after walking off a
// ledge.
type BodyData struct {
	Position gamemath.Vector2
	Velocity gamemath.Vector2

	Gravity      float64
	MaxFallSpeed float64

	GroundContact    bool
	IsOnGround       bool
	GroundBufferTime float64
	TimeOffGround    float64

	// BlockedX is set when horizontal movement hit a block this tick.
	BlockedX bool
}

// NewBody returns a body at pos tuned for species s. Bodies start airborne
// and settle on the first tick that finds ground.
func NewBody(pos gamemath.Vector2, s *config.SpeciesConfig) BodyData {
	return BodyData{
		Position:         pos,
		Gravity:          s.Gravity,
		MaxFallSpeed:     s.MaxFallSpeed,
		GroundBufferTime: s.GroundBufferTime,
	}
}

// ApplyGravity accelerates the body downward unless it touched ground last
// tick, then caps the fall speed.
func (b *BodyData) ApplyGravity(dt float64) {
	if !b.GroundContact {
		b.Velocity.Y += b.Gravity * dt
	}
	b.Velocity.Y = gamemath.ClampMax(b.Velocity.Y, b.MaxFallSpeed)
}

// UpdateGround folds this tick's contact into the debounced ground state.
// GroundLeft is reported exactly once per airborne stretch.
func (b *BodyData) UpdateGround(dt float64) GroundEvent {
	if b.GroundContact {
		b.TimeOffGround = 0
		if !b.IsOnGround {
			b.IsOnGround = true
			return GroundLanded
		}
		return GroundNone
	}

	if !b.IsOnGround {
		return GroundNone
	}
	b.TimeOffGround += dt
	if b.TimeOffGround >= b.GroundBufferTime {
		b.IsOnGround = false
		return GroundLeft
	}
	return GroundNone
}

// Jump launches the body if it is on the ground. It reports whether the
// jump happened.
func (b *BodyData) Jump(power float64) bool {
	if !b.IsOnGround {
		return false
	}
	b.Velocity.Y = -power
	b.IsOnGround = false
	b.GroundContact = false
	b.TimeOffGround = b.GroundBufferTime
	return true
}

var Body = donburi.NewComponentType[BodyData]()
