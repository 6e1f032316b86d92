package components

import (
	"github.com/automoto/pigking/config"
	"github.com/automoto/pigking/shared/gamemath"
	"github.com/yohamta/donburi"
)

// AnimationData is a per-character animation state machine driven by a
// species clip table.
//
// While unlocked the state is derived from velocity every tick. Locked clips
// (attack, hit, dead, doors) play to their last frame first and then hand
// over to the clip's OnComplete state; a clip completing into itself freezes
// on its last frame for good.
type AnimationData struct {
	Clips  *config.ClipTable
	State  config.StateID
	Frame  int
	Timer  float64
	Locked bool
	Facing float64 // -1 or 1
	// Finished is set once a terminal clip has shown its last frame.
	Finished bool
}

func NewAnimation(clips *config.ClipTable) AnimationData {
	return AnimationData{
		Clips:  clips,
		State:  config.Idle,
		Facing: config.DirectionRight,
	}
}

// Terminal reports whether the animation can never change state again.
func (a *AnimationData) Terminal() bool {
	if a.Finished {
		return true
	}
	return a.Locked && a.Clips[a.State].Terminal(a.State)
}

// Lock starts a clip from its first frame. Transitions out of a terminal
// state or into a state the species has no clip for are ignored. It reports
// whether the clip started.
func (a *AnimationData) Lock(state config.StateID) bool {
	if a.Terminal() || !a.Clips.Has(state) {
		return false
	}
	a.set(state)
	a.Locked = a.Clips[state].Locked
	return true
}

// Derive picks the unlocked state from velocity: rising, falling, running or
// idle, in that order. Facing follows the sign of horizontal velocity.
func (a *AnimationData) Derive(vel gamemath.Vector2) {
	if a.Locked || a.Terminal() {
		return
	}
	if vel.X != 0 {
		a.Facing = gamemath.Sign(vel.X)
	}

	next := config.Idle
	switch {
	case vel.Y < 0:
		next = config.Jump
	case vel.Y > 0:
		next = config.Fall
	case vel.X != 0:
		next = config.Run
	}
	if next != a.State && a.Clips.Has(next) {
		a.set(next)
	}
}

// Update advances the frame timer. When a locked clip finishes it returns
// the clip that completed and true.
func (a *AnimationData) Update(dt float64) (config.StateID, bool) {
	if a.Finished {
		return a.State, false
	}
	clip := a.Clips[a.State]
	if clip.FrameCount == 0 || clip.Speed <= 0 {
		return a.State, false
	}

	a.Timer += dt
	for a.Timer >= clip.Speed {
		a.Timer -= clip.Speed
		if a.Frame < clip.FrameCount-1 {
			a.Frame++
			continue
		}
		if !a.Locked {
			a.Frame = 0
			continue
		}

		completed := a.State
		if clip.OnComplete == a.State {
			a.Finished = true
			a.Timer = 0
			return completed, true
		}
		a.Locked = false
		a.set(clip.OnComplete)
		return completed, true
	}
	return a.State, false
}

func (a *AnimationData) set(state config.StateID) {
	a.State = state
	a.Frame = 0
	a.Timer = 0
}

var Animation = donburi.NewComponentType[AnimationData]()
