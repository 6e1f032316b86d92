package config

// StateID identifies an animation state. Values index clip tables directly.
type StateID int

const (
	Idle StateID = iota
	Run
	Jump
	Fall
	Attack
	Hit
	Dead
	DoorIn
	DoorOut
	StateCount // Must be last - used for array sizing
)

// StateToFileName maps a state to its sprite sheet file stem.
var StateToFileName = [StateCount]string{
	Idle:    "idle",
	Run:     "run",
	Jump:    "jump",
	Fall:    "fall",
	Attack:  "attack",
	Hit:     "hit",
	Dead:    "dead",
	DoorIn:  "doorIn",
	DoorOut: "doorOut",
}

func (s StateID) String() string {
	if s < 0 || s >= StateCount {
		return "unknown"
	}
	return StateToFileName[s]
}

// ParseState returns the state for a sprite sheet file stem.
func ParseState(name string) (StateID, bool) {
	for i, n := range StateToFileName {
		if n == name {
			return StateID(i), true
		}
	}
	return Idle, false
}
