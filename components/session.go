package components

import "github.com/yohamta/donburi"

// SessionData tracks the running game: which save slot it belongs to and
// how long it has been played.
type SessionData struct {
	Slot          int
	PlayTime      float64
	SinceAutosave float64
	// AutosaveRequested asks the autosave system to write on its next run.
	AutosaveRequested bool
}

var Session = donburi.NewComponentType[SessionData]()
