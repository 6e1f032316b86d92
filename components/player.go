package components

import "github.com/yohamta/donburi"

type PlayerData struct {
	// EnteringDoor is set while the door-in clip plays at the exit door.
	EnteringDoor bool
	// DamageTaken is health lost this tick.
	DamageTaken int
}

var Player = donburi.NewComponentType[PlayerData]()
