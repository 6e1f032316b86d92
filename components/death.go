package components

import "github.com/yohamta/donburi"

// DeathData marks a character whose dead clip has finished. Timer counts
// down in seconds; at zero the entity is removed, or for the player the game
// over screen opens.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
