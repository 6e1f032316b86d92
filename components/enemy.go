package components

import "github.com/yohamta/donburi"

type EnemyData struct {
	// Aggro latches on the first time the player comes within detection
	// range and never clears.
	Aggro bool
}

var Enemy = donburi.NewComponentType[EnemyData]()
