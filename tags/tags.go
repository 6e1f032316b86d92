package tags

import "github.com/yohamta/donburi"

var (
	Player     = donburi.NewTag().SetName("Player")
	Enemy      = donburi.NewTag().SetName("Enemy")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Door       = donburi.NewTag().SetName("Door")
)
