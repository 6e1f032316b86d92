package components

import (
	cfg "github.com/automoto/pigking/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous tick's pressed state for all
// actions. JustPressed is computed by comparing the two.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

func (i *InputData) Pressed(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

// Advance stores the current state as previous and installs next.
func (i *InputData) Advance(next [cfg.ActionCount]bool) {
	i.Previous = i.Current
	i.Current = next
}

var Input = donburi.NewComponentType[InputData]()
