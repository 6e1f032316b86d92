package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionJump
	ActionAttack
	ActionPause
	ActionDebug
	ActionFullscreen
	ActionResolution
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and gamepad buttons bound to an action.
// Keys are ebiten key names ("ArrowLeft", "A", "Space") and buttons are
// ebiten standard gamepad button numbers, so this package has no ebiten
// dependency.
type InputBinding struct {
	Keys           []string
	GamepadButtons []int
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

// Standard gamepad button numbers, matching ebiten.StandardGamepadButton.
const (
	padRightBottom = 0
	padRightLeft   = 2
	padCenterRight = 9
	padLeftTop     = 12
	padLeftLeft    = 14
	padLeftRight   = 15
)

func initInput() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys:           []string{"ArrowLeft", "A"},
				GamepadButtons: []int{padLeftLeft},
			},
			ActionMoveRight: {
				Keys:           []string{"ArrowRight", "D"},
				GamepadButtons: []int{padLeftRight},
			},
			ActionMoveUp: {
				Keys:           []string{"ArrowUp", "W"},
				GamepadButtons: []int{padLeftTop},
			},
			ActionJump: {
				Keys:           []string{"Space", "X"},
				GamepadButtons: []int{padRightBottom},
			},
			ActionAttack: {
				Keys:           []string{"Z", "J"},
				GamepadButtons: []int{padRightLeft},
			},
			ActionPause: {
				Keys:           []string{"Escape"},
				GamepadButtons: []int{padCenterRight},
			},
			ActionDebug: {
				Keys: []string{"F1"},
			},
			ActionFullscreen: {
				Keys: []string{"F11"},
			},
			ActionResolution: {
				Keys: []string{"F10"},
			},
		},
	}
}
