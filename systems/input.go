package systems

import (
	"log"

	"github.com/automoto/pigking/components"
	cfg "github.com/automoto/pigking/config"
	"github.com/automoto/pigking/core"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Key names from the bindings, resolved once.
var (
	resolvedKeys = make(map[string]ebiten.Key)
	unknownKeys  = make(map[string]bool)
)

// UpdateInput polls raw input into the Input component.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	input.Advance(pollActions())
}

func pollActions() [cfg.ActionCount]bool {
	var next [cfg.ActionCount]bool

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, name := range binding.Keys {
			if key, ok := resolveKey(name); ok && ebiten.IsKeyPressed(key) {
				next[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.GamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, ebiten.StandardGamepadButton(btn)) {
					next[actionID] = true
				}
			}
		}
	}

	left, right, up := getAnalogStickState(gamepadIDs)
	next[cfg.ActionMoveLeft] = next[cfg.ActionMoveLeft] || left
	next[cfg.ActionMoveRight] = next[cfg.ActionMoveRight] || right
	next[cfg.ActionMoveUp] = next[cfg.ActionMoveUp] || up
	return next
}

// resolveKey maps a binding name such as "ArrowLeft" to an ebiten key.
// Unknown names are reported once and then ignored.
func resolveKey(name string) (ebiten.Key, bool) {
	if key, ok := resolvedKeys[name]; ok {
		return key, true
	}
	if unknownKeys[name] {
		return 0, false
	}

	var key ebiten.Key
	if err := key.UnmarshalText([]byte(name)); err != nil {
		log.Printf("Warning: Unknown key binding %q: %v", name, err)
		unknownKeys[name] = true
		return 0, false
	}
	resolvedKeys[name] = key
	return key, true
}

// getAnalogStickState reads the left analog stick from all gamepads.
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// IntentFrom turns the action state into player intent. Movement follows
// held keys; jump, attack and door entry trigger on the press only.
func IntentFrom(input *components.InputData) core.Intent {
	return core.Intent{
		Left:   input.Pressed(cfg.ActionMoveLeft),
		Right:  input.Pressed(cfg.ActionMoveRight),
		Jump:   input.JustPressed(cfg.ActionJump),
		Attack: input.JustPressed(cfg.ActionAttack),
		Up:     input.JustPressed(cfg.ActionMoveUp),
	}
}
