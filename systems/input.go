package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lmsonic/sonicmaker/character"
	"github.com/lmsonic/sonicmaker/components"
	"github.com/yohamta/donburi/ecs"
)

// Binding maps an action to keyboard keys and standard gamepad buttons.
type Binding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings holds the key bindings of every character action. Down is bound
// to roll, which also crouches while standing still.
var Bindings = map[character.Action]Binding{
	character.ActionLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	character.ActionRight: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	character.ActionUp: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	character.ActionJump: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ, ebiten.KeyX},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom, ebiten.StandardGamepadButtonRightRight},
	},
	character.ActionRoll: {
		Keys:                   []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyC},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom, ebiten.StandardGamepadButtonRightLeft},
	},
}

// analogDeadzone is the left stick threshold for directional actions.
const analogDeadzone = 0.4

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into every Input component.
// Must run BEFORE UpdateCharacter in the system order.
func UpdateInput(ecs *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for entry := range components.Input.Iter(ecs.World) {
		input := components.Input.Get(entry)
		input.Advance()

		for action, binding := range Bindings {
			for _, key := range binding.Keys {
				if ebiten.IsKeyPressed(key) {
					input.Current[action] = true
				}
			}
			for _, gpID := range gamepadIDs {
				if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
					continue
				}
				for _, btn := range binding.StandardGamepadButtons {
					if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
						input.Current[action] = true
					}
				}
			}
		}
		mergeAnalogStick(input)
	}
}

// mergeAnalogStick reads the left stick of every gamepad into the
// directional actions.
func mergeAnalogStick(input *components.InputData) {
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		if horizontal < -analogDeadzone {
			input.Current[character.ActionLeft] = true
		}
		if horizontal > analogDeadzone {
			input.Current[character.ActionRight] = true
		}
		if vertical < -analogDeadzone {
			input.Current[character.ActionUp] = true
		}
		if vertical > analogDeadzone {
			input.Current[character.ActionRoll] = true
		}
	}
}
