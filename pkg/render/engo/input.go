// pkg/render/engo/input.go
package engo

import (
	"github.com/EngoEngine/engo"

	"github.com/opd-ai/go-spacefighter/pkg/entity"
)

// Button names registered with engo
const (
	ButtonUp      = "up"
	ButtonDown    = "down"
	ButtonLeft    = "left"
	ButtonRight   = "right"
	ButtonFire    = "fire"
	ButtonRestart = "restart"
	ButtonQuit    = "quit"
)

// keyButtons maps the keys the game polls to engo button names
var keyButtons = map[entity.Key]string{
	entity.KeyUp:    ButtonUp,
	entity.KeyDown:  ButtonDown,
	entity.KeyLeft:  ButtonLeft,
	entity.KeyRight: ButtonRight,
	entity.KeySpace: ButtonFire,
}

// InputState reads the keyboard through engo's button registry
type InputState struct {
	isDown func(button string) bool
}

// NewInputState creates an input state backed by engo.Input
func NewInputState() *InputState {
	return &InputState{isDown: func(button string) bool {
		return engo.Input.Button(button).Down()
	}}
}

// IsKeyDown implements entity.InputState
func (is *InputState) IsKeyDown(key entity.Key) bool {
	button, ok := keyButtons[key]
	if !ok {
		return false
	}
	return is.isDown(button)
}

// RestartPressed reports whether the restart key went down this frame
func RestartPressed() bool {
	return engo.Input.Button(ButtonRestart).JustPressed()
}

// QuitPressed reports whether the quit key went down this frame
func QuitPressed() bool {
	return engo.Input.Button(ButtonQuit).JustPressed()
}

// SetupInputBindings sets up the key bindings for the game
func SetupInputBindings() {
	// Movement keys
	engo.Input.RegisterButton(ButtonUp, engo.KeyArrowUp, engo.KeyW)
	engo.Input.RegisterButton(ButtonDown, engo.KeyArrowDown, engo.KeyS)
	engo.Input.RegisterButton(ButtonLeft, engo.KeyArrowLeft, engo.KeyA)
	engo.Input.RegisterButton(ButtonRight, engo.KeyArrowRight, engo.KeyD)

	// Action keys
	engo.Input.RegisterButton(ButtonFire, engo.KeySpace)
	engo.Input.RegisterButton(ButtonRestart, engo.KeyEnter)
	engo.Input.RegisterButton(ButtonQuit, engo.KeyEscape)
}

var _ entity.InputState = (*InputState)(nil)
