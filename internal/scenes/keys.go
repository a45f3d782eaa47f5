package scenes

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/trajectory/internal/animation"
	"github.com/Faultbox/trajectory/internal/engine/input"
)

var rotationKeys = map[sdl.Scancode]animation.RotationMode{
	sdl.SCANCODE_X: animation.RotateX,
	sdl.SCANCODE_Y: animation.RotateY,
	sdl.SCANCODE_Z: animation.RotateZ,
}

var translationKeys = map[sdl.Scancode]animation.TranslationMode{
	sdl.SCANCODE_A: animation.TranslateX,
	sdl.SCANCODE_S: animation.TranslateY,
	sdl.SCANCODE_W: animation.TranslateZ,
}

// ApplyRotationKey handles ESC and the X/Y/Z rotation keys. It reports
// whether the event changed state.
func ApplyRotationKey(state *animation.InputState, e input.Event) bool {
	if e.Type != input.EventKeyDown || e.Repeat {
		return false
	}
	if e.Key == sdl.SCANCODE_ESCAPE {
		state.Quit = true
		return true
	}
	if mode, ok := rotationKeys[e.Key]; ok {
		state.Rotation = mode
		return true
	}
	return false
}

// ApplyCubeKey handles the cube demo keys: rotation, A/S/W translation axis
// and keypad +/- scale.
func ApplyCubeKey(state *animation.InputState, e input.Event) bool {
	if ApplyRotationKey(state, e) {
		return true
	}
	if e.Type != input.EventKeyDown || e.Repeat {
		return false
	}
	if mode, ok := translationKeys[e.Key]; ok {
		state.Translation = mode
		return true
	}
	switch e.Key {
	case sdl.SCANCODE_KP_PLUS:
		state.GrowScale()
		return true
	case sdl.SCANCODE_KP_MINUS:
		state.ShrinkScale()
		return true
	}
	return false
}

// MovementKey maps WASD presses and auto-repeats to a camera move.
func MovementKey(e input.Event) (forward, right float32, ok bool) {
	if e.Type != input.EventKeyDown {
		return 0, 0, false
	}
	switch e.Key {
	case sdl.SCANCODE_W:
		return 1, 0, true
	case sdl.SCANCODE_S:
		return -1, 0, true
	case sdl.SCANCODE_A:
		return 0, -1, true
	case sdl.SCANCODE_D:
		return 0, 1, true
	}
	return 0, 0, false
}
