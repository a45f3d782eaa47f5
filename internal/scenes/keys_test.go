package scenes

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/trajectory/internal/animation"
	"github.com/Faultbox/trajectory/internal/engine/input"
)

func keyDown(sc sdl.Scancode) input.Event {
	return input.Event{Type: input.EventKeyDown, Key: sc}
}

func TestApplyRotationKey(t *testing.T) {
	tests := []struct {
		key  sdl.Scancode
		want animation.RotationMode
	}{
		{sdl.SCANCODE_X, animation.RotateX},
		{sdl.SCANCODE_Y, animation.RotateY},
		{sdl.SCANCODE_Z, animation.RotateZ},
	}

	for _, tt := range tests {
		state := animation.NewInputState()
		if !ApplyRotationKey(state, keyDown(tt.key)) {
			t.Errorf("key %d not handled", tt.key)
		}
		if state.Rotation != tt.want {
			t.Errorf("key %d: rotation = %v, want %v", tt.key, state.Rotation, tt.want)
		}
		// Only the rotation axis changes
		if state.Scale != 1 || state.Translation != animation.TranslateNone {
			t.Errorf("key %d changed other state: %+v", tt.key, state)
		}
	}
}

func TestApplyRotationKey_LastAxisWins(t *testing.T) {
	state := animation.NewInputState()
	ApplyRotationKey(state, keyDown(sdl.SCANCODE_X))
	ApplyRotationKey(state, keyDown(sdl.SCANCODE_Z))
	if state.Rotation != animation.RotateZ {
		t.Errorf("rotation = %v, want z", state.Rotation)
	}
}

func TestApplyRotationKey_Ignored(t *testing.T) {
	tests := []struct {
		name string
		e    input.Event
	}{
		{"key up", input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_X}},
		{"repeat", input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_X, Repeat: true}},
		{"other key", keyDown(sdl.SCANCODE_Q)},
		{"mouse", input.Event{Type: input.EventMouseMove, RelX: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := animation.NewInputState()
			if ApplyRotationKey(state, tt.e) {
				t.Error("event should not be handled")
			}
			if state.Rotation != animation.RotateNone {
				t.Errorf("rotation = %v, want none", state.Rotation)
			}
		})
	}
}

func TestEscapeQuits(t *testing.T) {
	state := animation.NewInputState()
	ApplyCubeKey(state, keyDown(sdl.SCANCODE_ESCAPE))
	if !state.Quit {
		t.Error("ESC should set Quit")
	}
}

func TestApplyCubeKey(t *testing.T) {
	state := animation.NewInputState()

	ApplyCubeKey(state, keyDown(sdl.SCANCODE_S))
	if state.Translation != animation.TranslateY {
		t.Errorf("S: translation = %v, want y", state.Translation)
	}
	ApplyCubeKey(state, keyDown(sdl.SCANCODE_W))
	if state.Translation != animation.TranslateZ {
		t.Errorf("W: translation = %v, want z", state.Translation)
	}
	ApplyCubeKey(state, keyDown(sdl.SCANCODE_A))
	if state.Translation != animation.TranslateX {
		t.Errorf("A: translation = %v, want x", state.Translation)
	}

	// X selects the axis without touching the scale
	ApplyCubeKey(state, keyDown(sdl.SCANCODE_X))
	if state.Rotation != animation.RotateX || state.Scale != 1 {
		t.Errorf("X: got %+v", state)
	}

	ApplyCubeKey(state, keyDown(sdl.SCANCODE_KP_PLUS))
	ApplyCubeKey(state, keyDown(sdl.SCANCODE_KP_PLUS))
	if diff := state.Scale - 1.2; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("scale after two +: %f, want 1.2", state.Scale)
	}
	ApplyCubeKey(state, keyDown(sdl.SCANCODE_KP_MINUS))
	if diff := state.Scale - 1.1; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("scale after -: %f, want 1.1", state.Scale)
	}
}

func TestMovementKey(t *testing.T) {
	tests := []struct {
		e              input.Event
		forward, right float32
		ok             bool
	}{
		{keyDown(sdl.SCANCODE_W), 1, 0, true},
		{keyDown(sdl.SCANCODE_S), -1, 0, true},
		{keyDown(sdl.SCANCODE_A), 0, -1, true},
		{keyDown(sdl.SCANCODE_D), 0, 1, true},
		{input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_W, Repeat: true}, 1, 0, true},
		{input.Event{Type: input.EventKeyUp, Key: sdl.SCANCODE_W}, 0, 0, false},
		{keyDown(sdl.SCANCODE_X), 0, 0, false},
	}

	for i, tt := range tests {
		forward, right, ok := MovementKey(tt.e)
		if forward != tt.forward || right != tt.right || ok != tt.ok {
			t.Errorf("case %d: got (%v, %v, %v), want (%v, %v, %v)", i, forward, right, ok, tt.forward, tt.right, tt.ok)
		}
	}
}
