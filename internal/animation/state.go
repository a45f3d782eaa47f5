// Package animation composes per-frame model matrices from explicit input
// state: translation along a sampled curve or along a sine wave, an optional
// rotation axis and a uniform scale.
package animation

import "fmt"

// RotationMode selects the axis the model spins around.
type RotationMode int

// Rotation modes.
const (
	RotateNone RotationMode = iota
	RotateX
	RotateY
	RotateZ
)

// String returns the mode name.
func (m RotationMode) String() string {
	switch m {
	case RotateNone:
		return "none"
	case RotateX:
		return "x"
	case RotateY:
		return "y"
	case RotateZ:
		return "z"
	default:
		return fmt.Sprintf("RotationMode(%d)", int(m))
	}
}

// TranslationMode selects the axis the cube demo oscillates along.
type TranslationMode int

// Translation modes.
const (
	TranslateNone TranslationMode = iota
	TranslateX
	TranslateY
	TranslateZ
)

// String returns the mode name.
func (m TranslationMode) String() string {
	switch m {
	case TranslateNone:
		return "none"
	case TranslateX:
		return "x"
	case TranslateY:
		return "y"
	case TranslateZ:
		return "z"
	default:
		return fmt.Sprintf("TranslationMode(%d)", int(m))
	}
}

// ScaleStep is the scale change applied per keypad +/- press.
const ScaleStep = 0.1

// InputState is the input-derived state consumed by the frame driver.
// Key handlers mutate it; the per-frame update reads it.
type InputState struct {
	Rotation    RotationMode
	Translation TranslationMode
	Scale       float32
	Quit        bool
}

// NewInputState returns the initial state: no rotation, no translation,
// unit scale.
func NewInputState() *InputState {
	return &InputState{Scale: 1}
}

// GrowScale increases the scale by ScaleStep.
func (s *InputState) GrowScale() {
	s.Scale += ScaleStep
}

// ShrinkScale decreases the scale by ScaleStep, never going below ScaleStep.
func (s *InputState) ShrinkScale() {
	s.Scale -= ScaleStep
	if s.Scale < ScaleStep {
		s.Scale = ScaleStep
	}
}
