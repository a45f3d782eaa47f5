package animation

import (
	gomath "math"
	"testing"

	"github.com/Faultbox/trajectory/pkg/curve"
	"github.com/Faultbox/trajectory/pkg/math"
)

func straightCurve(t *testing.T, samples int) *curve.Bezier {
	t.Helper()
	b := curve.New([]math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}})
	if err := b.Generate(samples); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	return b
}

func TestPathFollower_StepWraps(t *testing.T) {
	path := straightCurve(t, 4)
	f := NewPathFollower(path, DefaultPathScale)

	wantIdx := []int{1, 2, 3, 0, 1}
	for i, want := range wantIdx {
		f.Step()
		if f.Index() != want {
			t.Errorf("step %d: index %d, want %d", i, f.Index(), want)
		}
	}
}

func TestPathFollower_ModelMatrix(t *testing.T) {
	path := straightCurve(t, 4)
	f := NewPathFollower(path, DefaultPathScale)
	f.Step() // sample 1, t = 1/3 -> x = 1

	m := f.ModelMatrix(0, RotateNone)

	// Translation column carries the curve position.
	pos := math.Vec3{X: m[12], Y: m[13], Z: m[14]}
	if !pos.ApproxEqual(math.Vec3{X: 1}, 1e-5) {
		t.Errorf("translation: got %v, want (1, 0, 0)", pos)
	}

	// Scale 0.5 on the diagonal.
	if m[0] != 0.5 || m[5] != 0.5 || m[10] != 0.5 {
		t.Errorf("scale diagonal: got (%v, %v, %v), want 0.5", m[0], m[5], m[10])
	}
}

func TestPathFollower_RotationAppliedBeforeScale(t *testing.T) {
	f := NewPathFollower(straightCurve(t, 4), 2)

	m := f.ModelMatrix(float32(gomath.Pi/2), RotateZ)
	got := m.TransformVec3(math.Vec3{X: 1})

	// (1,0,0) scaled to (2,0,0), rotated 90° about Z to (0,2,0), then
	// translated by the first sample (origin).
	if !got.ApproxEqual(math.Vec3{Y: 2}, 1e-5) {
		t.Errorf("got %v, want (0, 2, 0)", got)
	}
}

func TestPathFollower_EmptyPathDisablesAnimation(t *testing.T) {
	var empty curve.Bezier
	f := NewPathFollower(&empty, DefaultPathScale)

	if f.Enabled() {
		t.Fatal("expected follower to be disabled for an empty path")
	}
	f.Step() // must not divide by zero
	if f.Index() != 0 {
		t.Errorf("expected index to stay 0, got %d", f.Index())
	}
	if f.Position() != (math.Vec3{}) {
		t.Errorf("expected origin, got %v", f.Position())
	}

	nilFollower := NewPathFollower(nil, 1)
	nilFollower.Step()
	if nilFollower.Enabled() {
		t.Error("nil path should be disabled")
	}
}

func TestCubeTransform(t *testing.T) {
	state := NewInputState()
	state.Translation = TranslateY
	state.GrowScale()

	angle := float32(gomath.Pi / 2) // sin = 1
	got := CubeTransform(angle, state).TransformVec3(math.Vec3{})

	if !got.ApproxEqual(math.Vec3{Y: 1}, 1e-5) {
		t.Errorf("origin moved to %v, want (0, 1, 0)", got)
	}

	m := CubeTransform(0, state)
	if d := m[0] - 1.1; d > 1e-6 || d < -1e-6 {
		t.Errorf("scale: got %v, want 1.1", m[0])
	}
}

func TestRotationModes(t *testing.T) {
	angle := float32(0.3)
	tests := []struct {
		mode RotationMode
		want math.Mat4
	}{
		{RotateNone, math.Identity()},
		{RotateX, math.RotateX(angle)},
		{RotateY, math.RotateY(angle)},
		{RotateZ, math.RotateZ(angle)},
	}

	for _, tt := range tests {
		if got := Rotation(tt.mode, angle); got != tt.want {
			t.Errorf("Rotation(%s) = %v, want %v", tt.mode, got, tt.want)
		}
	}
}

func TestOscillationNone(t *testing.T) {
	if got := Oscillation(TranslateNone, 1); got != math.Identity() {
		t.Errorf("expected identity, got %v", got)
	}
}

func TestInputState_Scale(t *testing.T) {
	s := NewInputState()
	if s.Scale != 1 {
		t.Fatalf("expected initial scale 1, got %v", s.Scale)
	}

	for i := 0; i < 20; i++ {
		s.ShrinkScale()
	}
	if s.Scale != ScaleStep {
		t.Errorf("expected scale clamped to %v, got %v", ScaleStep, s.Scale)
	}
}

func TestModeStrings(t *testing.T) {
	if RotateY.String() != "y" || TranslateZ.String() != "z" {
		t.Error("unexpected mode names")
	}
	if RotationMode(9).String() != "RotationMode(9)" {
		t.Errorf("unexpected unknown mode name %q", RotationMode(9).String())
	}
}
