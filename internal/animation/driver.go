package animation

import (
	gomath "math"

	"github.com/Faultbox/trajectory/pkg/math"
)

// Path is a cyclic sequence of positions. *curve.Bezier satisfies it.
type Path interface {
	Len() int
	PointAt(i int) math.Vec3
}

// DefaultPathScale is the uniform scale applied to a model following a path.
const DefaultPathScale = 0.5

// PathFollower moves a model along a Path, one sample per frame.
type PathFollower struct {
	path  Path
	index int
	scale float32
}

// NewPathFollower creates a follower starting at sample 0.
func NewPathFollower(path Path, scale float32) *PathFollower {
	return &PathFollower{path: path, scale: scale}
}

// Enabled reports whether there is a non-empty path to follow.
func (f *PathFollower) Enabled() bool {
	return f.path != nil && f.path.Len() > 0
}

// Index returns the current sample index.
func (f *PathFollower) Index() int {
	return f.index
}

// Position returns the current position, or the origin when disabled.
func (f *PathFollower) Position() math.Vec3 {
	if !f.Enabled() {
		return math.Vec3{}
	}
	return f.path.PointAt(f.index)
}

// Step advances to the next sample, wrapping at the end of the path.
// It is a no-op when the path is empty.
func (f *PathFollower) Step() {
	if !f.Enabled() {
		return
	}
	f.index = (f.index + 1) % f.path.Len()
}

// ModelMatrix returns T(position) · R(angle around the selected axis) · S(scale).
func (f *PathFollower) ModelMatrix(angle float32, rot RotationMode) math.Mat4 {
	model := math.TranslateVec3(f.Position())
	model = model.Mul(Rotation(rot, angle))
	return model.Mul(math.Scale(f.scale, f.scale, f.scale))
}

// CubeTransform returns R(angle) · T(sin(angle) along the selected axis) ·
// S(state.Scale), the transform of the cube demo.
func CubeTransform(angle float32, state *InputState) math.Mat4 {
	model := Rotation(state.Rotation, angle)
	model = model.Mul(Oscillation(state.Translation, angle))
	return model.Mul(math.Scale(state.Scale, state.Scale, state.Scale))
}

// Rotation returns the rotation matrix for mode, identity for RotateNone.
func Rotation(mode RotationMode, angle float32) math.Mat4 {
	switch mode {
	case RotateX:
		return math.RotateX(angle)
	case RotateY:
		return math.RotateY(angle)
	case RotateZ:
		return math.RotateZ(angle)
	default:
		return math.Identity()
	}
}

// Oscillation returns a translation by sin(angle) along the selected axis,
// identity for TranslateNone.
func Oscillation(mode TranslationMode, angle float32) math.Mat4 {
	s := float32(gomath.Sin(float64(angle)))
	switch mode {
	case TranslateX:
		return math.Translate(s, 0, 0)
	case TranslateY:
		return math.Translate(0, s, 0)
	case TranslateZ:
		return math.Translate(0, 0, s)
	default:
		return math.Identity()
	}
}
