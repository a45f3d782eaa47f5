package math

// CubicBezier evaluates the cubic Bernstein blend of four control points
// at parameter t:
//
//	B(t) = (1-t)³·p0 + 3(1-t)²t·p1 + 3(1-t)t²·p2 + t³·p3
//
// t is not clamped.
func CubicBezier(p0, p1, p2, p3 Vec3, t float32) Vec3 {
	u := 1 - t
	b0 := u * u * u
	b1 := 3 * u * u * t
	b2 := 3 * u * t * t
	b3 := t * t * t

	return Vec3{
		X: b0*p0.X + b1*p1.X + b2*p2.X + b3*p3.X,
		Y: b0*p0.Y + b1*p1.Y + b2*p2.Y + b3*p3.Y,
		Z: b0*p0.Z + b1*p1.Z + b2*p2.Z + b3*p3.Z,
	}
}
