package scenes

import "github.com/Faultbox/trajectory/pkg/math"

// Face colours of the cube demo, in box face order.
var cubeFaceColors = [6][3]float32{
	{1, 0, 0}, // front (+Z)
	{0, 1, 0}, // back (-Z)
	{0, 0, 1}, // left (-X)
	{1, 1, 0}, // right (+X)
	{1, 0, 1}, // top (+Y)
	{0, 1, 1}, // bottom (-Y)
}

// CubeVertices returns the two boxes of the cube demo as position(3)
// colour(3) triangles: a 0.5 cube at the origin and a 1x1x0.5 box behind it.
func CubeVertices() []float32 {
	data := make([]float32, 0, 2*36*6)
	data = appendBox(data, math.Vec3{X: -0.25, Y: -0.25, Z: -0.25}, math.Vec3{X: 0.25, Y: 0.25, Z: 0.25})
	data = appendBox(data, math.Vec3{X: -0.5, Y: -0.5, Z: -1}, math.Vec3{X: 0.5, Y: 0.5, Z: -0.5})
	return data
}

// appendBox appends the 36 vertices of an axis-aligned box, two triangles per
// face, each face a single colour.
func appendBox(data []float32, lo, hi math.Vec3) []float32 {
	corner := func(x, y, z bool) math.Vec3 {
		v := lo
		if x {
			v.X = hi.X
		}
		if y {
			v.Y = hi.Y
		}
		if z {
			v.Z = hi.Z
		}
		return v
	}

	faces := [6][4]math.Vec3{
		{corner(false, false, true), corner(true, false, true), corner(true, true, true), corner(false, true, true)},
		{corner(false, false, false), corner(false, true, false), corner(true, true, false), corner(true, false, false)},
		{corner(false, true, false), corner(false, true, true), corner(false, false, true), corner(false, false, false)},
		{corner(true, true, false), corner(true, true, true), corner(true, false, true), corner(true, false, false)},
		{corner(false, true, false), corner(false, true, true), corner(true, true, true), corner(true, true, false)},
		{corner(false, false, false), corner(true, false, false), corner(true, false, true), corner(false, false, true)},
	}

	for i, q := range faces {
		c := cubeFaceColors[i]
		for _, v := range [6]math.Vec3{q[0], q[1], q[2], q[2], q[3], q[0]} {
			data = append(data, v.X, v.Y, v.Z, c[0], c[1], c[2])
		}
	}
	return data
}
