// Package plot rasterizes a sampled curve and its control points into an
// image, projected orthographically onto one axis plane.
package plot

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/Faultbox/trajectory/pkg/math"
)

// Plot errors.
var (
	ErrNoPoints     = errors.New("nothing to plot")
	ErrInvalidSize  = errors.New("image size must be positive")
	ErrUnknownPlane = errors.New("unknown plane")
)

// Plane selects the two world axes mapped to image X and Y.
type Plane int

// Planes.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneZY
)

// ParsePlane parses "xy", "xz" or "zy".
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "zy":
		return PlaneZY, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlane, s)
}

// project returns the 2D coordinates of v in the plane.
func (p Plane) project(v math.Vec3) (float32, float32) {
	switch p {
	case PlaneXZ:
		return v.X, v.Z
	case PlaneZY:
		return v.Z, v.Y
	default:
		return v.X, v.Y
	}
}

// Options control the output image.
type Options struct {
	Size        int     // output width and height in pixels
	Supersample int     // render at Size*Supersample then downscale
	Margin      float32 // fraction of the extent left empty on each side
	LineWidth   float32 // output pixels
	PointSize   float32 // output pixels
	Plane       Plane

	Background   color.RGBA
	CurveColor   color.RGBA
	ControlColor color.RGBA
}

// DefaultOptions returns a 512px XY plot with a dark background.
func DefaultOptions() Options {
	return Options{
		Size:         512,
		Supersample:  2,
		Margin:       0.08,
		LineWidth:    2,
		PointSize:    7,
		Plane:        PlaneXY,
		Background:   color.RGBA{R: 20, G: 20, B: 28, A: 255},
		CurveColor:   color.RGBA{R: 255, G: 204, B: 0, A: 255},
		ControlColor: color.RGBA{R: 0, G: 153, B: 255, A: 255},
	}
}

// Render draws the control polygon's points and the sampled path.
func Render(samples, control []math.Vec3, opts Options) (*image.RGBA, error) {
	if opts.Size <= 0 {
		return nil, ErrInvalidSize
	}
	if len(samples) == 0 && len(control) == 0 {
		return nil, ErrNoPoints
	}
	ss := max(opts.Supersample, 1)
	size := opts.Size * ss

	proj := newProjection(opts.Plane, opts.Margin, size, samples, control)

	canvas := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	if len(samples) > 1 {
		z := vector.NewRasterizer(size, size)
		half := opts.LineWidth * float32(ss) / 2
		for i := 1; i < len(samples); i++ {
			strokeSegment(z, proj.pixel(samples[i-1]), proj.pixel(samples[i]), half)
		}
		z.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.CurveColor), image.Point{})
	}

	if len(control) > 0 {
		z := vector.NewRasterizer(size, size)
		half := opts.PointSize * float32(ss) / 2
		for _, p := range control {
			square(z, proj.pixel(p), half)
		}
		z.Draw(canvas, canvas.Bounds(), image.NewUniform(opts.ControlColor), image.Point{})
	}

	if ss == 1 {
		return canvas, nil
	}
	out := image.NewRGBA(image.Rect(0, 0, opts.Size, opts.Size))
	draw.CatmullRom.Scale(out, out.Bounds(), canvas, canvas.Bounds(), draw.Src, nil)
	return out, nil
}

// projection maps world points to pixel coordinates through an orthographic
// matrix fitted to the points' extent.
type projection struct {
	plane Plane
	ortho math.Mat4
	size  float32
}

func newProjection(plane Plane, margin float32, size int, sets ...[]math.Vec3) projection {
	first := true
	var minU, maxU, minV, maxV float32
	for _, set := range sets {
		for _, p := range set {
			u, v := plane.project(p)
			if first {
				minU, maxU, minV, maxV = u, u, v, v
				first = false
				continue
			}
			minU, maxU = min(minU, u), max(maxU, u)
			minV, maxV = min(minV, v), max(maxV, v)
		}
	}

	// Square extent so the plot keeps its aspect ratio
	extent := max(maxU-minU, maxV-minV)
	if extent == 0 {
		extent = 1
	}
	extent *= 1 + 2*margin
	cu, cv := (minU+maxU)/2, (minV+maxV)/2

	return projection{
		plane: plane,
		ortho: math.Ortho(cu-extent/2, cu+extent/2, cv-extent/2, cv+extent/2, -1, 1),
		size:  float32(size),
	}
}

// pixel returns image coordinates; image Y grows downward.
func (p projection) pixel(v math.Vec3) math.Vec2 {
	u, w := p.plane.project(v)
	ndc := p.ortho.TransformVec3(math.Vec3{X: u, Y: w})
	return math.Vec2{X: (ndc.X + 1) / 2 * p.size, Y: (1 - ndc.Y) / 2 * p.size}
}

// strokeSegment adds a quad of half-width h around a-b. All quads share the
// same winding so overlaps at joints do not cancel.
func strokeSegment(z *vector.Rasterizer, a, b math.Vec2, h float32) {
	d := b.Sub(a)
	if d.Length() == 0 {
		square(z, a, h)
		return
	}
	n := d.Perp().Normalize().Scale(h)

	z.MoveTo(a.X+n.X, a.Y+n.Y)
	z.LineTo(b.X+n.X, b.Y+n.Y)
	z.LineTo(b.X-n.X, b.Y-n.Y)
	z.LineTo(a.X-n.X, a.Y-n.Y)
	z.ClosePath()
}

func square(z *vector.Rasterizer, c math.Vec2, h float32) {
	z.MoveTo(c.X-h, c.Y-h)
	z.LineTo(c.X+h, c.Y-h)
	z.LineTo(c.X+h, c.Y+h)
	z.LineTo(c.X-h, c.Y+h)
	z.ClosePath()
}
