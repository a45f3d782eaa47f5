// Package curve builds composite cubic Bezier paths from an ordered list of
// control points and samples them for animation.
//
// Points p[3s], p[3s+1], p[3s+2], p[3s+3] form segment s, so n points give
// floor((n-1)/3) segments and adjacent segments share an end point. Trailing
// points that do not complete a segment are ignored.
//
// A sample budget m is split evenly: every segment gets max(1, m/k) samples
// and the m%k remainder is dropped. Within a segment the samples are spread
// over t in [0, 1] inclusive of both ends.
package curve

import (
	"errors"

	"github.com/Faultbox/trajectory/pkg/math"
)

// ErrInvalidSampleCount is returned by Generate for a non-positive budget.
var ErrInvalidSampleCount = errors.New("sample count must be positive")

// Bezier is a composite cubic Bezier curve and its sampled path.
// The zero value is an empty curve.
type Bezier struct {
	controlPoints []math.Vec3
	path          []math.Vec3
}

// New returns a curve with the given control points. Call Generate to sample
// it.
func New(points []math.Vec3) *Bezier {
	b := &Bezier{}
	b.SetControlPoints(points)
	return b
}

// SetControlPoints stores a copy of points and discards any sampled path.
func (b *Bezier) SetControlPoints(points []math.Vec3) {
	b.controlPoints = append([]math.Vec3(nil), points...)
	b.path = nil
}

// ControlPoints returns a copy of the control points.
func (b *Bezier) ControlPoints() []math.Vec3 {
	return append([]math.Vec3(nil), b.controlPoints...)
}

// Segments returns the number of complete 4-point segments.
func (b *Bezier) Segments() int {
	return segmentCount(len(b.controlPoints))
}

// Generate samples the curve with a total budget of sampleCount points,
// replacing any previous path. With fewer than 4 control points the path is
// empty and no error is returned.
func (b *Bezier) Generate(sampleCount int) error {
	b.path = nil
	if sampleCount <= 0 {
		return ErrInvalidSampleCount
	}

	k := b.Segments()
	if k == 0 {
		return nil
	}

	perSegment := samplesPerSegment(k, sampleCount)
	path := make([]math.Vec3, 0, k*perSegment)

	for s := 0; s < k; s++ {
		p0 := b.controlPoints[3*s]
		p1 := b.controlPoints[3*s+1]
		p2 := b.controlPoints[3*s+2]
		p3 := b.controlPoints[3*s+3]

		for j := 0; j < perSegment; j++ {
			path = append(path, math.CubicBezier(p0, p1, p2, p3, param(j, perSegment)))
		}
	}

	b.path = path
	return nil
}

// Len returns the number of samples in the path.
func (b *Bezier) Len() int {
	return len(b.path)
}

// PointAt returns sample i, wrapping cyclically in both directions.
// It panics on an empty path; check Len first.
func (b *Bezier) PointAt(i int) math.Vec3 {
	n := len(b.path)
	i %= n
	if i < 0 {
		i += n
	}
	return b.path[i]
}

// Samples returns a copy of the sampled path.
func (b *Bezier) Samples() []math.Vec3 {
	return append([]math.Vec3(nil), b.path...)
}

// Length returns the polyline length of the sampled path, 0 when it has
// fewer than two samples.
func (b *Bezier) Length() float32 {
	var total float32
	for i := 1; i < len(b.path); i++ {
		total += b.path[i].Distance(b.path[i-1])
	}
	return total
}

// Bounds returns the axis-aligned box enclosing the control points and the
// sampled path. ok is false when both are empty.
func (b *Bezier) Bounds() (lo, hi math.Vec3, ok bool) {
	for _, set := range [][]math.Vec3{b.controlPoints, b.path} {
		for _, p := range set {
			if !ok {
				lo, hi, ok = p, p, true
				continue
			}
			lo = math.Vec3{X: min(lo.X, p.X), Y: min(lo.Y, p.Y), Z: min(lo.Z, p.Z)}
			hi = math.Vec3{X: max(hi.X, p.X), Y: max(hi.Y, p.Y), Z: max(hi.Z, p.Z)}
		}
	}
	return lo, hi, ok
}

// ExpectedLen returns the path length Generate produces for n control points
// and the given sample budget.
func ExpectedLen(n, sampleCount int) int {
	k := segmentCount(n)
	if k == 0 || sampleCount <= 0 {
		return 0
	}
	return k * samplesPerSegment(k, sampleCount)
}

func segmentCount(n int) int {
	if n < 4 {
		return 0
	}
	return (n - 1) / 3
}

func samplesPerSegment(k, sampleCount int) int {
	per := sampleCount / k
	if per < 1 {
		per = 1
	}
	return per
}

// param returns the t value of sample j out of count within a segment.
func param(j, count int) float32 {
	if count == 1 {
		return 0
	}
	return float32(j) / float32(count-1)
}
