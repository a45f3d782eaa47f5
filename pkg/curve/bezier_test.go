package curve

import (
	"errors"
	"testing"

	"github.com/Faultbox/trajectory/pkg/math"
	"github.com/go-gl/mathgl/mgl32"
)

// makePoints returns n distinct control points.
func makePoints(n int) []math.Vec3 {
	points := make([]math.Vec3, n)
	for i := range points {
		f := float32(i)
		points[i] = math.Vec3{X: f, Y: f * f * 0.1, Z: -f * 0.5}
	}
	return points
}

func TestGenerate_SampleCounts(t *testing.T) {
	tests := []struct {
		name     string
		points   int
		samples  int
		segments int
		want     int
	}{
		{"one segment", 4, 100, 1, 100},
		{"two segments even", 7, 100, 2, 100},
		{"three segments remainder dropped", 10, 100, 3, 99},
		{"budget below segment count", 10, 2, 3, 3},
		{"budget of one", 4, 1, 1, 1},
		{"trailing points ignored", 9, 60, 2, 60},
		{"default demo budget", 13, 1500, 4, 1500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := New(makePoints(tt.points))
			if b.Segments() != tt.segments {
				t.Errorf("expected %d segments, got %d", tt.segments, b.Segments())
			}
			if err := b.Generate(tt.samples); err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			if b.Len() != tt.want {
				t.Errorf("expected %d samples, got %d", tt.want, b.Len())
			}
			if got := ExpectedLen(tt.points, tt.samples); got != tt.want {
				t.Errorf("ExpectedLen = %d, want %d", got, tt.want)
			}
			if b.Len() < b.Segments() {
				t.Errorf("path shorter than segment count: %d < %d", b.Len(), b.Segments())
			}
		})
	}
}

func TestGenerate_TooFewPoints(t *testing.T) {
	for n := 0; n < 4; n++ {
		b := New(makePoints(n))
		for _, m := range []int{1, 10, 1500} {
			if err := b.Generate(m); err != nil {
				t.Fatalf("n=%d m=%d: unexpected error %v", n, m, err)
			}
			if b.Len() != 0 {
				t.Errorf("n=%d m=%d: expected empty path, got %d", n, m, b.Len())
			}
		}
	}
}

func TestGenerate_InvalidSampleCount(t *testing.T) {
	b := New(makePoints(4))
	if err := b.Generate(10); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	for _, m := range []int{0, -5} {
		err := b.Generate(m)
		if !errors.Is(err, ErrInvalidSampleCount) {
			t.Errorf("Generate(%d): expected ErrInvalidSampleCount, got %v", m, err)
		}
		if b.Len() != 0 {
			t.Errorf("Generate(%d): expected path cleared, got %d", m, b.Len())
		}
	}
}

func TestGenerate_SegmentEndpoints(t *testing.T) {
	points := makePoints(10)
	b := New(points)
	if err := b.Generate(30); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	per := b.Len() / b.Segments()
	for s := 0; s < b.Segments(); s++ {
		first := b.PointAt(s * per)
		last := b.PointAt(s*per + per - 1)

		if !first.ApproxEqual(points[3*s], 1e-5) {
			t.Errorf("segment %d: B(0) = %v, want %v", s, first, points[3*s])
		}
		if !last.ApproxEqual(points[3*s+3], 1e-5) {
			t.Errorf("segment %d: B(1) = %v, want %v", s, last, points[3*s+3])
		}
	}
}

func TestGenerate_SingleSampleUsesStart(t *testing.T) {
	points := makePoints(7)
	b := New(points)
	if err := b.Generate(2); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if b.Len() != 2 {
		t.Fatalf("expected 2 samples, got %d", b.Len())
	}
	if b.PointAt(0) != points[0] || b.PointAt(1) != points[3] {
		t.Errorf("expected segment start points, got %v and %v", b.PointAt(0), b.PointAt(1))
	}
}

func TestGenerate_MatchesMathgl(t *testing.T) {
	points := makePoints(4)
	b := New(points)
	if err := b.Generate(11); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	toMgl := func(v math.Vec3) mgl32.Vec3 { return mgl32.Vec3{v.X, v.Y, v.Z} }

	for j := 0; j < b.Len(); j++ {
		tt := float32(j) / 10
		ref := mgl32.CubicBezierCurve3D(tt, toMgl(points[0]), toMgl(points[1]), toMgl(points[2]), toMgl(points[3]))
		want := math.Vec3{X: ref[0], Y: ref[1], Z: ref[2]}
		if got := b.PointAt(j); !got.ApproxEqual(want, 1e-4) {
			t.Errorf("sample %d: got %v, want %v", j, got, want)
		}
	}
}

func TestPointAt_Cyclic(t *testing.T) {
	b := New(makePoints(7))
	if err := b.Generate(25); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	n := b.Len()
	for i := 0; i < 3*n; i++ {
		if b.PointAt(i) != b.PointAt(i+n) {
			t.Fatalf("PointAt(%d) != PointAt(%d)", i, i+n)
		}
	}
	if b.PointAt(-1) != b.PointAt(n-1) {
		t.Errorf("PointAt(-1) should wrap to the last sample")
	}
}

func TestSetControlPoints_CopiesAndResets(t *testing.T) {
	points := makePoints(4)
	b := New(points)
	if err := b.Generate(8); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	points[0] = math.Vec3{X: 99}
	if b.ControlPoints()[0] == points[0] {
		t.Error("control points should be copied on set")
	}

	b.SetControlPoints(makePoints(7))
	if b.Len() != 0 {
		t.Errorf("expected path reset after SetControlPoints, got %d", b.Len())
	}

	samples := b.Samples()
	if len(samples) != 0 {
		t.Errorf("expected no samples, got %d", len(samples))
	}
}

func TestZeroValue(t *testing.T) {
	var b Bezier
	if err := b.Generate(10); err != nil {
		t.Fatalf("Generate on zero value failed: %v", err)
	}
	if b.Len() != 0 || b.Segments() != 0 {
		t.Errorf("expected empty curve, got len=%d segments=%d", b.Len(), b.Segments())
	}
}

func TestLength_StraightLine(t *testing.T) {
	// Collinear, evenly spaced control points trace the segment (0,0,0)-(3,0,0)
	b := New([]math.Vec3{{X: 0}, {X: 1}, {X: 2}, {X: 3}})
	if err := b.Generate(31); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if got := b.Length(); got < 2.999 || got > 3.001 {
		t.Errorf("Length() = %f, want 3", got)
	}

	if got := New(nil).Length(); got != 0 {
		t.Errorf("empty Length() = %f, want 0", got)
	}
}

func TestBounds(t *testing.T) {
	if _, _, ok := New(nil).Bounds(); ok {
		t.Error("empty curve should have no bounds")
	}

	b := New([]math.Vec3{{X: -1, Y: 0, Z: 2}, {X: 0, Y: 5, Z: 0}, {X: 1, Y: -5, Z: 0}, {X: 2, Y: 0, Z: -2}})
	if err := b.Generate(50); err != nil {
		t.Fatalf("Generate: %v", err)
	}
	lo, hi, ok := b.Bounds()
	if !ok {
		t.Fatal("expected bounds")
	}
	// Control points enclose the curve (convex hull property)
	wantLo := math.Vec3{X: -1, Y: -5, Z: -2}
	wantHi := math.Vec3{X: 2, Y: 5, Z: 2}
	if lo != wantLo || hi != wantHi {
		t.Errorf("Bounds() = %v, %v; want %v, %v", lo, hi, wantLo, wantHi)
	}
}
