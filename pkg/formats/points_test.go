package formats

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Faultbox/trajectory/pkg/math"
)

func TestParseControlPoints(t *testing.T) {
	data := "0,0,0\n1.5,-2,3\n\n,4,\nx,1\n7,8,9,10\n"

	points, err := ParseControlPoints(strings.NewReader(data))
	if err != nil {
		t.Fatalf("ParseControlPoints failed: %v", err)
	}

	want := []math.Vec3{
		{X: 0, Y: 0, Z: 0},
		{X: 1.5, Y: -2, Z: 3},
		{X: 0, Y: 4, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 7, Y: 8, Z: 9},
	}
	if len(points) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(points), points)
	}
	for i := range want {
		if points[i] != want[i] {
			t.Errorf("point %d: got %v, want %v", i, points[i], want[i])
		}
	}
}

func TestLoadControlPoints_MissingFile(t *testing.T) {
	points, err := LoadControlPoints(filepath.Join(t.TempDir(), "curves.txt"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if Status(err) != LoadMissing {
		t.Errorf("expected status missing, got %s", Status(err))
	}
	if len(points) != 0 {
		t.Errorf("expected no points, got %d", len(points))
	}
}

func TestStatus(t *testing.T) {
	if Status(nil) != LoadOK {
		t.Error("nil error should be LoadOK")
	}
	perr := &ParseError{File: "a.obj", Line: 3, Text: "f 1", Err: ErrFaceCorners}
	if Status(perr) != LoadMalformed {
		t.Error("ParseError should be LoadMalformed")
	}
	if !strings.Contains(perr.Error(), "a.obj:3") {
		t.Errorf("error should name file and line, got %q", perr.Error())
	}
	if LoadMissing.String() != "missing" {
		t.Errorf("unexpected String() %q", LoadMissing.String())
	}
}
