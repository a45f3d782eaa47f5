package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/trajectory/pkg/math"
)

// LoadControlPoints reads a control-point file. When the file cannot be
// opened no points are returned together with the error.
func LoadControlPoints(path string) ([]math.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening control points: %w", err)
	}
	defer f.Close()

	return ParseControlPoints(f)
}

// ParseControlPoints reads one "x,y,z" point per line in file order. Blank
// lines are skipped; empty, missing or non-numeric fields become 0.
func ParseControlPoints(r io.Reader) ([]math.Vec3, error) {
	var points []math.Vec3
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var xyz [3]float32
		for i, field := range strings.Split(line, ",") {
			if i >= len(xyz) {
				break
			}
			xyz[i] = FloatOrElse(field, 0)
		}
		points = append(points, math.Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]})
	}

	if err := scanner.Err(); err != nil {
		return points, fmt.Errorf("reading control points: %w", err)
	}
	return points, nil
}
