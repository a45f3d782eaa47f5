package formats

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Faultbox/trajectory/pkg/math"
)

// FloatsPerCorner is the number of floats emitted per face corner:
// position(3) + fallback color(3) + texcoord(2) + normal(3).
const FloatsPerCorner = 11

// FallbackColor is the flat vertex color written into every corner. Shaders
// that sample a texture ignore it.
var FallbackColor = [3]float32{0.4, 0.1, 0.4}

// OBJCorner holds the 0-based attribute indices of one face corner.
type OBJCorner struct {
	Position int
	TexCoord int
	Normal   int
}

// OBJFace is a triangular face.
type OBJFace struct {
	Corners [3]OBJCorner
}

// OBJ is a parsed Wavefront OBJ mesh with three independent index spaces.
type OBJ struct {
	Positions   []math.Vec3
	TexCoords   []math.Vec2
	Normals     []math.Vec3
	Faces       []OBJFace
	MaterialLib string // value of the last mtllib directive, if any
}

// LoadOBJ reads and parses an OBJ file. When the file cannot be opened an
// empty mesh is returned together with the error.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return &OBJ{}, fmt.Errorf("opening mesh: %w", err)
	}
	defer f.Close()

	return ParseOBJ(f, filepath.Base(path))
}

// ParseOBJ parses OBJ data. Only v, vt, vn and triangular f lines with full
// pos/uv/normal triples are interpreted; comments and other directives are
// skipped. name is used in error messages.
func ParseOBJ(r io.Reader, name string) (*OBJ, error) {
	obj := &OBJ{}
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		fields := strings.Fields(line)
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		fail := func(err error) error {
			return &ParseError{File: name, Line: lineNo, Text: line, Err: err}
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3Fields(fields[1:])
			if err != nil {
				return obj, fail(err)
			}
			obj.Positions = append(obj.Positions, v)

		case "vt":
			vals, err := parseFloats(fields[1:], 2)
			if err != nil {
				return obj, fail(err)
			}
			obj.TexCoords = append(obj.TexCoords, math.Vec2{X: vals[0], Y: vals[1]})

		case "vn":
			v, err := parseVec3Fields(fields[1:])
			if err != nil {
				return obj, fail(err)
			}
			obj.Normals = append(obj.Normals, v)

		case "f":
			face, err := obj.parseFace(fields[1:])
			if err != nil {
				return obj, fail(err)
			}
			obj.Faces = append(obj.Faces, face)

		case "mtllib":
			if len(fields) > 1 {
				obj.MaterialLib = strings.Join(fields[1:], " ")
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return obj, fmt.Errorf("reading %s: %w", name, err)
	}
	return obj, nil
}

// parseFace resolves a face's corners against the attributes read so far.
func (o *OBJ) parseFace(corners []string) (OBJFace, error) {
	var face OBJFace
	if len(corners) != 3 {
		return face, fmt.Errorf("%w: got %d", ErrFaceCorners, len(corners))
	}

	for i, token := range corners {
		parts := strings.Split(token, "/")
		if len(parts) != 3 {
			return face, fmt.Errorf("%w: corner %d %q needs pos/uv/normal", ErrMissingField, i+1, token)
		}

		pos, err := resolveIndex(parts[0], len(o.Positions), "position")
		if err != nil {
			return face, fmt.Errorf("corner %d: %w", i+1, err)
		}
		uv, err := resolveIndex(parts[1], len(o.TexCoords), "texcoord")
		if err != nil {
			return face, fmt.Errorf("corner %d: %w", i+1, err)
		}
		nrm, err := resolveIndex(parts[2], len(o.Normals), "normal")
		if err != nil {
			return face, fmt.Errorf("corner %d: %w", i+1, err)
		}

		face.Corners[i] = OBJCorner{Position: pos, TexCoord: uv, Normal: nrm}
	}
	return face, nil
}

// resolveIndex converts a 1-based index token into a checked 0-based index.
func resolveIndex(token string, count int, kind string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("%w: %s index", ErrMissingField, kind)
	}
	idx, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %s index %q", ErrBadNumber, kind, token)
	}
	idx--
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("%w: %s %d (have %d)", ErrFaceIndex, kind, idx+1, count)
	}
	return idx, nil
}

// VertexBuffer flattens the mesh into an interleaved float buffer in face,
// corner, attribute order. Shared vertices are duplicated per corner.
func (o *OBJ) VertexBuffer() []float32 {
	buf := make([]float32, 0, len(o.Faces)*3*FloatsPerCorner)
	for _, face := range o.Faces {
		for _, c := range face.Corners {
			p := o.Positions[c.Position]
			uv := o.TexCoords[c.TexCoord]
			n := o.Normals[c.Normal]
			buf = append(buf,
				p.X, p.Y, p.Z,
				FallbackColor[0], FallbackColor[1], FallbackColor[2],
				uv.X, uv.Y,
				n.X, n.Y, n.Z,
			)
		}
	}
	return buf
}

// VertexCount returns the number of corners VertexBuffer emits.
func (o *OBJ) VertexCount() int {
	return len(o.Faces) * 3
}

func parseVec3Fields(fields []string) (math.Vec3, error) {
	vals, err := parseFloats(fields, 3)
	if err != nil {
		return math.Vec3{}, err
	}
	return math.Vec3{X: vals[0], Y: vals[1], Z: vals[2]}, nil
}

// parseFloats parses the first n fields. Extra fields (such as an optional
// w component) are ignored.
func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("%w: expected %d values, got %d", ErrMissingField, n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, fields[i])
		}
		out[i] = float32(f)
	}
	return out, nil
}
