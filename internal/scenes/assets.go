package scenes

import (
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/pkg/curve"
	"github.com/Faultbox/trajectory/pkg/formats"
	"github.com/Faultbox/trajectory/pkg/math"
)

// Material defaults used when the MTL file is missing a key or cannot be read.
const (
	DefaultAmbient   float32 = 0
	DefaultDiffuse   float32 = 1.5
	DefaultSpecular  float32 = 0
	DefaultShininess float32 = 0
)

// Light of the trajectory scene.
var (
	LightPosition = math.Vec3{X: -2, Y: 10, Z: 3}
	LightColor    = math.Vec3{X: 1, Y: 1, Z: 1}
)

// Phong holds the shading coefficients fed to the mesh shader.
type Phong struct {
	Ambient   float32
	Diffuse   float32
	Specular  float32
	Shininess float32
	Texture   string // resolved path, "" when the material names none
}

// PhongFromMaterial reads the coefficients from m, falling back to the
// defaults. A relative texture path is resolved against dir.
func PhongFromMaterial(m formats.Material, dir string) Phong {
	p := Phong{
		Ambient:   m.Float(formats.KeyAmbient, DefaultAmbient),
		Diffuse:   m.Float(formats.KeyDiffuse, DefaultDiffuse),
		Specular:  m.Float(formats.KeySpecular, DefaultSpecular),
		Shininess: m.Float(formats.KeyShininess, DefaultShininess),
	}
	if tex := m.Texture(); tex != "" {
		if !filepath.IsAbs(tex) && dir != "" {
			tex = filepath.Join(dir, tex)
		}
		p.Texture = tex
	}
	return p
}

// AssetPaths names the inputs of the trajectory scene.
type AssetPaths struct {
	OBJ     string
	MTL     string
	Curve   string
	Samples int
}

// TrajectoryAssets is everything the trajectory scene reads from disk.
type TrajectoryAssets struct {
	Mesh     *formats.OBJ
	Material Phong
	Curve    *curve.Bezier

	MeshStatus     formats.LoadStatus
	MaterialStatus formats.LoadStatus
	CurveStatus    formats.LoadStatus
}

// LoadTrajectoryAssets reads the mesh, material and control points and
// generates the curve. Only a malformed mesh or an invalid sample count is an
// error: a missing mesh leaves nothing to draw, a missing material falls back
// to the defaults and missing control points disable the animation.
func LoadTrajectoryAssets(paths AssetPaths, log *zap.Logger) (*TrajectoryAssets, error) {
	a := &TrajectoryAssets{}

	mesh, err := formats.LoadOBJ(paths.OBJ)
	a.MeshStatus = formats.Status(err)
	switch a.MeshStatus {
	case formats.LoadMalformed:
		return nil, fmt.Errorf("loading mesh: %w", err)
	case formats.LoadMissing:
		log.Warn("mesh not loaded, nothing to draw", zap.String("path", paths.OBJ), zap.Error(err))
	}
	a.Mesh = mesh

	mtl, err := formats.LoadMaterial(paths.MTL)
	a.MaterialStatus = formats.Status(err)
	if err != nil {
		log.Warn("material not loaded, using defaults", zap.String("path", paths.MTL), zap.Error(err))
	}
	a.Material = PhongFromMaterial(mtl, filepath.Dir(paths.MTL))

	a.Curve, a.CurveStatus, err = LoadCurve(paths.Curve, paths.Samples, log)
	if err != nil {
		return nil, err
	}

	log.Info("trajectory assets loaded",
		zap.Int("faces", len(a.Mesh.Faces)),
		zap.Stringer("mesh", a.MeshStatus),
		zap.Stringer("material", a.MaterialStatus),
		zap.Stringer("curve", a.CurveStatus),
		zap.Int("control_points", len(a.Curve.ControlPoints())),
		zap.Int("segments", a.Curve.Segments()),
		zap.Int("samples", a.Curve.Len()),
	)
	return a, nil
}

// LoadCurve reads control points and generates a curve of samples points.
// Missing or unreadable points give an empty curve; only an invalid sample
// count is an error.
func LoadCurve(path string, samples int, log *zap.Logger) (*curve.Bezier, formats.LoadStatus, error) {
	points, err := formats.LoadControlPoints(path)
	status := formats.Status(err)
	if err != nil {
		log.Warn("control points not loaded", zap.String("path", path), zap.Error(err))
	}

	c := curve.New(points)
	if err := c.Generate(samples); err != nil {
		return nil, status, fmt.Errorf("generating curve: %w", err)
	}
	if c.Len() == 0 {
		log.Warn("curve is empty, animation disabled", zap.Int("control_points", len(points)))
	}
	return c, status, nil
}
