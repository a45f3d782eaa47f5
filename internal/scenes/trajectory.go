package scenes

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/animation"
	"github.com/Faultbox/trajectory/internal/engine/camera"
	"github.com/Faultbox/trajectory/internal/engine/input"
	"github.com/Faultbox/trajectory/internal/engine/renderer"
	"github.com/Faultbox/trajectory/internal/engine/shader"
	"github.com/Faultbox/trajectory/internal/engine/texture"
	"github.com/Faultbox/trajectory/internal/engine/watch"
	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/Faultbox/trajectory/internal/scenes/shaders"
	"github.com/Faultbox/trajectory/pkg/formats"
	"github.com/Faultbox/trajectory/pkg/math"
)

// Debug overlay colours.
var (
	curveColor        = math.Vec3{X: 1, Y: 0.8, Z: 0}
	controlPointColor = math.Vec3{X: 0, Y: 0.6, Z: 1}
)

// TrajectoryConfig configures the trajectory scene.
type TrajectoryConfig struct {
	Assets           AssetPaths
	FlipTexture      bool
	PathScale        float32
	InitialRotationX float32 // degrees, applied until the first update
	ShowCurve        bool
	CaptureMouse     bool // relative motion; otherwise absolute cursor positions
	WatchCurve       bool // reload the control points when the file changes
}

// Trajectory moves a textured mesh along a Bezier curve, one sample per frame,
// under a fly camera.
type Trajectory struct {
	config   TrajectoryConfig
	viewport Viewport
	camera   *camera.FlyCamera
	log      *zap.Logger

	state    *animation.InputState
	assets   *TrajectoryAssets
	follower *animation.PathFollower
	model    math.Mat4
	elapsed  float64

	phong *shader.Program
	lines *shader.Program
	mesh  *renderer.Buffer
	path  *renderer.Buffer
	ctrl  *renderer.Buffer
	tex   uint32

	watcher *watch.Watcher
}

// NewTrajectory creates the scene. Nothing is loaded until Enter.
func NewTrajectory(cfg TrajectoryConfig, viewport Viewport, cam *camera.FlyCamera) *Trajectory {
	return &Trajectory{
		config:   cfg,
		viewport: viewport,
		camera:   cam,
		log:      logger.Named("trajectory"),
		state:    animation.NewInputState(),
	}
}

// State returns the input state driving the scene.
func (s *Trajectory) State() *animation.InputState {
	return s.state
}

// Enter loads the assets and uploads them.
func (s *Trajectory) Enter() error {
	assets, err := LoadTrajectoryAssets(s.config.Assets, s.log)
	if err != nil {
		return err
	}
	s.assets = assets
	s.follower = animation.NewPathFollower(assets.Curve, s.config.PathScale)
	s.model = math.RotateX(math.Radians(s.config.InitialRotationX))
	s.elapsed = 0

	if s.phong, err = shader.New("phong", shaders.PhongVertexShader, shaders.PhongFragmentShader); err != nil {
		return err
	}
	if s.lines, err = shader.New("line", shaders.LineVertexShader, shaders.LineFragmentShader); err != nil {
		return err
	}

	if assets.Mesh.VertexCount() > 0 {
		if s.mesh, err = renderer.Upload(assets.Mesh.VertexBuffer(), renderer.MeshLayout); err != nil {
			return fmt.Errorf("uploading mesh: %w", err)
		}
	}

	if s.config.ShowCurve {
		if err := s.uploadCurve(); err != nil {
			return err
		}
	}

	s.tex = s.loadTexture(assets.Material.Texture)
	s.setStaticUniforms()

	if s.config.WatchCurve {
		if s.watcher, err = watch.New(s.config.Assets.Curve); err != nil {
			s.log.Warn("curve file not watched", zap.Error(err))
		}
	}
	return nil
}

func (s *Trajectory) uploadCurve() error {
	var err error
	if s.assets.Curve.Len() > 0 {
		if s.path, err = renderer.Upload(FlattenPoints(s.assets.Curve.Samples()), renderer.PositionLayout); err != nil {
			return fmt.Errorf("uploading curve: %w", err)
		}
	}
	if ctrl := s.assets.Curve.ControlPoints(); len(ctrl) > 0 {
		if s.ctrl, err = renderer.Upload(FlattenPoints(ctrl), renderer.PositionLayout); err != nil {
			return fmt.Errorf("uploading control points: %w", err)
		}
	}
	return nil
}

func (s *Trajectory) loadTexture(path string) uint32 {
	if path == "" {
		s.log.Info("material has no diffuse map, using white")
		return texture.White()
	}
	img, err := texture.Load(path, s.config.FlipTexture)
	if err != nil {
		s.log.Warn("texture not loaded, using white", zap.String("path", path), zap.Error(err))
		return texture.White()
	}
	s.log.Debug("texture loaded",
		zap.String("path", path),
		zap.String("format", img.Format),
		zap.Int("width", img.Width()),
		zap.Int("height", img.Height()),
		zap.Int("channels", img.Channels),
	)
	return texture.Upload(img)
}

func (s *Trajectory) setStaticUniforms() {
	m := s.assets.Material
	s.phong.Use()
	s.phong.SetInt("tex_buffer", 0)
	s.phong.SetFloat("ka", m.Ambient)
	s.phong.SetFloat("kd", m.Diffuse)
	s.phong.SetFloat("ks", m.Specular)
	s.phong.SetFloat("q", m.Shininess)
	s.phong.SetVec3("lightPos", LightPosition)
	s.phong.SetVec3("lightColor", LightColor)
}

// Exit releases GPU resources.
func (s *Trajectory) Exit() error {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.log.Warn("closing curve watcher", zap.Error(err))
		}
		s.watcher = nil
	}
	s.mesh.Delete()
	s.path.Delete()
	s.ctrl.Delete()
	texture.Delete(s.tex)
	s.tex = 0
	if s.phong != nil {
		s.phong.Delete()
	}
	if s.lines != nil {
		s.lines.Delete()
	}
	return nil
}

// Update places the model at the current curve sample, then advances.
func (s *Trajectory) Update(dt float64) error {
	if err := s.pollCurve(); err != nil {
		return err
	}
	s.elapsed += dt
	s.model = s.follower.ModelMatrix(float32(s.elapsed), s.state.Rotation)
	s.follower.Step()
	return nil
}

// pollCurve swaps in a regenerated curve when the watched file changed. A
// file that can no longer be read keeps the current curve.
func (s *Trajectory) pollCurve() error {
	if s.watcher == nil {
		return nil
	}
	var path string
	select {
	case p, ok := <-s.watcher.Changes():
		if !ok {
			return nil
		}
		path = p
	default:
		return nil
	}

	c, status, err := LoadCurve(path, s.config.Assets.Samples, s.log)
	if err != nil {
		return err
	}
	if status != formats.LoadOK {
		return nil
	}

	s.assets.Curve = c
	s.follower = animation.NewPathFollower(c, s.config.PathScale)
	if s.config.ShowCurve {
		s.path.Delete()
		s.ctrl.Delete()
		s.path, s.ctrl = nil, nil
		if err := s.uploadCurve(); err != nil {
			return err
		}
	}

	s.log.Info("curve reloaded",
		zap.String("path", path),
		zap.Int("segments", c.Segments()),
		zap.Int("samples", c.Len()),
	)
	return nil
}

// Render draws the mesh and, when enabled, the curve overlay.
func (s *Trajectory) Render() error {
	view := s.camera.ViewMatrix()
	projection := s.camera.ProjectionMatrix(s.viewport.Aspect())

	s.phong.Use()
	s.phong.SetMat4("view", view)
	s.phong.SetMat4("projection", projection)
	s.phong.SetVec3("cameraPos", s.camera.Position)
	s.phong.SetMat4("model", s.model)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	s.mesh.DrawTriangles()

	if s.config.ShowCurve {
		s.lines.Use()
		s.lines.SetMat4("view", view)
		s.lines.SetMat4("projection", projection)
		s.lines.SetVec3("color", curveColor)
		s.path.DrawLineStrip()
		s.lines.SetVec3("color", controlPointColor)
		s.ctrl.DrawPoints()
	}
	return nil
}

// HandleEvent applies rotation keys, WASD camera moves and mouse look.
func (s *Trajectory) HandleEvent(e input.Event) error {
	if ApplyRotationKey(s.state, e) {
		s.log.Debug("rotation changed", zap.Stringer("mode", s.state.Rotation))
		return nil
	}
	if forward, right, ok := MovementKey(e); ok {
		s.camera.HandleMovement(forward, right)
		return nil
	}
	if e.Type == input.EventMouseMove {
		if !s.config.CaptureMouse {
			s.camera.HandleMouse(float32(e.MouseX), float32(e.MouseY))
			return nil
		}
		// Screen Y grows downward
		s.camera.HandleLook(float32(e.RelX), float32(-e.RelY))
	}
	return nil
}

// QuitRequested reports whether ESC was pressed.
func (s *Trajectory) QuitRequested() bool {
	return s.state.Quit
}

// FlattenPoints packs points as consecutive x, y, z floats.
func FlattenPoints(points []math.Vec3) []float32 {
	out := make([]float32, 0, 3*len(points))
	for _, p := range points {
		out = append(out, p.X, p.Y, p.Z)
	}
	return out
}
