package scenes

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/animation"
	"github.com/Faultbox/trajectory/internal/engine/input"
	"github.com/Faultbox/trajectory/internal/engine/renderer"
	"github.com/Faultbox/trajectory/internal/engine/shader"
	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/Faultbox/trajectory/internal/scenes/shaders"
	"github.com/Faultbox/trajectory/pkg/math"
)

// Cubes draws two coloured boxes that rotate, oscillate and scale on demand.
type Cubes struct {
	initialRotationX float32
	log              *zap.Logger

	state   *animation.InputState
	model   math.Mat4
	elapsed float64

	program *shader.Program
	buffer  *renderer.Buffer
}

// NewCubes creates the scene. initialRotationX (degrees) is applied until
// the first update.
func NewCubes(initialRotationX float32) *Cubes {
	return &Cubes{
		initialRotationX: initialRotationX,
		log:              logger.Named("cubes"),
		state:            animation.NewInputState(),
	}
}

// State returns the input state driving the scene.
func (s *Cubes) State() *animation.InputState {
	return s.state
}

// Enter compiles the shader and uploads the boxes.
func (s *Cubes) Enter() error {
	var err error
	if s.program, err = shader.New("color", shaders.ColorVertexShader, shaders.ColorFragmentShader); err != nil {
		return err
	}
	if s.buffer, err = renderer.Upload(CubeVertices(), renderer.ColorLayout); err != nil {
		return fmt.Errorf("uploading cubes: %w", err)
	}
	s.model = math.RotateX(math.Radians(s.initialRotationX))
	s.elapsed = 0
	return nil
}

// Exit releases GPU resources.
func (s *Cubes) Exit() error {
	s.buffer.Delete()
	if s.program != nil {
		s.program.Delete()
	}
	return nil
}

// Update recomputes the model matrix from the elapsed time and input state.
func (s *Cubes) Update(dt float64) error {
	s.elapsed += dt
	s.model = animation.CubeTransform(float32(s.elapsed), s.state)
	return nil
}

// Render draws the boxes as triangles and their vertices as points.
func (s *Cubes) Render() error {
	s.program.Use()
	s.program.SetMat4("model", s.model)
	s.buffer.DrawTriangles()
	s.buffer.DrawPoints()
	return nil
}

// HandleEvent applies the cube demo keys.
func (s *Cubes) HandleEvent(e input.Event) error {
	if ApplyCubeKey(s.state, e) {
		s.log.Debug("input state changed",
			zap.Stringer("rotation", s.state.Rotation),
			zap.Stringer("translation", s.state.Translation),
			zap.Float32("scale", s.state.Scale),
		)
	}
	return nil
}

// QuitRequested reports whether ESC was pressed.
func (s *Cubes) QuitRequested() bool {
	return s.state.Quit
}
