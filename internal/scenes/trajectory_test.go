package scenes

import (
	gomath "math"
	"testing"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/trajectory/internal/animation"
	"github.com/Faultbox/trajectory/internal/engine/camera"
	"github.com/Faultbox/trajectory/internal/engine/input"
	"github.com/Faultbox/trajectory/internal/engine/watch"
)

type fixedViewport float32

func (v fixedViewport) Aspect() float32 { return float32(v) }

func newTestTrajectory(capture bool) (*Trajectory, *camera.FlyCamera) {
	cam := camera.NewFlyCamera()
	s := NewTrajectory(TrajectoryConfig{CaptureMouse: capture}, fixedViewport(1), cam)
	return s, cam
}

func near32(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func TestTrajectoryHandleEvent_Keys(t *testing.T) {
	s, _ := newTestTrajectory(true)

	press := func(code sdl.Scancode) {
		t.Helper()
		if err := s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: code}); err != nil {
			t.Fatalf("HandleEvent: %v", err)
		}
	}

	press(sdl.SCANCODE_Y)
	if s.State().Rotation != animation.RotateY {
		t.Errorf("Rotation = %v, want %v", s.State().Rotation, animation.RotateY)
	}
	if s.QuitRequested() {
		t.Fatal("QuitRequested before ESC")
	}

	press(sdl.SCANCODE_ESCAPE)
	if !s.QuitRequested() {
		t.Error("QuitRequested = false after ESC")
	}
}

func TestTrajectoryHandleEvent_Movement(t *testing.T) {
	s, cam := newTestTrajectory(true)
	start := cam.Position

	if err := s.HandleEvent(input.Event{Type: input.EventKeyDown, Key: sdl.SCANCODE_W}); err != nil {
		t.Fatalf("HandleEvent: %v", err)
	}
	if !near32(cam.Position.Z, start.Z-cam.Speed) {
		t.Errorf("Position.Z = %v, want %v", cam.Position.Z, start.Z-cam.Speed)
	}
	if s.State().Translation != animation.TranslateNone {
		t.Errorf("W changed translation mode to %v", s.State().Translation)
	}
}

func TestTrajectoryHandleEvent_MouseLook(t *testing.T) {
	t.Run("captured", func(t *testing.T) {
		s, cam := newTestTrajectory(true)
		s.HandleEvent(input.Event{Type: input.EventMouseMove, RelX: 10, RelY: -20})
		if !near32(cam.Yaw, -89) {
			t.Errorf("Yaw = %v, want -89", cam.Yaw)
		}
		if !near32(cam.Pitch, 2) {
			t.Errorf("Pitch = %v, want 2", cam.Pitch)
		}
	})

	t.Run("absolute", func(t *testing.T) {
		s, cam := newTestTrajectory(false)
		s.HandleEvent(input.Event{Type: input.EventMouseMove, MouseX: 100, MouseY: 100})
		if !near32(cam.Yaw, -90) {
			t.Errorf("first event moved the camera: Yaw = %v", cam.Yaw)
		}
		s.HandleEvent(input.Event{Type: input.EventMouseMove, MouseX: 110, MouseY: 80, RelX: 500})
		if !near32(cam.Yaw, -89) {
			t.Errorf("Yaw = %v, want -89", cam.Yaw)
		}
		if !near32(cam.Pitch, 2) {
			t.Errorf("Pitch = %v, want 2", cam.Pitch)
		}
	})
}

func TestTrajectoryPollCurve(t *testing.T) {
	dir := t.TempDir()
	path := writeAsset(t, dir, "curve.txt", controlPointFile(4))

	s, _ := newTestTrajectory(true)
	s.config.Assets = AssetPaths{Curve: path, Samples: 10}
	s.assets = &TrajectoryAssets{}

	w, err := watch.New(path)
	if err != nil {
		t.Fatalf("watch.New() error = %v", err)
	}
	s.watcher = w
	defer w.Close()

	writeAsset(t, dir, "curve.txt", controlPointFile(7))

	deadline := time.Now().Add(5 * time.Second)
	for s.assets.Curve == nil || s.assets.Curve.Segments() != 2 {
		if time.Now().After(deadline) {
			t.Fatal("curve was not reloaded")
		}
		if err := s.pollCurve(); err != nil {
			t.Fatalf("pollCurve() error = %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if s.follower == nil || !s.follower.Enabled() {
		t.Error("follower not reset to the reloaded curve")
	}
}

func TestTrajectoryPollCurve_NoWatcher(t *testing.T) {
	s, _ := newTestTrajectory(true)
	if err := s.pollCurve(); err != nil {
		t.Errorf("pollCurve() without watcher = %v", err)
	}
}
