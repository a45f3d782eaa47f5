// Package main runs the trajectory demo: a textured mesh following a Bezier
// curve under a fly camera.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/app"
	"github.com/Faultbox/trajectory/internal/config"
	"github.com/Faultbox/trajectory/internal/engine/camera"
	"github.com/Faultbox/trajectory/internal/engine/debug"
	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/Faultbox/trajectory/internal/scenes"
	"github.com/Faultbox/trajectory/pkg/math"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Trajectory ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	shots, err := debug.NewScreenshots(cfg.Debug.ScreenshotDir, "trajectory", cfg.Debug.ScreenshotFormat)
	if err != nil {
		logger.Error("invalid screenshot settings", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(app.Config{
		Title:        "Trajectory",
		Graphics:     cfg.Graphics,
		CaptureMouse: cfg.Camera.CaptureMouse,
		ShowFPS:      cfg.Debug.ShowFPS,
		Screenshots:  shots,
	})
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	scene := scenes.NewTrajectory(scenes.TrajectoryConfig{
		Assets: scenes.AssetPaths{
			OBJ:     cfg.Assets.OBJ,
			MTL:     cfg.Assets.MTL,
			Curve:   cfg.Assets.Curve,
			Samples: cfg.Animation.Samples,
		},
		FlipTexture:      cfg.Assets.FlipTexture,
		PathScale:        cfg.Animation.PathScale,
		InitialRotationX: cfg.Animation.InitialRotationX,
		ShowCurve:        cfg.Debug.ShowCurve,
		CaptureMouse:     cfg.Camera.CaptureMouse,
		WatchCurve:       cfg.Debug.WatchCurve,
	}, a.Viewport(), newCamera(cfg.Camera))

	if err := a.Run(scene); err != nil {
		logger.Error("demo error", zap.Error(err))
		a.Close()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}

func newCamera(cfg config.CameraConfig) *camera.FlyCamera {
	cam := camera.NewFlyCamera()
	cam.Position = math.Vec3{X: cfg.Position[0], Y: cfg.Position[1], Z: cfg.Position[2]}
	cam.FOVDegrees = cfg.FOV
	cam.Near = cfg.Near
	cam.Far = cfg.Far
	cam.Sensitivity = cfg.Sensitivity
	cam.Speed = cfg.Speed
	return cam
}
