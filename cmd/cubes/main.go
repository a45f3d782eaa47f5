// Package main runs the cubes demo: two boxes that rotate, oscillate and
// scale from the keyboard.
//
//	X / Y / Z    rotation axis
//	A / S / W    sine translation along X / Y / Z
//	keypad + / - scale by 0.1
//	F12          screenshot
//	ESC          quit
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/app"
	"github.com/Faultbox/trajectory/internal/config"
	"github.com/Faultbox/trajectory/internal/engine/debug"
	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/Faultbox/trajectory/internal/scenes"
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

	logger.Info("=== Cubes ===")

	graphics := cfg.Graphics
	graphics.ClearColor = [4]float32{1, 1, 1, 1}

	shots, err := debug.NewScreenshots(cfg.Debug.ScreenshotDir, "cubes", cfg.Debug.ScreenshotFormat)
	if err != nil {
		logger.Error("invalid screenshot settings", zap.Error(err))
		os.Exit(1)
	}

	a, err := app.New(app.Config{
		Title:       "Cubes",
		Graphics:    graphics,
		ShowFPS:     cfg.Debug.ShowFPS,
		Screenshots: shots,
	})
	if err != nil {
		logger.Error("failed to create app", zap.Error(err))
		os.Exit(1)
	}
	defer a.Close()

	if err := a.Run(scenes.NewCubes(cfg.Animation.InitialRotationX)); err != nil {
		logger.Error("demo error", zap.Error(err))
		a.Close()
		os.Exit(1)
	}

	logger.Info("demo closed normally")
}
