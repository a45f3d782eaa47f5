// Package app owns the window, renderer and main loop of a demo.
package app

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/config"
	"github.com/Faultbox/trajectory/internal/engine/debug"
	"github.com/Faultbox/trajectory/internal/engine/input"
	"github.com/Faultbox/trajectory/internal/engine/renderer"
	"github.com/Faultbox/trajectory/internal/engine/window"
	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/Faultbox/trajectory/internal/scenes"
)

// Config holds app configuration.
type Config struct {
	Title        string
	Graphics     config.GraphicsConfig
	CaptureMouse bool
	ShowFPS      bool
	Screenshots  *debug.Screenshots // F12 capture, nil to disable
}

// App runs one scene until it or the window asks to quit.
type App struct {
	config   Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	scenes   *scenes.Manager

	screenshotPending bool
}

// New creates the window, GL context and renderer.
func New(cfg Config) (*App, error) {
	logger.Info("initializing app",
		zap.String("title", cfg.Title),
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
	)

	a := &App{
		config: cfg,
		scenes: scenes.NewManager(),
		input:  input.New(),
	}

	// Window first, it creates the GL context
	var err error
	a.window, err = window.New(window.Config{
		Title:        cfg.Title,
		Width:        cfg.Graphics.Width,
		Height:       cfg.Graphics.Height,
		Fullscreen:   cfg.Graphics.Fullscreen,
		VSync:        cfg.Graphics.VSync,
		CaptureMouse: cfg.CaptureMouse,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	width, height := a.window.GetSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:      width,
		Height:     height,
		ClearColor: cfg.Graphics.ClearColor,
		LineWidth:  cfg.Graphics.LineWidth,
		PointSize:  cfg.Graphics.PointSize,
	})
	if err != nil {
		a.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	logger.Info("app initialized")
	return a, nil
}

// Viewport exposes the renderer's aspect ratio to scenes.
func (a *App) Viewport() scenes.Viewport {
	return a.renderer
}

// Run enters scene and drives it until quit: poll, update, render, swap.
func (a *App) Run(scene scenes.Scene) error {
	a.scenes.Change(scene)
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting main loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			if event.Type == input.EventWindowResize {
				a.renderer.Resize(a.window.GetSize())
				continue
			}
			if event.Pressed(sdl.SCANCODE_F12) {
				a.screenshotPending = true
				continue
			}
			if err := a.scenes.HandleEvent(event); err != nil {
				return fmt.Errorf("event error: %w", err)
			}
		}

		if err := a.scenes.Update(dt); err != nil {
			return fmt.Errorf("update error: %w", err)
		}
		if a.scenes.QuitRequested() {
			a.running = false
			break
		}

		a.renderer.Begin()
		if err := a.scenes.Render(); err != nil {
			return fmt.Errorf("render error: %w", err)
		}
		a.renderer.End()

		if a.screenshotPending {
			a.screenshotPending = false
			a.captureScreenshot()
		}

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.config.ShowFPS {
				logger.Info("fps", zap.Int("count", frameCount), zap.Duration("frame", time.Duration(dt*float64(time.Second))))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

func (a *App) captureScreenshot() {
	if a.config.Screenshots == nil {
		return
	}
	pixels, w, h := a.renderer.ReadPixels()
	path, err := a.config.Screenshots.CaptureFromPixels(pixels, w, h)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("path", path))
}

// Close exits the scene and releases the renderer and window.
func (a *App) Close() {
	logger.Info("closing app")

	if err := a.scenes.Close(); err != nil {
		logger.Warn("scene exit failed", zap.Error(err))
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
