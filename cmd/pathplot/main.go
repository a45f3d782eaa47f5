// pathplot loads a control-point file, samples the Bezier curve and writes
// an orthographic plot of it as PNG or WebP, without opening a window.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/Faultbox/trajectory/internal/plot"
	"github.com/Faultbox/trajectory/pkg/curve"
	"github.com/Faultbox/trajectory/pkg/formats"
)

func main() {
	curvePath := flag.String("curve", "animations/curves.txt", "Control point file")
	samples := flag.Int("samples", 1500, "Number of curve samples")
	out := flag.String("out", "curve.png", "Output image (.png or .webp)")
	size := flag.Int("size", 512, "Output width and height in pixels")
	supersample := flag.Int("supersample", 2, "Render scale before downsampling")
	plane := flag.String("plane", "xy", "Projection plane: xy, xz or zy")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := "info"
	if *debug {
		level = "debug"
	}
	if err := logger.Init(level, ""); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	points, err := formats.LoadControlPoints(*curvePath)
	if err != nil {
		logger.Error("failed to load control points",
			zap.String("path", *curvePath),
			zap.Stringer("status", formats.Status(err)),
			zap.Error(err),
		)
		os.Exit(1)
	}

	c := curve.New(points)
	if err := c.Generate(*samples); err != nil {
		logger.Error("failed to generate curve", zap.Int("samples", *samples), zap.Error(err))
		os.Exit(1)
	}
	printStats(*curvePath, c, *samples)

	if c.Len() == 0 {
		logger.Warn("fewer than 4 control points, plotting points only")
	}

	opts := plot.DefaultOptions()
	opts.Size = *size
	opts.Supersample = *supersample
	if opts.Plane, err = plot.ParsePlane(*plane); err != nil {
		logger.Error("invalid plane", zap.Error(err))
		os.Exit(1)
	}

	img, err := plot.Render(c.Samples(), c.ControlPoints(), opts)
	if err != nil {
		logger.Error("failed to render plot", zap.Error(err))
		os.Exit(1)
	}
	if err := plot.Save(*out, img); err != nil {
		logger.Error("failed to write plot", zap.String("path", *out), zap.Error(err))
		os.Exit(1)
	}

	logger.Debug("plot written", zap.String("path", *out), zap.Int("size", *size))
	fmt.Printf("Wrote:          %s\n", *out)
}

func printStats(path string, c *curve.Bezier, samples int) {
	fmt.Printf("Control points: %d (%s)\n", len(c.ControlPoints()), path)
	fmt.Printf("Segments:       %d\n", c.Segments())
	fmt.Printf("Samples:        %d of %d requested\n", c.Len(), samples)
	fmt.Printf("Length:         %.4f\n", c.Length())
	if lo, hi, ok := c.Bounds(); ok {
		fmt.Printf("Bounds:         (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
			lo.X, lo.Y, lo.Z, hi.X, hi.Y, hi.Z)
	}
}
