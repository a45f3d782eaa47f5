// Package debug provides developer tooling for the demos.
package debug

import (
	"fmt"
	"image"
	"path/filepath"
	"time"

	"github.com/Faultbox/trajectory/internal/plot"
)

// Screenshots writes captured frames to a directory as PNG or WebP.
type Screenshots struct {
	outputDir string
	prefix    string
	format    string
	now       func() time.Time
}

// NewScreenshots creates a capture handler. format is "png" or "webp".
func NewScreenshots(outputDir, prefix, format string) (*Screenshots, error) {
	if _, err := plot.FormatOf("x." + format); err != nil {
		return nil, err
	}
	return &Screenshots{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}, nil
}

// Filename returns the path the next capture will be written to.
func (s *Screenshots) Filename() string {
	timestamp := s.now().Format("2006-01-02_15-04-05.000")
	return filepath.Join(s.outputDir, fmt.Sprintf("%s_%s.%s", s.prefix, timestamp, s.format))
}

// CaptureFromPixels saves bottom-up RGBA rows, as returned by glReadPixels,
// as an upright image and returns the written path.
func (s *Screenshots) CaptureFromPixels(pixels []byte, width, height int) (string, error) {
	img, err := FromGLPixels(pixels, width, height)
	if err != nil {
		return "", err
	}
	return s.CaptureFromImage(img)
}

// CaptureFromImage saves img and returns the written path.
func (s *Screenshots) CaptureFromImage(img image.Image) (string, error) {
	path := s.Filename()
	if err := plot.Save(path, img); err != nil {
		return "", fmt.Errorf("saving screenshot: %w", err)
	}
	return path, nil
}

// FromGLPixels copies bottom-up RGBA rows into a top-down image.
func FromGLPixels(pixels []byte, width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", width, height)
	}
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		src := (height - 1 - y) * rowSize
		dst := y * img.Stride
		copy(img.Pix[dst:dst+rowSize], pixels[src:src+rowSize])
	}
	return img, nil
}
