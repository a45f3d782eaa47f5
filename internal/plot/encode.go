package plot

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// ErrUnknownFormat is returned for output paths that are neither .png nor .webp.
var ErrUnknownFormat = errors.New("unknown image format")

// Encode writes img as "png" or "webp".
func Encode(w io.Writer, img image.Image, format string) error {
	switch format {
	case "png":
		return png.Encode(w, img)
	case "webp":
		return nativewebp.Encode(w, img, nil)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// FormatOf returns the encoder name for a file extension.
func FormatOf(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "png", nil
	case ".webp":
		return "webp", nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
}

// Save writes img to path, choosing the format from the extension.
func Save(path string, img image.Image) (err error) {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := Encode(f, img, format); err != nil {
		return fmt.Errorf("%s encode: %w", format, err)
	}
	return nil
}
