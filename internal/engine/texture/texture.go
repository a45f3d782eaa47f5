// Package texture decodes image files into RGBA pixel data and uploads them
// as OpenGL textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Texture errors.
var (
	ErrEmptyImage        = errors.New("image has no pixels")
	ErrUnsupportedFormat = errors.New("unsupported texture format")
)

// decoders maps a lower-case file extension to its format name and decoder.
// Formats are chosen by extension rather than sniffed.
var decoders = map[string]struct {
	format string
	decode func(io.Reader) (image.Image, error)
}{
	".png":  {"png", png.Decode},
	".jpg":  {"jpeg", jpeg.Decode},
	".jpeg": {"jpeg", jpeg.Decode},
	".bmp":  {"bmp", bmp.Decode},
	".tga":  {"tga", tga.Decode},
}

// Image is decoded pixel data ready for upload.
type Image struct {
	RGBA *image.RGBA
	// Channels is the channel count of the source (3 for opaque formats,
	// 4 when the source carried alpha). Pixels are always stored as RGBA.
	Channels int
	Format   string
}

// Width returns the image width in pixels.
func (i *Image) Width() int {
	return i.RGBA.Bounds().Dx()
}

// Height returns the image height in pixels.
func (i *Image) Height() int {
	return i.RGBA.Bounds().Dy()
}

// Load reads and decodes a PNG, JPEG, BMP or TGA file. When flipY is set the rows are
// reversed so that row 0 is the bottom of the image, as OpenGL expects.
func Load(path string, flipY bool) (*Image, error) {
	dec, ok := decoders[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture: %w", err)
	}
	defer f.Close()

	src, err := dec.decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	rgba := ToRGBA(src)
	if rgba.Bounds().Empty() {
		return nil, fmt.Errorf("decoding texture %s: %w", path, ErrEmptyImage)
	}
	if flipY {
		FlipVertical(rgba)
	}

	return &Image{RGBA: rgba, Channels: channels(src), Format: dec.format}, nil
}

// ToRGBA converts any image to a zero-origin *image.RGBA.
func ToRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// FlipVertical reverses the row order of img in place.
func FlipVertical(img *image.RGBA) {
	h := img.Bounds().Dy()
	stride := img.Stride
	row := make([]byte, stride)
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*stride : (y+1)*stride]
		bottom := img.Pix[(h-1-y)*stride : (h-y)*stride]
		copy(row, top)
		copy(top, bottom)
		copy(bottom, row)
	}
}

// channels reports 3 for fully opaque sources and 4 otherwise.
func channels(img image.Image) int {
	if o, ok := img.(interface{ Opaque() bool }); ok && o.Opaque() {
		return 3
	}
	return 4
}
