package renderer

import (
	"errors"
	"fmt"
	"unsafe"

	"go.uber.org/zap"

	"github.com/Faultbox/trajectory/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
)

// Upload errors.
var (
	ErrEmptyData     = errors.New("no vertex data")
	ErrEmptyLayout   = errors.New("layout has no attributes")
	ErrPartialVertex = errors.New("vertex data is not a multiple of the layout stride")
)

const floatSize = 4

// Attribute describes one float vertex attribute.
type Attribute struct {
	Location   uint32
	Components int32
}

// Layout is an interleaved float vertex layout. Attributes are packed in order.
type Layout []Attribute

// Common layouts.
var (
	// MeshLayout is position(3) colour(3) uv(2) normal(3).
	MeshLayout = Layout{{0, 3}, {1, 3}, {2, 2}, {3, 3}}
	// ColorLayout is position(3) colour(3).
	ColorLayout = Layout{{0, 3}, {1, 3}}
	// PositionLayout is position(3).
	PositionLayout = Layout{{0, 3}}
)

// Floats returns the number of floats per vertex.
func (l Layout) Floats() int {
	n := 0
	for _, a := range l {
		n += int(a.Components)
	}
	return n
}

// Stride returns the vertex size in bytes.
func (l Layout) Stride() int32 {
	return int32(l.Floats() * floatSize)
}

// Offset returns the byte offset of attribute i.
func (l Layout) Offset(i int) int {
	off := 0
	for _, a := range l[:i] {
		off += int(a.Components)
	}
	return off * floatSize
}

// VertexCount validates data against the layout and returns the vertex count.
func (l Layout) VertexCount(data []float32) (int32, error) {
	if len(l) == 0 {
		return 0, ErrEmptyLayout
	}
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	per := l.Floats()
	if len(data)%per != 0 {
		return 0, fmt.Errorf("%w: %d floats, stride %d", ErrPartialVertex, len(data), per)
	}
	return int32(len(data) / per), nil
}

// Buffer is an uploaded vertex array.
type Buffer struct {
	VAO   uint32
	VBO   uint32
	Count int32
}

// Upload copies interleaved vertex data to a new VAO/VBO pair.
func Upload(data []float32, layout Layout) (*Buffer, error) {
	count, err := layout.VertexCount(data)
	if err != nil {
		return nil, err
	}

	b := &Buffer{Count: count}
	gl.GenVertexArrays(1, &b.VAO)
	gl.BindVertexArray(b.VAO)

	gl.GenBuffers(1, &b.VBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, b.VBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, unsafe.Pointer(&data[0]), gl.STATIC_DRAW)

	stride := layout.Stride()
	for i, a := range layout {
		gl.VertexAttribPointerWithOffset(a.Location, a.Components, gl.FLOAT, false, stride, uintptr(layout.Offset(i)))
		gl.EnableVertexAttribArray(a.Location)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	logger.Debug("vertex buffer uploaded",
		zap.Uint32("vao", b.VAO),
		zap.Uint32("vbo", b.VBO),
		zap.Int32("vertices", count),
	)
	return b, nil
}

// DrawTriangles draws the buffer as a triangle list.
func (b *Buffer) DrawTriangles() {
	b.draw(gl.TRIANGLES)
}

// DrawLineStrip draws the buffer as a connected line.
func (b *Buffer) DrawLineStrip() {
	b.draw(gl.LINE_STRIP)
}

// DrawPoints draws one point per vertex.
func (b *Buffer) DrawPoints() {
	b.draw(gl.POINTS)
}

func (b *Buffer) draw(mode uint32) {
	if b == nil || b.Count == 0 {
		return
	}
	gl.BindVertexArray(b.VAO)
	gl.DrawArrays(mode, 0, b.Count)
	gl.BindVertexArray(0)
}

// Delete releases the GL objects.
func (b *Buffer) Delete() {
	if b == nil {
		return
	}
	if b.VAO != 0 {
		gl.DeleteVertexArrays(1, &b.VAO)
	}
	if b.VBO != 0 {
		gl.DeleteBuffers(1, &b.VBO)
	}
	b.VAO, b.VBO, b.Count = 0, 0, 0
}
