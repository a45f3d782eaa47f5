package renderer

import (
	"errors"
	"testing"
)

func TestLayoutStride(t *testing.T) {
	tests := []struct {
		name   string
		layout Layout
		floats int
		stride int32
	}{
		{"mesh", MeshLayout, 11, 44},
		{"color", ColorLayout, 6, 24},
		{"position", PositionLayout, 3, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.layout.Floats(); got != tt.floats {
				t.Errorf("Floats() = %d, want %d", got, tt.floats)
			}
			if got := tt.layout.Stride(); got != tt.stride {
				t.Errorf("Stride() = %d, want %d", got, tt.stride)
			}
		})
	}
}

func TestLayoutOffsets(t *testing.T) {
	want := []int{0, 12, 24, 32}
	for i, w := range want {
		if got := MeshLayout.Offset(i); got != w {
			t.Errorf("MeshLayout.Offset(%d) = %d, want %d", i, got, w)
		}
	}
}

func TestVertexCount(t *testing.T) {
	n, err := MeshLayout.VertexCount(make([]float32, 33))
	if err != nil {
		t.Fatalf("VertexCount: %v", err)
	}
	if n != 3 {
		t.Errorf("VertexCount = %d, want 3", n)
	}

	if _, err := MeshLayout.VertexCount(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("empty data: got %v, want ErrEmptyData", err)
	}
	if _, err := (Layout{}).VertexCount([]float32{1}); !errors.Is(err, ErrEmptyLayout) {
		t.Errorf("empty layout: got %v, want ErrEmptyLayout", err)
	}
	if _, err := ColorLayout.VertexCount(make([]float32, 7)); !errors.Is(err, ErrPartialVertex) {
		t.Errorf("partial vertex: got %v, want ErrPartialVertex", err)
	}
}

func TestNilBufferIsInert(t *testing.T) {
	var b *Buffer
	b.DrawTriangles()
	b.Delete()
}
