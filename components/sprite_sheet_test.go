package components

import (
	"image"
	"testing"
)

func TestSheetLayoutFrameRect(t *testing.T) {
	l := NewSheetLayout(640, 512, 64, 64)
	if l.Columns != 10 || l.Rows != 8 || l.FrameCount() != 80 {
		t.Fatalf("Expected 10x8 grid, got %+v", l)
	}

	tests := []struct {
		index int
		want  image.Rectangle
		ok    bool
	}{
		{0, image.Rect(0, 0, 64, 64), true},
		{9, image.Rect(576, 0, 640, 64), true},
		{10, image.Rect(0, 64, 64, 128), true},
		{79, image.Rect(576, 448, 640, 512), true},
		{80, image.Rectangle{}, false},
		{-1, image.Rectangle{}, false},
	}
	for _, tt := range tests {
		got, ok := l.FrameRect(tt.index)
		if ok != tt.ok || got != tt.want {
			t.Errorf("FrameRect(%d) = %v, %v; want %v, %v", tt.index, got, ok, tt.want, tt.ok)
		}
	}
}

func TestSheetLayoutZeroFrame(t *testing.T) {
	l := NewSheetLayout(100, 100, 0, 0)
	if l.FrameCount() != 0 {
		t.Errorf("Expected empty layout, got %d frames", l.FrameCount())
	}
	if _, ok := l.FrameRect(0); ok {
		t.Error("Expected no frames")
	}
}
