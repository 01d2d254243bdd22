package capture

import (
	"image"
	"testing"

	"retag/pkg/geometry"
)

func TestCaptureRectWholeDisplay(t *testing.T) {
	display := image.Rect(0, 0, 1920, 1080)
	got := captureRect(display, geometry.RectInt{})
	if got != display {
		t.Fatalf("empty region must select the display: got %v", got)
	}
}

func TestCaptureRectClamped(t *testing.T) {
	display := image.Rect(0, 0, 1920, 1080)
	got := captureRect(display, geometry.NewRectInt(1800, 1000, 400, 400))
	want := image.Rect(1800, 1000, 1920, 1080)
	if got != want {
		t.Fatalf("captureRect = %v, want %v", got, want)
	}
}

func TestCaptureRectDisjoint(t *testing.T) {
	display := image.Rect(0, 0, 1920, 1080)
	got := captureRect(display, geometry.NewRectInt(3000, 0, 100, 100))
	if !got.Empty() {
		t.Fatalf("disjoint region must be empty, got %v", got)
	}
}

func TestCaptureRectSecondaryDisplayOffset(t *testing.T) {
	display := image.Rect(1920, 0, 3840, 1080)
	got := captureRect(display, geometry.NewRectInt(2000, 100, 300, 200))
	want := image.Rect(2000, 100, 2300, 300)
	if got != want {
		t.Fatalf("captureRect = %v, want %v", got, want)
	}
}
