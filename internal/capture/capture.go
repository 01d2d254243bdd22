// Package capture binds the scanner to desktop screen capture.
package capture

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"retag/pkg/geometry"
)

// ScreenSource captures a fixed region of a display. It satisfies the
// scanner's frame source; window-handle based capture can be swapped in
// behind the same interface on platforms that provide it.
type ScreenSource struct {
	display int
	region  geometry.RectInt // screen coordinates; empty = whole display
}

// NewScreenSource creates a source for the given display index. An empty
// region captures the entire display.
func NewScreenSource(display int, region geometry.RectInt) (*ScreenSource, error) {
	if display < 0 || display >= screenshot.NumActiveDisplays() {
		return nil, fmt.Errorf("display %d not available (%d active)", display, screenshot.NumActiveDisplays())
	}
	return &ScreenSource{display: display, region: region}, nil
}

// Frame captures the configured region and returns it with its screen-space
// origin, so detections can be projected to absolute coordinates.
func (s *ScreenSource) Frame() (image.Image, geometry.PointInt, error) {
	display := screenshot.GetDisplayBounds(s.display)
	rect := captureRect(display, s.region)
	if rect.Empty() {
		return nil, geometry.PointInt{}, fmt.Errorf("capture region %+v outside display %v", s.region, display)
	}

	img, err := screenshot.CaptureRect(rect)
	if err != nil {
		return nil, geometry.PointInt{}, fmt.Errorf("capture display %d: %w", s.display, err)
	}
	return img, geometry.PointInt{X: rect.Min.X, Y: rect.Min.Y}, nil
}

// Minimized always reports false: a display region has no minimized state.
func (s *ScreenSource) Minimized() bool {
	return false
}

// captureRect clamps the configured region to the display bounds. An empty
// configured region selects the whole display.
func captureRect(display image.Rectangle, region geometry.RectInt) image.Rectangle {
	if region.Empty() {
		return display
	}
	want := image.Rect(region.X, region.Y, region.X+region.Width, region.Y+region.Height)
	return want.Intersect(display)
}
