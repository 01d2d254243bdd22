package detect

import (
	"fmt"
	"image"

	"gonum.org/v1/gonum/stat"

	"retag/internal/config"
	"retag/pkg/geometry"
)

// Selected classifies whether a tag button is toggled on. The game fills a
// selected button with a saturated color, so the mean activation of the
// highlight channel over the button crop approximates fill coverage.
// The channel index follows the frame's RGBA ordering (see config).
func Selected(frame *image.RGBA, region geometry.RectInt, cfg config.Config) (bool, error) {
	if region.Empty() {
		return false, fmt.Errorf("empty selection region %+v", region)
	}
	b := frame.Bounds()
	frameRect := geometry.RectInt{X: b.Min.X, Y: b.Min.Y, Width: b.Dx(), Height: b.Dy()}
	if !frameRect.ContainsRect(region) {
		return false, fmt.Errorf("selection region %+v outside frame %+v", region, frameRect)
	}
	ch := cfg.SelectedChannel
	if ch < 0 || ch > 3 {
		return false, fmt.Errorf("selection channel %d out of range", ch)
	}

	values := make([]float64, 0, region.Area())
	for y := region.Y; y < region.Y+region.Height; y++ {
		for x := region.X; x < region.X+region.Width; x++ {
			i := frame.PixOffset(x, y)
			values = append(values, float64(frame.Pix[i+ch])/255.0)
		}
	}
	return stat.Mean(values, nil) >= cfg.SelectedThreshold, nil
}
