package detect

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"log"

	"gocv.io/x/gocv"

	"retag/internal/config"
	"retag/internal/ocr"
	"retag/internal/tag"
)

// Pipeline runs the full per-frame detection: box candidates, text
// recognition, selection classification, and tag assembly.
type Pipeline struct {
	recognizer *TextRecognizer
	cfg        config.Config
}

// NewPipeline creates a detection pipeline using the given OCR client.
func NewPipeline(engine ocr.Client, cfg config.Config) *Pipeline {
	return &Pipeline{
		recognizer: NewTextRecognizer(engine, tag.Vocabulary(), cfg),
		cfg:        cfg,
	}
}

// Detect finds every recognizable tag button in the frame. Boxes whose text
// cannot be matched to the vocabulary are skipped silently; crop or OCR
// engine failures abort the pass and surface as an error.
func (p *Pipeline) Detect(frame image.Image) ([]tag.Detected, error) {
	rgba := toRGBA(frame)

	gray, err := grayMat(rgba)
	if err != nil {
		return nil, err
	}
	defer gray.Close()

	boxes := DetectTagBoxes(gray, p.cfg)

	var tags []tag.Detected
	for _, box := range boxes {
		name, ok, err := p.recognizer.Recognize(gray, box)
		if err != nil {
			return nil, fmt.Errorf("recognize box %+v: %w", box, err)
		}
		if !ok {
			continue
		}

		selected, err := Selected(rgba, box, p.cfg)
		if err != nil {
			return nil, fmt.Errorf("classify box %+v: %w", box, err)
		}

		t, err := tag.New(name, selected, box)
		if err != nil {
			// Unreachable while the recognizer emits only vocabulary
			// spellings; skip the box rather than losing the pass.
			if errors.Is(err, tag.ErrUnrecognizedTag) {
				log.Printf("skipping box %+v: %v", box, err)
				continue
			}
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// toRGBA returns the frame as a zero-origin *image.RGBA, copying only when
// the frame is not already in that form. Detection coordinates are relative
// to the frame origin.
func toRGBA(frame image.Image) *image.RGBA {
	if rgba, ok := frame.(*image.RGBA); ok && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	b := frame.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), frame, b.Min, draw.Src)
	return rgba
}

// grayMat converts an RGBA frame to a single-channel gocv Mat.
func grayMat(rgba *image.RGBA) (gocv.Mat, error) {
	src, err := gocv.ImageToMatRGBA(rgba)
	if err != nil {
		return gocv.NewMat(), fmt.Errorf("convert frame: %w", err)
	}
	defer src.Close()

	gray := gocv.NewMat()
	gocv.CvtColor(src, &gray, gocv.ColorRGBAToGray)
	return gray, nil
}
