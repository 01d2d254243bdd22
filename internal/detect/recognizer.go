package detect

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"retag/internal/config"
	"retag/internal/ocr"
	"retag/internal/textmatch"
	"retag/pkg/geometry"
)

// TextRecognizer extracts a canonical tag name from a candidate box.
type TextRecognizer struct {
	engine  ocr.Client
	matcher *textmatch.Matcher
	cfg     config.Config
}

// NewTextRecognizer creates a recognizer that fuzzy-matches OCR output
// against the given vocabulary.
func NewTextRecognizer(engine ocr.Client, vocab []string, cfg config.Config) *TextRecognizer {
	return &TextRecognizer{
		engine:  engine,
		matcher: textmatch.NewMatcher(vocab, cfg.FuzzyCutoff),
		cfg:     cfg,
	}
}

// Recognize returns the canonical tag name for a candidate box, or ok=false
// when the box holds no readable tag text. An error means the crop or the
// OCR engine failed; the caller aborts the detection pass.
func (r *TextRecognizer) Recognize(gray gocv.Mat, box geometry.RectInt) (name string, ok bool, err error) {
	// Shrink the crop so the button border does not reach the OCR engine.
	inset := box.Inset(r.cfg.OCRInset)
	if inset.Empty() {
		return "", false, fmt.Errorf("degenerate tag box %+v", box)
	}
	frame := geometry.RectInt{Width: gray.Cols(), Height: gray.Rows()}
	if !frame.ContainsRect(inset) {
		return "", false, fmt.Errorf("tag box %+v outside frame %dx%d", inset, gray.Cols(), gray.Rows())
	}

	crop := gray.Region(image.Rect(inset.X, inset.Y, inset.X+inset.Width, inset.Y+inset.Height))
	defer crop.Close()

	binary := gocv.NewMat()
	defer binary.Close()
	gocv.Threshold(crop, &binary, float32(r.cfg.OCRThreshold), 255, gocv.ThresholdBinary)

	text, err := r.engine.Text(binary)
	if err != nil {
		return "", false, err
	}
	// Very short reads are empty buttons or garbage; skip before the fuzzy
	// search.
	if len(text) < r.cfg.MinTextLen {
		return "", false, nil
	}

	name, ok = r.matcher.Best(text)
	return name, ok, nil
}
