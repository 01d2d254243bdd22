// Package ocr provides text recognition for tag buttons via Tesseract.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"gocv.io/x/gocv"
)

// TagChars is the character whitelist for tag-name OCR: tag names are
// alphabetic with an occasional hyphen.
const TagChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-"

// Client is the OCR capability: a prepared bitmap in, raw text out.
type Client interface {
	Text(img gocv.Mat) (string, error)
	Close() error
}

// Engine wraps a Tesseract client restricted to the tag character set.
type Engine struct {
	client *gosseract.Client
}

// NewEngine creates an OCR engine. tessdataPath may be empty to use the
// system default tessdata directory.
func NewEngine(tessdataPath string) (*Engine, error) {
	client := gosseract.NewClient()
	if tessdataPath != "" {
		client.TessdataPrefix = tessdataPath
	}

	if err := client.SetLanguage("eng"); err != nil {
		client.Close()
		return nil, fmt.Errorf("set OCR language: %w", err)
	}
	if err := client.SetWhitelist(TagChars); err != nil {
		client.Close()
		return nil, fmt.Errorf("set OCR whitelist: %w", err)
	}
	// Tag buttons carry a single line of text.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_LINE); err != nil {
		client.Close()
		return nil, fmt.Errorf("set OCR page mode: %w", err)
	}

	return &Engine{client: client}, nil
}

// Close releases OCR resources.
func (e *Engine) Close() error {
	if e.client != nil {
		return e.client.Close()
	}
	return nil
}

// Text runs OCR on an already-binarized image and returns the recognized
// text with whitespace collapsed.
func (e *Engine) Text(img gocv.Mat) (string, error) {
	if img.Empty() {
		return "", fmt.Errorf("empty image")
	}

	buf, err := gocv.IMEncode(gocv.PNGFileExt, img)
	if err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	defer buf.Close()

	if err := e.client.SetImageFromBytes(buf.GetBytes()); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := e.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return strings.Join(strings.Fields(text), " "), nil
}
