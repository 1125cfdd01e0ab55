//go:build ocr

// Package ocr recognizes text on scanned document pages.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Recognition goes through Tesseract's hOCR output so that per-block
// confidence metadata is available alongside the text.
package ocr

import (
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
	"golang.org/x/text/unicode/norm"
)

// Client wraps Tesseract for OCR operations.
type Client struct {
	client    *gosseract.Client
	languages []string
}

// New creates a new OCR client. The client should be closed when no
// longer needed to release resources.
func New() (*Client, error) {
	return &Client{client: gosseract.NewClient()}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// SetLanguages sets the language(s) for recognition, e.g. "chi_sim",
// "eng". Tesseract reloads trained data when the set changes; setting
// the same languages again is a no-op.
func (c *Client) SetLanguages(languages ...string) error {
	if len(languages) == 0 {
		return fmt.Errorf("at least one language is required")
	}
	if equalLanguages(c.languages, languages) {
		return nil
	}
	if err := c.client.SetLanguage(languages...); err != nil {
		return fmt.Errorf("failed to set languages: %w", err)
	}
	c.languages = append([]string(nil), languages...)
	return nil
}

// RecognizeImage performs OCR on image data (PNG, TIFF, JPEG, etc.) and
// returns the recognized text, NFC-normalized and trimmed.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}
	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}
	return norm.NFC.String(strings.TrimSpace(text)), nil
}

// RecognizeBlocks performs OCR on image data and returns the recognized
// text plus per-line blocks with word confidences, parsed from
// Tesseract's hOCR output. Block texts are joined with single spaces,
// and the joined text is NFC-normalized.
func (c *Client) RecognizeBlocks(imageData []byte) (string, []Block, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", nil, fmt.Errorf("failed to set image: %w", err)
	}
	hocr, err := c.client.HOCRText()
	if err != nil {
		return "", nil, fmt.Errorf("OCR failed: %w", err)
	}
	blocks, err := ParseHOCR(strings.NewReader(hocr))
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse hOCR output: %w", err)
	}

	parts := make([]string, 0, len(blocks))
	for _, b := range blocks {
		parts = append(parts, b.Text)
	}
	text := norm.NFC.String(strings.Join(parts, " "))
	return text, blocks, nil
}

func equalLanguages(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
