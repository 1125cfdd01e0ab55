//go:build !ocr

// Package ocr recognizes text on scanned document pages.
//
// This is the stub implementation used when the "ocr" build tag is not
// set. All constructors return ErrOCRNotEnabled.
//
// To enable OCR, rebuild with the "ocr" build tag:
//
//	go build -tags ocr
//
// This requires Tesseract to be installed. On macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
package ocr

import (
	"errors"

	"github.com/tsawler/folio"
)

// ErrOCRNotEnabled is returned when OCR functions are called but OCR
// support was not compiled in. Rebuild with -tags ocr to enable OCR
// support.
var ErrOCRNotEnabled = errors.New("OCR support not enabled; rebuild with -tags ocr")

// Client is a stub OCR client that returns errors for all operations.
type Client struct{}

// New returns an error indicating OCR support is not enabled.
// To enable OCR, rebuild with: go build -tags ocr
func New() (*Client, error) {
	return nil, ErrOCRNotEnabled
}

// Close is a no-op for the stub client.
// It is safe to call on a nil client.
func (c *Client) Close() error {
	return nil
}

// SetLanguages returns an error indicating OCR support is not enabled.
func (c *Client) SetLanguages(languages ...string) error {
	return ErrOCRNotEnabled
}

// RecognizeImage returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeImage(imageData []byte) (string, error) {
	return "", ErrOCRNotEnabled
}

// RecognizeBlocks returns an error indicating OCR support is not enabled.
func (c *Client) RecognizeBlocks(imageData []byte) (string, []Block, error) {
	return "", nil, ErrOCRNotEnabled
}

// Engine is a stub OCR engine that cannot be constructed.
type Engine struct{}

// NewEngine returns an error indicating OCR support is not enabled.
func NewEngine() (*Engine, error) {
	return nil, ErrOCRNotEnabled
}

// NewEngineWithConfig returns an error indicating OCR support is not
// enabled.
func NewEngineWithConfig(config EngineConfig) (*Engine, error) {
	return nil, ErrOCRNotEnabled
}

// Name returns the operation name used in cache keys.
func (e *Engine) Name() string { return "ocr_extract" }

// Params returns nil for the stub engine.
func (e *Engine) Params() map[string]any { return nil }

// Open returns an error indicating OCR support is not enabled.
func (e *Engine) Open(path string) (folio.Document, error) {
	return nil, ErrOCRNotEnabled
}

var _ folio.Engine = (*Engine)(nil)
