//go:build ocr

package ocr

import (
	"context"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/chunk"
	"github.com/tsawler/folio/render"
)

// Engine performs OCR-based extraction. It implements folio.Engine under
// the operation name "ocr_extract": pages are rasterized via the render
// package, preprocessed, and recognized with Tesseract.
type Engine struct {
	config EngineConfig
}

var _ folio.Engine = (*Engine)(nil)

// NewEngine creates an OCR engine with the default configuration.
func NewEngine() (*Engine, error) {
	return NewEngineWithConfig(DefaultEngineConfig())
}

// NewEngineWithConfig creates an OCR engine with a custom configuration.
func NewEngineWithConfig(config EngineConfig) (*Engine, error) {
	if len(config.Languages) == 0 {
		return nil, fmt.Errorf("at least one OCR language is required")
	}
	if config.DPI <= 0 {
		config.DPI = 200
	}
	if config.Scale <= 0 {
		config.Scale = 1
	}
	return &Engine{config: config}, nil
}

// Name returns the operation name used in cache keys.
func (e *Engine) Name() string { return "ocr_extract" }

// Params returns the parameters that influence recognition output.
func (e *Engine) Params() map[string]any {
	return map[string]any{
		"language": strings.Join(e.config.Languages, ","),
		"dpi":      e.config.DPI,
		"scale":    e.config.Scale,
	}
}

// Open opens the document at path and prepares a recognition client
// configured for the engine's languages.
func (e *Engine) Open(path string) (folio.Document, error) {
	doc, err := render.Open(path)
	if err != nil {
		return nil, err
	}
	client, err := New()
	if err != nil {
		doc.Close()
		return nil, err
	}
	if err := client.SetLanguages(e.config.Languages...); err != nil {
		client.Close()
		doc.Close()
		return nil, err
	}
	return &document{engine: e, doc: doc, client: client}, nil
}

type document struct {
	engine *Engine
	doc    *render.Document
	client *Client
}

func (d *document) PageCount() int {
	return d.doc.PageCount()
}

func (d *document) Close() error {
	clientErr := d.client.Close()
	if err := d.doc.Close(); err != nil {
		return err
	}
	return clientErr
}

// ExtractPage rasterizes and recognizes a zero-indexed page. The page
// metadata carries the language set, the mean block confidence, and the
// recognized block count.
func (d *document) ExtractPage(ctx context.Context, page int) (chunk.PageText, error) {
	if err := ctx.Err(); err != nil {
		return chunk.PageText{}, err
	}

	img, err := d.doc.Image(page, d.engine.config.DPI)
	if err != nil {
		return chunk.PageText{}, err
	}
	imageData, err := PrepareImage(img, d.engine.config.Scale)
	if err != nil {
		return chunk.PageText{}, err
	}
	text, blocks, err := d.client.RecognizeBlocks(imageData)
	if err != nil {
		return chunk.PageText{}, fmt.Errorf("OCR failed on page %d: %w", page+1, err)
	}

	var confidenceSum float64
	for _, b := range blocks {
		confidenceSum += b.Confidence
	}
	averageConfidence := 0.0
	if len(blocks) > 0 {
		averageConfidence = math.Round(confidenceSum/float64(len(blocks))*1000) / 1000
	}

	return chunk.PageText{
		Page: page + 1,
		Text: text,
		Metadata: map[string]any{
			"ocr_language":       strings.Join(d.engine.config.Languages, ","),
			"average_confidence": averageConfidence,
			"text_blocks":        len(blocks),
			"char_count":         utf8.RuneCountInString(text),
			"word_count":         len(strings.Fields(text)),
		},
	}, nil
}
