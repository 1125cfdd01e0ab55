// Package pdftext extracts the embedded text layer of PDF documents.
//
// It uses ledongthuc/pdf (pure Go, no CGO) and implements the
// folio.Engine contract under the operation name "text_extract". Scanned
// documents without a text layer produce empty pages here; use the ocr
// package for those.
package pdftext

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/chunk"
)

// Engine extracts embedded page text.
type Engine struct{}

var _ folio.Engine = (*Engine)(nil)

// NewEngine creates a text-layer extraction engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Name returns the operation name used in cache keys.
func (e *Engine) Name() string { return "text_extract" }

// Params returns engine parameters; the text engine has none.
func (e *Engine) Params() map[string]any { return nil }

// Open opens the PDF at path.
func (e *Engine) Open(path string) (folio.Document, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &document{file: file, reader: reader}, nil
}

type document struct {
	file   *os.File
	reader *pdf.Reader
}

func (d *document) PageCount() int {
	return d.reader.NumPage()
}

func (d *document) Close() error {
	return d.file.Close()
}

// ExtractPage reads the text layer of a zero-indexed page. Pages without
// extractable text yield an empty record, which the chunker then skips.
func (d *document) ExtractPage(ctx context.Context, page int) (chunk.PageText, error) {
	if err := ctx.Err(); err != nil {
		return chunk.PageText{}, err
	}

	p := d.reader.Page(page + 1)
	if p.V.IsNull() {
		return chunk.PageText{}, fmt.Errorf("page %d not found", page+1)
	}
	text, err := p.GetPlainText(nil)
	if err != nil {
		return chunk.PageText{}, fmt.Errorf("failed to extract text from page %d: %w", page+1, err)
	}
	text = strings.TrimSpace(text)

	return chunk.PageText{
		Page: page + 1,
		Text: text,
		Metadata: map[string]any{
			"char_count": utf8.RuneCountInString(text),
			"word_count": len(strings.Fields(text)),
		},
	}, nil
}
