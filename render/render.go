// Package render rasterizes document pages via MuPDF (go-fitz). It is
// the bridge between PDF files and image-based engines such as OCR.
package render

import (
	"fmt"
	"image"

	"github.com/gen2brain/go-fitz"
)

// Document wraps an open document for page counting, rasterization and
// text access. It is not safe for concurrent use.
type Document struct {
	doc *fitz.Document
}

// Open opens the document at path.
func Open(path string) (*Document, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Close releases the underlying document.
func (d *Document) Close() error {
	return d.doc.Close()
}

// PageCount reports the total number of pages.
func (d *Document) PageCount() int {
	return d.doc.NumPage()
}

// Image rasterizes a zero-indexed page at the given DPI.
func (d *Document) Image(page int, dpi float64) (image.Image, error) {
	img, err := d.doc.ImageDPI(page, dpi)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page+1, err)
	}
	return img, nil
}

// Text returns the embedded text of a zero-indexed page, as MuPDF sees
// it. Useful as a fallback when a page has a text layer after all.
func (d *Document) Text(page int) (string, error) {
	text, err := d.doc.Text(page)
	if err != nil {
		return "", fmt.Errorf("failed to read text of page %d: %w", page+1, err)
	}
	return text, nil
}
