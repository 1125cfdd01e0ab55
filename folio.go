// Package folio provides a fluent API for extracting text from paginated
// documents as page-tagged, size-bounded chunks, with results cached so
// repeated extraction requests are cheap.
//
// Basic usage:
//
//	result, err := folio.Open("document.pdf").
//	    WithEngine(pdftext.NewEngine()).
//	    Extract(ctx)
//	if err != nil {
//	    // handle error
//	}
//
// With page selection, chunking options and a shared cache:
//
//	c, _ := cache.New(cache.DefaultConfig())
//	payload, err := folio.Open("report.pdf").
//	    Pages("1,3,5-10,-1").
//	    ChunkSize(1000).
//	    ChunkOverlap(100).
//	    WithEngine(engine).
//	    WithCache(c).
//	    ExtractJSON(ctx)
//
// Extraction engines are collaborators: the pdftext package extracts the
// embedded text layer, and the ocr package recognizes scanned pages via
// Tesseract. Any type implementing [Engine] can be plugged in.
package folio

import (
	"context"
	"errors"

	"github.com/tsawler/folio/cache"
	"github.com/tsawler/folio/chunk"
	"github.com/tsawler/folio/docfile"
)

var (
	// ErrNoEngine is returned by terminal operations when no extraction
	// engine was configured.
	ErrNoEngine = errors.New("no extraction engine configured")

	// ErrNoPages is returned when the page selector matches no page of
	// the document.
	ErrNoPages = errors.New("no pages selected")
)

// Engine produces per-page text for a document. Implementations must be
// safe for concurrent use by independent extraction requests; the
// Document handles they open are used by one request at a time.
type Engine interface {
	// Name identifies the extraction operation (e.g. "text_extract" or
	// "ocr_extract"). It is part of the cache key.
	Name() string

	// Params returns engine-specific parameters that influence output
	// (languages, rendering DPI, engine flags). They are folded into the
	// cache key, so values must be JSON-serializable and stable.
	Params() map[string]any

	// Open opens the document at the given canonical path.
	Open(path string) (Document, error)
}

// Document is an open document handle owned by an Engine. It must be
// closed by the caller of Engine.Open.
type Document interface {
	// PageCount reports the total number of pages.
	PageCount() int

	// ExtractPage extracts text and auxiliary metadata for a
	// zero-indexed page.
	ExtractPage(ctx context.Context, page int) (chunk.PageText, error)

	// Close releases the document's resources.
	Close() error
}

// Extractor accumulates extraction configuration for a single document.
// Configure it with the fluent methods, then call a terminal operation
// such as Extract, ExtractJSON or PageCount.
type Extractor struct {
	path    string
	engine  Engine
	cache   *cache.Cache
	options ExtractOptions
}

// Open starts building an extraction request for the document at path.
// The path is validated when a terminal operation runs.
func Open(path string) *Extractor {
	return &Extractor{
		path:    path,
		options: defaultOptions(),
	}
}

// Pages restricts extraction to the pages matched by selector, e.g.
// "1,3,5-10,-1" for pages 1, 3, 5 through 10 and the last page. An empty
// selector (the default) selects every page.
func (e *Extractor) Pages(selector string) *Extractor {
	e.options.pages = selector
	return e
}

// ChunkSize sets the maximum chunk size in code points. Default 1000.
func (e *Extractor) ChunkSize(n int) *Extractor {
	e.options.chunkSize = n
	return e
}

// ChunkOverlap sets how many code points consecutive chunks of a page
// share. Default 100. The overlap must stay smaller than the chunk size
// or terminal operations fail with chunk.ErrInvalidConfig.
func (e *Extractor) ChunkOverlap(n int) *Extractor {
	e.options.chunkOverlap = n
	return e
}

// WithEngine sets the extraction engine. Terminal operations fail with
// ErrNoEngine when no engine is configured.
func (e *Extractor) WithEngine(engine Engine) *Extractor {
	e.engine = engine
	return e
}

// WithCache attaches a result cache consulted and populated by
// ExtractJSON. Without a cache every request recomputes.
func (e *Extractor) WithCache(c *cache.Cache) *Extractor {
	e.cache = c
	return e
}

// SkipPageErrors makes extraction continue past pages the engine fails
// on, recording a warning per failed page instead of aborting the whole
// request.
func (e *Extractor) SkipPageErrors() *Extractor {
	e.options.skipPageErrors = true
	return e
}

// PageCount opens the document and reports its total page count.
func (e *Extractor) PageCount() (int, error) {
	if e.engine == nil {
		return 0, ErrNoEngine
	}
	path, err := docfile.Validate(e.path)
	if err != nil {
		return 0, err
	}
	doc, err := e.engine.Open(path)
	if err != nil {
		return 0, err
	}
	defer doc.Close()
	return doc.PageCount(), nil
}
