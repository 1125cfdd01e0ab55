// extractor.go implements the terminal operations: validate the document,
// consult the cache, run the engine, chunk the output.
package folio

import (
	"context"
	"fmt"

	"github.com/tsawler/folio/chunk"
	"github.com/tsawler/folio/docfile"
	"github.com/tsawler/folio/pagerange"
)

// Extract runs the extraction request and returns the structured result.
// It does not consult the cache; use ExtractJSON for cached extraction.
func (e *Extractor) Extract(ctx context.Context) (*Result, error) {
	if e.engine == nil {
		return nil, ErrNoEngine
	}
	path, err := docfile.Validate(e.path)
	if err != nil {
		return nil, err
	}
	return e.extract(ctx, path)
}

// ExtractJSON runs the extraction request and returns the rendered JSON
// payload. When a cache is attached, a previously computed payload for
// the same document, operation and parameters is returned unchanged;
// otherwise the fresh payload is stored before returning.
func (e *Extractor) ExtractJSON(ctx context.Context) (string, error) {
	if e.engine == nil {
		return "", ErrNoEngine
	}
	path, err := docfile.Validate(e.path)
	if err != nil {
		return "", err
	}

	params := e.cacheParams()
	if e.cache != nil {
		if payload, ok := e.cache.Get(path, e.engine.Name(), params); ok {
			return payload, nil
		}
	}

	result, err := e.extract(ctx, path)
	if err != nil {
		return "", err
	}
	payload, err := result.JSON()
	if err != nil {
		return "", err
	}
	if e.cache != nil {
		e.cache.Set(path, e.engine.Name(), params, payload)
	}
	return payload, nil
}

// cacheParams assembles the full parameter set that identifies this
// request: request options plus whatever the engine reports.
func (e *Extractor) cacheParams() map[string]any {
	params := map[string]any{
		"pages":         e.options.pages,
		"chunk_size":    e.options.chunkSize,
		"chunk_overlap": e.options.chunkOverlap,
	}
	for k, v := range e.engine.Params() {
		params[k] = v
	}
	return params
}

// extract performs the uncached extraction for an already-validated path.
func (e *Extractor) extract(ctx context.Context, path string) (*Result, error) {
	// Chunker construction validates size/overlap before any engine work.
	chunker, err := chunk.NewChunker(e.options.chunkSize, e.options.chunkOverlap)
	if err != nil {
		return nil, err
	}

	doc, err := e.engine.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	totalPages := doc.PageCount()
	pages, err := pagerange.Parse(e.options.pages, totalPages)
	if err != nil {
		return nil, err
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("%w: selector %q matches none of %d pages", ErrNoPages, e.options.pages, totalPages)
	}

	var records []chunk.PageText
	var warnings []string
	for _, page := range pages {
		record, err := doc.ExtractPage(ctx, page)
		if err != nil {
			if e.options.skipPageErrors {
				warnings = append(warnings, fmt.Sprintf("page %d: %v", page+1, err))
				continue
			}
			return nil, fmt.Errorf("failed to extract page %d: %w", page+1, err)
		}
		records = append(records, record)
	}

	chunks := chunker.ChunkPages(records)

	processed := make([]int, len(pages))
	for i, page := range pages {
		processed[i] = page + 1
	}

	return &Result{
		Success:          true,
		FilePath:         path,
		TotalPages:       totalPages,
		ProcessedPages:   processed,
		ExtractionMethod: e.engine.Name(),
		Chunks:           chunks,
		Summary:          chunk.Summarize(chunks),
		OCRSummary:       ocrSummary(records),
		Warnings:         warnings,
	}, nil
}
