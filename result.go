package folio

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/tsawler/folio/chunk"
)

// Result is the outcome of a successful extraction request. Its JSON
// rendering is what ExtractJSON caches and returns.
type Result struct {
	Success          bool          `json:"success"`
	FilePath         string        `json:"file_path"`
	TotalPages       int           `json:"total_pages"`
	ProcessedPages   []int         `json:"processed_pages"`
	ExtractionMethod string        `json:"extraction_method"`
	Chunks           []chunk.Chunk `json:"chunks"`
	Summary          chunk.Summary `json:"summary"`
	OCRSummary       *OCRSummary   `json:"ocr_summary,omitempty"`
	Warnings         []string      `json:"warnings,omitempty"`
}

// OCRSummary aggregates recognition quality across the processed pages.
// It is present only when the engine reported confidence metadata.
type OCRSummary struct {
	// AverageConfidence is the mean of the per-page average confidences,
	// in [0, 1], rounded to three decimals.
	AverageConfidence float64 `json:"average_confidence"`

	// TotalTextBlocks is the number of recognized text blocks across all
	// processed pages.
	TotalTextBlocks int `json:"total_text_blocks"`
}

// JSON renders the result as indented JSON.
func (r *Result) JSON() (string, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to render result: %w", err)
	}
	return string(data), nil
}

// ErrorJSON renders the structured failure payload for a failed
// extraction request: success false, a human-readable message, and the
// operation tag of the failing method. No partial chunk data is carried.
func ErrorJSON(method string, err error) string {
	payload := struct {
		Success          bool   `json:"success"`
		Error            string `json:"error"`
		ExtractionMethod string `json:"extraction_method"`
	}{
		Success:          false,
		Error:            err.Error(),
		ExtractionMethod: method,
	}
	data, merr := json.MarshalIndent(payload, "", "  ")
	if merr != nil {
		return fmt.Sprintf("{\"success\": false, \"error\": %q}", err.Error())
	}
	return string(data)
}

// ocrSummary aggregates confidence metadata from the extracted pages.
// Returns nil when no page carried an average_confidence value.
func ocrSummary(pages []chunk.PageText) *OCRSummary {
	var sum float64
	var pagesWithConfidence, blocks int

	for _, p := range pages {
		confidence, ok := p.Metadata["average_confidence"].(float64)
		if !ok {
			continue
		}
		pagesWithConfidence++
		sum += confidence
		if n, ok := p.Metadata["text_blocks"].(int); ok {
			blocks += n
		}
	}

	if pagesWithConfidence == 0 {
		return nil
	}
	return &OCRSummary{
		AverageConfidence: math.Round(sum/float64(pagesWithConfidence)*1000) / 1000,
		TotalTextBlocks:   blocks,
	}
}
