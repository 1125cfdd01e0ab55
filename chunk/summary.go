package chunk

import (
	"sort"
	"unicode/utf8"
)

// Summary aggregates statistics over a chunk sequence.
type Summary struct {
	// TotalChunks is the number of chunks produced.
	TotalChunks int `json:"total_chunks"`

	// TotalCharacters is the sum of chunk content lengths in code points,
	// overlap included.
	TotalCharacters int `json:"total_characters"`

	// PagesCovered lists the distinct source page numbers, ascending.
	PagesCovered []int `json:"pages_covered"`

	// AverageChunkSize is TotalCharacters divided by TotalChunks,
	// truncated. Zero when there are no chunks.
	AverageChunkSize int `json:"average_chunk_size"`
}

// Summarize computes a Summary for the given chunks. It is a pure
// aggregation with no side effects; an empty input yields a summary with
// TotalChunks = 0.
func Summarize(chunks []Chunk) Summary {
	summary := Summary{PagesCovered: []int{}}
	seen := make(map[int]bool)

	for _, c := range chunks {
		summary.TotalChunks++
		summary.TotalCharacters += utf8.RuneCountInString(c.Content)
		if !seen[c.Page] {
			seen[c.Page] = true
			summary.PagesCovered = append(summary.PagesCovered, c.Page)
		}
	}

	sort.Ints(summary.PagesCovered)
	if summary.TotalChunks > 0 {
		summary.AverageChunkSize = summary.TotalCharacters / summary.TotalChunks
	}

	return summary
}
