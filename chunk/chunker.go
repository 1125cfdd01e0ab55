package chunk

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"
)

// ErrInvalidConfig is returned when chunk size and overlap violate the
// configuration contract (positive size, non-negative overlap, overlap
// strictly smaller than size).
var ErrInvalidConfig = errors.New("invalid chunker configuration")

// PageText is the text extracted from a single document page, together
// with auxiliary metadata produced by the extraction engine (confidence
// scores, block counts, and so on). The chunker forwards metadata values
// without interpreting them.
type PageText struct {
	// Page is the 1-indexed page number.
	Page int `json:"page_number"`

	// Text is the raw extracted text for the page.
	Text string `json:"text"`

	// Metadata holds per-page auxiliary values from the engine.
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Chunk is one bounded slice of page text.
type Chunk struct {
	// Content is the chunk text, at most the configured size in code points.
	Content string `json:"content"`

	// Page is the 1-indexed page the chunk originates from.
	Page int `json:"page_number"`

	// Index is the zero-based position of the chunk in the full output
	// sequence. It increases continuously across page boundaries.
	Index int `json:"chunk_index"`

	// Metadata is the source page's metadata overlaid with chunk-local
	// statistics: char_count, word_count, starts_page and ends_page.
	Metadata map[string]any `json:"metadata"`
}

// Chunker splits page text into fixed-size, overlapping windows.
// It is stateless after construction and safe for concurrent use.
type Chunker struct {
	size    int
	overlap int
}

// NewChunker creates a chunker producing chunks of at most size code
// points, where consecutive chunks of the same page share overlap code
// points. It fails with ErrInvalidConfig when size is not positive,
// overlap is negative, or overlap is not strictly smaller than size.
func NewChunker(size, overlap int) (*Chunker, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: chunk size must be positive, got %d", ErrInvalidConfig, size)
	}
	if overlap < 0 {
		return nil, fmt.Errorf("%w: chunk overlap must not be negative, got %d", ErrInvalidConfig, overlap)
	}
	if overlap >= size {
		return nil, fmt.Errorf("%w: chunk overlap %d must be smaller than chunk size %d", ErrInvalidConfig, overlap, size)
	}
	return &Chunker{size: size, overlap: overlap}, nil
}

// Size returns the configured maximum chunk size in code points.
func (c *Chunker) Size() int { return c.size }

// Overlap returns the configured overlap in code points.
func (c *Chunker) Overlap() int { return c.overlap }

// ChunkPages converts an ordered sequence of page records into an ordered
// sequence of chunks. Pages are processed strictly in the order given.
//
// A page whose text fits in one chunk is emitted whole. Longer pages are
// split into windows of the configured size, each window starting
// size-overlap code points after the previous one, so the last overlap
// code points of a window reappear at the start of the next. The final
// window is truncated to whatever remains. Empty page text yields no
// chunks for that page.
func (c *Chunker) ChunkPages(pages []PageText) []Chunk {
	chunks := make([]Chunk, 0, len(pages))
	index := 0

	for _, page := range pages {
		runes := []rune(page.Text)
		if len(runes) == 0 {
			continue
		}

		if len(runes) <= c.size {
			chunks = append(chunks, c.newChunk(page.Text, page, index, true, true))
			index++
			continue
		}

		step := c.size - c.overlap
		for start := 0; start < len(runes); start += step {
			end := start + c.size
			if end > len(runes) {
				end = len(runes)
			}
			content := string(runes[start:end])
			chunks = append(chunks, c.newChunk(content, page, index, start == 0, end == len(runes)))
			index++
			if end == len(runes) {
				break
			}
		}
	}

	return chunks
}

// newChunk builds a chunk, copying the page metadata so chunks never
// alias the caller's maps.
func (c *Chunker) newChunk(content string, page PageText, index int, startsPage, endsPage bool) Chunk {
	metadata := make(map[string]any, len(page.Metadata)+4)
	for k, v := range page.Metadata {
		metadata[k] = v
	}
	metadata["char_count"] = utf8.RuneCountInString(content)
	metadata["word_count"] = countWords(content)
	metadata["starts_page"] = startsPage
	metadata["ends_page"] = endsPage

	return Chunk{
		Content:  content,
		Page:     page.Page,
		Index:    index,
		Metadata: metadata,
	}
}

// countWords counts whitespace-delimited tokens.
func countWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		if unicode.IsSpace(r) {
			inWord = false
		} else if !inWord {
			inWord = true
			words++
		}
	}
	return words
}
