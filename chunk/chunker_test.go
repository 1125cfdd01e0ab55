package chunk

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestNewChunker_Validation(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		wantErr bool
	}{
		{"valid", 1000, 100, false},
		{"zero overlap", 1000, 0, false},
		{"minimal", 1, 0, false},
		{"zero size", 0, 0, true},
		{"negative size", -5, 0, true},
		{"negative overlap", 100, -1, true},
		{"overlap equals size", 100, 100, true},
		{"overlap exceeds size", 100, 150, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChunker(tt.size, tt.overlap)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("NewChunker(%d, %d) error = %v, want ErrInvalidConfig", tt.size, tt.overlap, err)
				}
				return
			}
			if err != nil {
				t.Errorf("NewChunker(%d, %d) unexpected error: %v", tt.size, tt.overlap, err)
			}
		})
	}
}

func TestChunkPages_EmptyInput(t *testing.T) {
	chunker, err := NewChunker(1000, 100)
	if err != nil {
		t.Fatal(err)
	}

	chunks := chunker.ChunkPages(nil)
	if len(chunks) != 0 {
		t.Errorf("expected no chunks for empty input, got %d", len(chunks))
	}

	summary := Summarize(chunks)
	if summary.TotalChunks != 0 {
		t.Errorf("expected TotalChunks 0, got %d", summary.TotalChunks)
	}
}

func TestChunkPages_EmptyPageText(t *testing.T) {
	chunker, err := NewChunker(100, 10)
	if err != nil {
		t.Fatal(err)
	}

	chunks := chunker.ChunkPages([]PageText{
		{Page: 1, Text: ""},
		{Page: 2, Text: "some text"},
	})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	if chunks[0].Page != 2 {
		t.Errorf("expected chunk from page 2, got page %d", chunks[0].Page)
	}
	if chunks[0].Index != 0 {
		t.Errorf("expected chunk index 0, got %d", chunks[0].Index)
	}
}

func TestChunkPages_SinglePageFits(t *testing.T) {
	chunker, err := NewChunker(100, 10)
	if err != nil {
		t.Fatal(err)
	}

	chunks := chunker.ChunkPages([]PageText{{Page: 3, Text: "short page text"}})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	c := chunks[0]
	if c.Content != "short page text" {
		t.Errorf("content mismatch: %q", c.Content)
	}
	if c.Page != 3 {
		t.Errorf("expected page 3, got %d", c.Page)
	}
	if c.Metadata["starts_page"] != true || c.Metadata["ends_page"] != true {
		t.Errorf("expected starts_page and ends_page true, got %v / %v",
			c.Metadata["starts_page"], c.Metadata["ends_page"])
	}
	if c.Metadata["char_count"] != 15 {
		t.Errorf("expected char_count 15, got %v", c.Metadata["char_count"])
	}
	if c.Metadata["word_count"] != 3 {
		t.Errorf("expected word_count 3, got %v", c.Metadata["word_count"])
	}
}

// repeatingText builds deterministic, non-uniform text of length n.
func repeatingText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i%10 == 9 {
			sb.WriteByte(' ')
		} else {
			sb.WriteByte(byte('a' + i%26))
		}
	}
	return sb.String()
}

func TestChunkPages_WindowedSplit(t *testing.T) {
	chunker, err := NewChunker(1000, 100)
	if err != nil {
		t.Fatal(err)
	}

	text := repeatingText(2500)
	chunks := chunker.ChunkPages([]PageText{{Page: 1, Text: text}})

	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks, got %d", len(chunks))
	}

	// Windows start every size-overlap characters: 0, 900, 1800.
	wantLens := []int{1000, 1000, 700}
	for i, want := range wantLens {
		if got := utf8.RuneCountInString(chunks[i].Content); got != want {
			t.Errorf("chunk %d length = %d, want %d", i, got, want)
		}
		if chunks[i].Index != i {
			t.Errorf("chunk %d index = %d", i, chunks[i].Index)
		}
	}

	// The last 100 characters of a window reappear at the start of the next.
	for i := 1; i < len(chunks); i++ {
		prev := []rune(chunks[i-1].Content)
		curr := []rune(chunks[i].Content)
		if string(prev[len(prev)-100:]) != string(curr[:100]) {
			t.Errorf("overlap mismatch between chunk %d and %d", i-1, i)
		}
	}

	// Boundary flags.
	if chunks[0].Metadata["starts_page"] != true || chunks[0].Metadata["ends_page"] != false {
		t.Errorf("first chunk flags wrong: %v / %v",
			chunks[0].Metadata["starts_page"], chunks[0].Metadata["ends_page"])
	}
	if chunks[2].Metadata["starts_page"] != false || chunks[2].Metadata["ends_page"] != true {
		t.Errorf("last chunk flags wrong: %v / %v",
			chunks[2].Metadata["starts_page"], chunks[2].Metadata["ends_page"])
	}
}

func TestChunkPages_RoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		size    int
		overlap int
		length  int
	}{
		{"exact fit", 1000, 100, 1000},
		{"one split", 1000, 100, 1100},
		{"three windows", 1000, 100, 2500},
		{"many windows", 50, 10, 487},
		{"no overlap", 64, 0, 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunker, err := NewChunker(tt.size, tt.overlap)
			if err != nil {
				t.Fatal(err)
			}
			text := repeatingText(tt.length)
			chunks := chunker.ChunkPages([]PageText{{Page: 1, Text: text}})

			var sb strings.Builder
			for i, c := range chunks {
				runes := []rune(c.Content)
				if i == 0 {
					sb.WriteString(c.Content)
				} else {
					sb.WriteString(string(runes[tt.overlap:]))
				}
			}
			if sb.String() != text {
				t.Errorf("round trip failed: got %d chars, want %d", sb.Len(), len(text))
			}
		})
	}
}

func TestChunkPages_IndexMonotonicAcrossPages(t *testing.T) {
	chunker, err := NewChunker(50, 5)
	if err != nil {
		t.Fatal(err)
	}

	pages := []PageText{
		{Page: 1, Text: repeatingText(120)}, // splits into 3
		{Page: 2, Text: ""},                 // no chunks
		{Page: 3, Text: repeatingText(30)},  // 1 chunk
		{Page: 4, Text: repeatingText(100)}, // splits into 3 (windows at 0, 45, 90)
	}
	chunks := chunker.ChunkPages(pages)

	if len(chunks) == 0 {
		t.Fatal("expected chunks")
	}
	for i, c := range chunks {
		if c.Index != i {
			t.Errorf("chunk %d has index %d, want %d", i, c.Index, i)
		}
	}

	// Page attribution survives the split.
	wantPages := []int{1, 1, 1, 3, 4, 4, 4}
	if len(chunks) != len(wantPages) {
		t.Fatalf("expected %d chunks, got %d", len(wantPages), len(chunks))
	}
	for i, want := range wantPages {
		if chunks[i].Page != want {
			t.Errorf("chunk %d page = %d, want %d", i, chunks[i].Page, want)
		}
	}
}

func TestChunkPages_MultibyteBoundaries(t *testing.T) {
	chunker, err := NewChunker(4, 1)
	if err != nil {
		t.Fatal(err)
	}

	text := "机器学习是人工智能领" // 10 code points, 3 bytes each
	chunks := chunker.ChunkPages([]PageText{{Page: 1, Text: text}})

	// Windows start every 3 code points: 0, 3, 6.
	want := []string{"机器学习", "习是人工", "工智能领"}
	if len(chunks) != len(want) {
		t.Fatalf("expected %d chunks, got %d", len(want), len(chunks))
	}
	for i, w := range want {
		if chunks[i].Content != w {
			t.Errorf("chunk %d = %q, want %q", i, chunks[i].Content, w)
		}
		if !utf8.ValidString(chunks[i].Content) {
			t.Errorf("chunk %d is not valid UTF-8", i)
		}
		if chunks[i].Metadata["char_count"] != 4 {
			t.Errorf("chunk %d char_count = %v, want 4", i, chunks[i].Metadata["char_count"])
		}
	}
}

func TestChunkPages_MetadataForwarding(t *testing.T) {
	chunker, err := NewChunker(1000, 100)
	if err != nil {
		t.Fatal(err)
	}

	pageMeta := map[string]any{
		"ocr_language":       "chi_sim,eng",
		"average_confidence": 0.91,
		"text_blocks":        7,
		"char_count":         9999, // overridden by the chunk-local count
	}
	chunks := chunker.ChunkPages([]PageText{{Page: 1, Text: "hello chunked world", Metadata: pageMeta}})

	if len(chunks) != 1 {
		t.Fatalf("expected 1 chunk, got %d", len(chunks))
	}
	md := chunks[0].Metadata
	if md["ocr_language"] != "chi_sim,eng" {
		t.Errorf("ocr_language not forwarded: %v", md["ocr_language"])
	}
	if md["average_confidence"] != 0.91 {
		t.Errorf("average_confidence not forwarded: %v", md["average_confidence"])
	}
	if md["text_blocks"] != 7 {
		t.Errorf("text_blocks not forwarded: %v", md["text_blocks"])
	}
	if md["char_count"] != 19 {
		t.Errorf("char_count should be chunk-local 19, got %v", md["char_count"])
	}
	if md["word_count"] != 3 {
		t.Errorf("word_count should be chunk-local 3, got %v", md["word_count"])
	}

	// The chunk metadata must not alias the caller's map.
	md["text_blocks"] = 0
	if pageMeta["text_blocks"] != 7 {
		t.Error("chunk metadata aliases the page metadata map")
	}
}

func TestCountWords(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"", 0},
		{"   ", 0},
		{"one", 1},
		{"one two three", 3},
		{"  padded   out  ", 2},
		{"line\nbreaks\tand tabs", 4},
	}

	for _, tt := range tests {
		if got := countWords(tt.text); got != tt.want {
			t.Errorf("countWords(%q) = %d, want %d", tt.text, got, tt.want)
		}
	}
}
