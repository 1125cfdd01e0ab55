// Package chunk splits per-page document text into bounded, overlapping
// chunks for downstream retrieval and LLM workflows.
//
// The [Chunker] consumes ordered [PageText] records (one per processed
// page) and emits [Chunk] values of at most a configured number of
// characters, with a configured overlap repeated between consecutive
// chunks of the same page:
//
//	chunker, err := chunk.NewChunker(1000, 100)
//	if err != nil {
//	    // handle error
//	}
//	chunks := chunker.ChunkPages(pages)
//	summary := chunk.Summarize(chunks)
//
// Sizes and offsets are measured in Unicode code points, never bytes, so
// chunking is safe for multi-byte scripts. Page attribution and auxiliary
// page metadata are carried through on every chunk, along with chunk-local
// character and word counts.
package chunk
