package folio

// ExtractOptions holds configuration for an extraction request.
type ExtractOptions struct {
	// Page selector string, empty means all pages
	pages string

	// Chunking bounds in code points
	chunkSize    int
	chunkOverlap int

	// Failure policy: skip failing pages with a warning instead of
	// aborting the request
	skipPageErrors bool
}

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		pages:          "",
		chunkSize:      1000,
		chunkOverlap:   100,
		skipPageErrors: false,
	}
}
