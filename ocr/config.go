package ocr

// EngineConfig holds configuration for the OCR extraction engine.
type EngineConfig struct {
	// Languages are Tesseract language codes, tried together, e.g.
	// "chi_sim", "eng". At least one is required.
	Languages []string

	// DPI used when rasterizing pages before recognition.
	// Default: 200
	DPI float64

	// Scale applied to the rasterized image before recognition.
	// Default: 1 (no scaling)
	Scale float64
}

// DefaultEngineConfig returns the default engine configuration:
// simplified Chinese plus English at 200 DPI.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Languages: []string{"chi_sim", "eng"},
		DPI:       200,
		Scale:     1,
	}
}
