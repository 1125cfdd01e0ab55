package ocr

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"
)

// PrepareImage converts a rasterized page image to grayscale PNG bytes
// for recognition, optionally rescaling it. Tesseract performs better on
// clean grayscale input, and PNG keeps it lossless.
//
// A scale of 1 (or less than or equal to 0) keeps the original
// dimensions.
func PrepareImage(img image.Image, scale float64) ([]byte, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if scale > 0 && scale != 1 {
		width = int(float64(width) * scale)
		height = int(float64(height) * scale)
		if width < 1 {
			width = 1
		}
		if height < 1 {
			height = 1
		}
	}

	gray := image.NewGray(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, bounds, draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, gray); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}
