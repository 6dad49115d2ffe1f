package openai

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png" // register PNG decoder

	"github.com/nfnt/resize"
)

const (
	// maxVisionWidth bounds what gets sent to the vision model; larger
	// images cost tokens without improving descriptions.
	maxVisionWidth = 1024
	jpegQuality    = 85
)

// prepareImage re-encodes an image as JPEG, downscaling to maxWidth
// with Lanczos3 when the original is wider. Aspect ratio is preserved.
func prepareImage(data []byte, maxWidth, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if maxWidth > 0 && bounds.Dx() > maxWidth {
		height := uint(float64(bounds.Dy()) / float64(bounds.Dx()) * float64(maxWidth))
		img = resize.Resize(uint(maxWidth), height, img, resize.Lanczos3)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("encode to jpeg: %w", err)
	}
	return buf.Bytes(), nil
}
