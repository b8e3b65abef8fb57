package ocr

import (
	"context"
	"image"
)

// Recognizer is the contract with the text-recognition engine: it gets
// RGB pixels and its text is trusted as-is.
type Recognizer interface {
	RecognizeText(ctx context.Context, img image.Image) (string, error)
}
