package ocr

import (
	"context"
	"fmt"
	"image"

	"github.com/otiai10/gosseract/v2"
	"go.uber.org/zap"

	"github.com/safiyu/ranthal/internal/imaging"
)

// TesseractRecognizer runs OCR through the local Tesseract installation.
// A gosseract client is not safe for concurrent use, so one is created
// per call; requests never share a client.
type TesseractRecognizer struct {
	clientFactory func() *gosseract.Client
	languages     []string
	logger        *zap.Logger
}

// NewTesseractRecognizer constructs the Tesseract adapter. An empty
// language list leaves the engine default in place.
func NewTesseractRecognizer(languages []string, logger *zap.Logger) *TesseractRecognizer {
	return &TesseractRecognizer{
		clientFactory: gosseract.NewClient,
		languages:     languages,
		logger:        logger.Named("tesseract"),
	}
}

// RecognizeText hands the raster to Tesseract and returns its raw text.
func (r *TesseractRecognizer) RecognizeText(ctx context.Context, img image.Image) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	data, err := imaging.EncodePNG(img)
	if err != nil {
		return "", err
	}

	client := r.clientFactory()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}
	if len(r.languages) > 0 {
		if err := client.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
