package segmenter

import "context"

// Segmenter is the contract with the external segmentation model. The
// tensor is a per-channel normalized CHW float32 volume; the returned
// saliency map holds one foreground likelihood in [0,1] per pixel at the
// same spatial resolution.
type Segmenter interface {
	Segment(ctx context.Context, tensor []float32, width, height int) ([]float32, error)
	// Ready reports whether the model is reachable, for health checks.
	Ready() bool
}
