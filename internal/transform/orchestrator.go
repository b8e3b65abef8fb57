package transform

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"image"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/safiyu/ranthal/internal/imaging"
	"github.com/safiyu/ranthal/internal/logging"
	"github.com/safiyu/ranthal/internal/ocr"
	"github.com/safiyu/ranthal/internal/repository"
	"github.com/safiyu/ranthal/internal/segmenter"
)

// ModelInputSize is the fixed square resolution the segmentation model
// expects. Masks come back at this resolution and are resampled to the
// original image size.
const ModelInputSize = 1024

// Per-channel normalization constants. These are part of the contract
// with the segmentation model; changing them biases every mask.
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// Operation labels recorded in transform history.
const (
	OpExtractText      = "ocr"
	OpRemoveBackground = "remove_bg"
)

const ocrCacheTTL = time.Hour

// ErrHistoryUnavailable is returned when history lookups are requested but
// no repository is configured.
var ErrHistoryUnavailable = errors.New("transform history is not configured")

// HistoryRepository defines the persistence operations used by the
// orchestrator.
type HistoryRepository interface {
	SaveLog(ctx context.Context, log *repository.TransformLog) error
	FindByRequestIDAndUser(ctx context.Context, requestID, userID string) (*repository.TransformLog, error)
}

// Orchestrator composes the codec layer with the external collaborators.
// Cache and history are optional; passing nil disables them.
type Orchestrator struct {
	segmenter  segmenter.Segmenter
	recognizer ocr.Recognizer
	cache      Cache
	history    HistoryRepository
	logger     *zap.Logger
}

// NewOrchestrator constructs the transform orchestrator.
func NewOrchestrator(seg segmenter.Segmenter, rec ocr.Recognizer, cache Cache, history HistoryRepository, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		segmenter:  seg,
		recognizer: rec,
		cache:      cache,
		history:    history,
		logger:     logger.Named("transform"),
	}
}

// ModelReady reports whether the segmentation collaborator is reachable.
func (o *Orchestrator) ModelReady() bool {
	return o.segmenter != nil && o.segmenter.Ready()
}

// ExtractText decodes the upload, runs text recognition, and returns the
// recognized text trimmed of surrounding whitespace. An empty result is a
// valid outcome, not an error.
func (o *Orchestrator) ExtractText(ctx context.Context, userID string, upload []byte) (string, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(o.logger, "transform.extract_text", requestID)
	start := time.Now()
	hash := sha1Hex(upload)

	if text, ok := o.cachedText(ctx, hash); ok {
		opLogger.Debug("ocr cache hit", zap.String("sha1", hash))
		o.saveHistory(ctx, requestID, userID, OpExtractText, hash, true, start, "cache_hit")
		return text, nil
	}

	img, _, err := imaging.Decode(upload)
	if err != nil {
		return "", o.fail(ctx, opLogger, requestID, userID, OpExtractText, hash, start, KindDecode, err)
	}
	rgb := imaging.ToRGB(img)

	raw, err := o.recognizer.RecognizeText(ctx, rgb)
	if err != nil {
		return "", o.fail(ctx, opLogger, requestID, userID, OpExtractText, hash, start, KindInference, err)
	}
	text := strings.TrimSpace(raw)

	o.storeText(ctx, opLogger, hash, text)
	o.saveHistory(ctx, requestID, userID, OpExtractText, hash, true, start, "")
	return text, nil
}

// RemoveBackground decodes the upload, obtains a saliency map from the
// segmentation model, and returns the original-size raster with the mask
// substituted as its alpha channel, encoded as PNG.
func (o *Orchestrator) RemoveBackground(ctx context.Context, userID string, upload []byte) ([]byte, error) {
	requestID := uuid.NewString()
	opLogger := logging.WithOperation(o.logger, "transform.remove_background", requestID)
	start := time.Now()
	hash := sha1Hex(upload)

	img, _, err := imaging.Decode(upload)
	if err != nil {
		return nil, o.fail(ctx, opLogger, requestID, userID, OpRemoveBackground, hash, start, KindDecode, err)
	}
	rgb := imaging.ToRGB(img)
	originalWidth, originalHeight := rgb.Bounds().Dx(), rgb.Bounds().Dy()

	modelInput := imaging.Resize(rgb, ModelInputSize, ModelInputSize)
	tensor := buildTensor(modelInput)

	saliency, err := o.segmenter.Segment(ctx, tensor, ModelInputSize, ModelInputSize)
	if err != nil {
		return nil, o.fail(ctx, opLogger, requestID, userID, OpRemoveBackground, hash, start, KindInference, err)
	}

	mask, err := imaging.GrayFromFloats(saliency, ModelInputSize, ModelInputSize)
	if err != nil {
		return nil, o.fail(ctx, opLogger, requestID, userID, OpRemoveBackground, hash, start, KindInference, err)
	}
	resized := imaging.ResizeGray(mask, originalWidth, originalHeight)

	composited, err := imaging.CompositeAlpha(rgb, resized)
	if err != nil {
		return nil, o.fail(ctx, opLogger, requestID, userID, OpRemoveBackground, hash, start, KindEncode, err)
	}
	data, err := imaging.EncodePNG(composited)
	if err != nil {
		return nil, o.fail(ctx, opLogger, requestID, userID, OpRemoveBackground, hash, start, KindEncode, err)
	}

	o.saveHistory(ctx, requestID, userID, OpRemoveBackground, hash, true, start, "")
	return data, nil
}

// GetHistory retrieves a transform log scoped to its owner.
func (o *Orchestrator) GetHistory(ctx context.Context, userID, requestID string) (*repository.TransformLog, error) {
	if o.history == nil {
		return nil, ErrHistoryUnavailable
	}
	return o.history.FindByRequestIDAndUser(ctx, requestID, userID)
}

// HistoryEnabled reports whether a history repository is configured.
func (o *Orchestrator) HistoryEnabled() bool {
	return o.history != nil
}

func (o *Orchestrator) fail(ctx context.Context, opLogger *zap.Logger, requestID, userID, op, hash string, start time.Time, kind Kind, err error) error {
	werr := &Error{Kind: kind, Err: err}
	opLogger.Error("transform failed", zap.String("kind", kind.String()), zap.Error(werr))
	o.saveHistory(ctx, requestID, userID, op, hash, false, start, werr.Error())
	return werr
}

func (o *Orchestrator) saveHistory(ctx context.Context, requestID, userID, op, hash string, success bool, start time.Time, detail string) {
	if o.history == nil {
		return
	}
	log := &repository.TransformLog{
		RequestID:  requestID,
		UserID:     userID,
		Operation:  op,
		SourceSHA1: hash,
		Success:    success,
		DurationMs: time.Since(start).Milliseconds(),
		Detail:     detail,
		CreatedAt:  time.Now().UTC(),
	}
	if err := o.history.SaveLog(ctx, log); err != nil {
		logging.WithOperation(o.logger, "transform.save_history", requestID).Warn("failed to persist transform log", zap.Error(err))
	}
}

func (o *Orchestrator) cachedText(ctx context.Context, hash string) (string, bool) {
	if o.cache == nil {
		return "", false
	}
	value, err := o.cache.Get(ctx, ocrCacheKey(hash))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			o.logger.Warn("ocr cache read failed", zap.Error(err))
		}
		return "", false
	}
	return value, true
}

func (o *Orchestrator) storeText(ctx context.Context, opLogger *zap.Logger, hash, text string) {
	if o.cache == nil {
		return
	}
	if err := o.cache.Set(ctx, ocrCacheKey(hash), text, ocrCacheTTL); err != nil {
		opLogger.Warn("ocr cache write failed", zap.Error(err))
	}
}

func ocrCacheKey(hash string) string {
	return "ocr:" + hash
}

func sha1Hex(data []byte) string {
	sum := sha1.Sum(data)
	return hex.EncodeToString(sum[:])
}

// buildTensor lays the raster out as a CHW float32 volume, scaling samples
// to [0,1] and applying the per-channel normalization the model was
// trained with.
func buildTensor(img *image.NRGBA) []float32 {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	plane := width * height

	tensor := make([]float32, 3*plane)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			off := img.PixOffset(bounds.Min.X+x, bounds.Min.Y+y)
			idx := y*width + x
			tensor[idx] = (float32(img.Pix[off])/255 - channelMean[0]) / channelStd[0]
			tensor[plane+idx] = (float32(img.Pix[off+1])/255 - channelMean[1]) / channelStd[1]
			tensor[2*plane+idx] = (float32(img.Pix[off+2])/255 - channelMean[2]) / channelStd[2]
		}
	}
	return tensor
}
