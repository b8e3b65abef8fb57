package imaging

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	// Accept the common raster containers on decode.
	_ "image/gif"
	_ "image/jpeg"

	"golang.org/x/image/draw"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Decode parses uploaded bytes into an in-memory raster. The container
// format is whatever the registered decoders recognize.
func Decode(data []byte) (image.Image, string, error) {
	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("decode image: %w", err)
	}
	return img, format, nil
}

// ToRGB flattens any raster to the canonical representation: an NRGBA
// grid with the alpha plane forced fully opaque. Existing alpha is
// dropped, not blended.
func ToRGB(img image.Image) *image.NRGBA {
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		dst.Pix[i] = 0xFF
	}
	return dst
}

// Resize scales a raster to the target size using bilinear interpolation.
// The same kernel serves both directions: fitting the model input and
// resampling a model-resolution mask back up.
func Resize(src image.Image, width, height int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// ResizeGray scales a single-channel mask with the same bilinear kernel.
func ResizeGray(src *image.Gray, width, height int) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// GrayFromFloats converts a saliency map in [0,1] to an 8-bit mask,
// scaling by 255 and clipping.
func GrayFromFloats(values []float32, width, height int) (*image.Gray, error) {
	if len(values) != width*height {
		return nil, fmt.Errorf("saliency map has %d values, want %d", len(values), width*height)
	}
	mask := image.NewGray(image.Rect(0, 0, width, height))
	for i, v := range values {
		scaled := v * 255
		if scaled < 0 {
			scaled = 0
		} else if scaled > 255 {
			scaled = 255
		}
		mask.Pix[i] = uint8(scaled)
	}
	return mask, nil
}

// CompositeAlpha attaches the mask as the raster's alpha channel. This is
// direct substitution: whatever alpha the raster carried is overwritten.
func CompositeAlpha(rgb *image.NRGBA, mask *image.Gray) (*image.NRGBA, error) {
	rb, mb := rgb.Bounds(), mask.Bounds()
	if rb.Dx() != mb.Dx() || rb.Dy() != mb.Dy() {
		return nil, fmt.Errorf("mask size %dx%d does not match raster %dx%d", mb.Dx(), mb.Dy(), rb.Dx(), rb.Dy())
	}

	out := image.NewNRGBA(image.Rect(0, 0, rb.Dx(), rb.Dy()))
	for y := 0; y < rb.Dy(); y++ {
		srcOff := rgb.PixOffset(rb.Min.X, rb.Min.Y+y)
		copy(out.Pix[y*out.Stride:y*out.Stride+rb.Dx()*4], rgb.Pix[srcOff:srcOff+rb.Dx()*4])
		maskOff := mask.PixOffset(mb.Min.X, mb.Min.Y+y)
		for x := 0; x < rb.Dx(); x++ {
			out.Pix[y*out.Stride+x*4+3] = mask.Pix[maskOff+x]
		}
	}
	return out, nil
}

// EncodePNG serializes a raster losslessly with its alpha channel intact.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
