package imaging

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func TestPNGRoundTripIsPixelExact(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7 % 256)
	}

	data, err := EncodePNG(src)
	if err != nil {
		t.Fatalf("encode failed: %v", err)
	}

	decoded, format, err := Decode(data)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if format != "png" {
		t.Fatalf("expected png, got %s", format)
	}

	got, ok := decoded.(*image.NRGBA)
	if !ok {
		t.Fatalf("expected *image.NRGBA, got %T", decoded)
	}
	if !bytes.Equal(got.Pix, src.Pix) {
		t.Fatal("round-tripped pixels differ")
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := Decode([]byte("definitely not an image")); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestToRGBDropsAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 40})
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 0})

	rgb := ToRGB(src)
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			if a := rgb.NRGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha = %d, want 255", x, y, a)
			}
		}
	}
	if got := rgb.NRGBAAt(1, 1); got.R != 200 || got.G != 100 || got.B != 50 {
		t.Fatalf("color samples changed: %+v", got)
	}
}

func TestResizeDimensions(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 10, 20))

	up := Resize(src, 100, 40)
	if b := up.Bounds(); b.Dx() != 100 || b.Dy() != 40 {
		t.Fatalf("unexpected bounds %v", b)
	}

	down := Resize(up, 10, 20)
	if b := down.Bounds(); b.Dx() != 10 || b.Dy() != 20 {
		t.Fatalf("unexpected bounds %v", b)
	}
}

func TestResizeUniformImageStaysUniform(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 120
		src.Pix[i+1] = 130
		src.Pix[i+2] = 140
		src.Pix[i+3] = 255
	}

	dst := Resize(src, 3, 5)
	for y := 0; y < 5; y++ {
		for x := 0; x < 3; x++ {
			if got := dst.NRGBAAt(x, y); got.R != 120 || got.G != 130 || got.B != 140 {
				t.Fatalf("pixel (%d,%d) = %+v", x, y, got)
			}
		}
	}
}

func TestGrayFromFloatsScalesAndClips(t *testing.T) {
	mask, err := GrayFromFloats([]float32{0, 0.5, 1.0, 1.5, -0.5, 0.25}, 3, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []uint8{0, 127, 255, 255, 0, 63}
	for i, w := range want {
		if mask.Pix[i] != w {
			t.Fatalf("pix[%d] = %d, want %d", i, mask.Pix[i], w)
		}
	}
}

func TestGrayFromFloatsLengthMismatch(t *testing.T) {
	if _, err := GrayFromFloats([]float32{0, 1}, 3, 2); err == nil {
		t.Fatal("expected length error")
	}
}

func TestCompositeAlphaSubstitutes(t *testing.T) {
	rgb := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(rgb.Pix); i += 4 {
		rgb.Pix[i] = 9
		rgb.Pix[i+1] = 8
		rgb.Pix[i+2] = 7
		rgb.Pix[i+3] = 255
	}
	mask := image.NewGray(image.Rect(0, 0, 2, 2))
	mask.Pix = []uint8{0, 64, 128, 255}

	out, err := CompositeAlpha(rgb, mask)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	wantAlpha := []uint8{0, 64, 128, 255}
	i := 0
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			got := out.NRGBAAt(x, y)
			if got.A != wantAlpha[i] {
				t.Fatalf("pixel (%d,%d) alpha = %d, want %d", x, y, got.A, wantAlpha[i])
			}
			if got.R != 9 || got.G != 8 || got.B != 7 {
				t.Fatalf("pixel (%d,%d) color changed: %+v", x, y, got)
			}
			i++
		}
	}
}

func TestCompositeAlphaSizeMismatch(t *testing.T) {
	rgb := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	mask := image.NewGray(image.Rect(0, 0, 3, 2))
	if _, err := CompositeAlpha(rgb, mask); err == nil {
		t.Fatal("expected size mismatch error")
	}
}
