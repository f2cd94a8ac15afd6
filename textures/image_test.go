package textures

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func TestDecodeRGBA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.Set(0, 0, color.NRGBA{R: 255, A: 255})
	src.Set(2, 1, color.NRGBA{G: 255, A: 255})

	rgba, err := DecodeRGBA(encodePNG(t, src))
	if err != nil {
		t.Fatalf("DecodeRGBA: %v", err)
	}

	if got := rgba.Bounds().Size(); got != (image.Point{X: 3, Y: 2}) {
		t.Errorf("size: expected 3x2, got %v", got)
	}
	if rgba.Stride != 4*3 {
		t.Errorf("stride: expected %d, got %d", 4*3, rgba.Stride)
	}
	if len(rgba.Pix) != 4*3*2 {
		t.Errorf("pix length: expected %d, got %d", 4*3*2, len(rgba.Pix))
	}

	r, _, _, a := rgba.At(0, 0).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (0,0): expected opaque red, got %v", rgba.At(0, 0))
	}
}

func TestDecodeRGBARejectsGarbage(t *testing.T) {
	if _, err := DecodeRGBA([]byte("not an image")); err == nil {
		t.Error("expected error for undecodable data")
	}
}

func TestWhite(t *testing.T) {
	img, err := White(2, 2)
	if err != nil {
		t.Fatalf("White: %v", err)
	}
	for i, p := range img.Pix {
		if p != 0xFF {
			t.Fatalf("byte %d: expected 0xFF, got %#x", i, p)
		}
	}

	if _, err := White(0, 2); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := White(2, -1); err == nil {
		t.Error("expected error for negative height")
	}
}
