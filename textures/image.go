// Package textures prepares image pixel data for GPU upload.
package textures

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
)

// DecodeRGBA decodes an encoded image (PNG or JPEG) into a tightly packed
// RGBA image whose stride is exactly 4*width bytes. Images with a zero
// dimension are rejected before any further allocation.
func DecodeRGBA(data []byte) (*image.RGBA, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("image has zero dimension: %dx%d", bounds.Dx(), bounds.Dy())
	}

	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*bounds.Dx() && bounds.Min == (image.Point{}) {
		return rgba, nil
	}

	// Re-draw into a zero-origin RGBA so rows are tightly packed.
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return rgba, nil
}

// White returns a width x height opaque white RGBA image, used as the
// fallback texture when no asset is available.
func White(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size: %dx%d", width, height)
	}
	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := range rgba.Pix {
		rgba.Pix[i] = 0xFF
	}
	return rgba, nil
}
