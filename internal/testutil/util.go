// Package testutil provides synthetic images for tests.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// Gradient returns an opaque w x h image whose red channel follows x and
// whose green channel follows y.
func Gradient(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 0x80,
				A: 0xff,
			})
		}
	}
	return img
}

// Translucent returns a w x h image with half transparent pixels.
func Translucent(w, h int) *image.NRGBA {
	img := Gradient(w, h)
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 0x80
	}
	return img
}

// PNG encodes img.
func PNG(t testing.TB, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

// WritePNG writes img as name into dir and returns the path.
func WritePNG(t testing.TB, dir, name string, img image.Image) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, PNG(t, img), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

// DecodeConfigFile returns the dimensions and format of an image file.
func DecodeConfigFile(t testing.TB, path string) (image.Config, string) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, format, err := image.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	return cfg, format
}
