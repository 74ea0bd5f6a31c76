package raster

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestEncodePNG_RoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))
	img.SetRGBA(4, 4, color.RGBA{R: 200, G: 10, B: 30, A: 255})

	enc, err := EncodePNG(img)
	if err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}
	if enc.Width != 16 || enc.Height != 9 {
		t.Errorf("Dimensions: got %dx%d, want 16x9", enc.Width, enc.Height)
	}
	if enc.MimeType != "image/png" {
		t.Errorf("MimeType: got %q", enc.MimeType)
	}

	raw, err := base64.StdEncoding.DecodeString(enc.ImageBase64)
	if err != nil {
		t.Fatalf("Payload is not valid base64: %v", err)
	}
	decoded, err := Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("Payload is not a decodable image: %v", err)
	}
	r, g, b, _ := decoded.At(4, 4).RGBA()
	if r>>8 != 200 || g>>8 != 10 || b>>8 != 30 {
		t.Errorf("Pixel did not survive round trip: %d %d %d", r>>8, g>>8, b>>8)
	}
}

func TestSavePNG(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	path := filepath.Join(t.TempDir(), "out.png")

	if err := SavePNG(img, path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	loaded, err := NewCache().Load(path)
	if err != nil {
		t.Fatalf("Saved file did not load back: %v", err)
	}
	if loaded.Bounds().Dx() != 5 {
		t.Errorf("Size mismatch after save: %v", loaded.Bounds())
	}
}

func TestSavePNG_BadPath(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	if err := SavePNG(img, filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("Expected error for unwritable path")
	}
}
