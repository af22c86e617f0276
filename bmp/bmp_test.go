package bmp

import (
	"path/filepath"
	"testing"

	"pathtracer/imagebuf"
)

func TestWriteReadRoundTrip(t *testing.T) {
	img := imagebuf.NewImage(5, 3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			img.Set(x, y, imagebuf.Pixel(0x01000000|uint32(x)<<16|uint32(y)<<8|uint32(x+y)))
		}
	}

	path := filepath.Join(t.TempDir(), "round_trip.bmp")
	if err := WriteFile(path, img); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}

	if got.Width != img.Width || got.Height != img.Height {
		t.Fatalf("dimensions: got %dx%d, want %dx%d", got.Width, got.Height, img.Width, img.Height)
	}
	for i := range img.Pixels {
		if got.Pixels[i] != img.Pixels[i] {
			t.Fatalf("pixel %d: got %#08x, want %#08x", i, got.Pixels[i], img.Pixels[i])
		}
	}
}
