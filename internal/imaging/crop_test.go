package imaging

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

func TestCropRegion(t *testing.T) {
	f := solidFrame(100, 100, blob.Pack(255, 0, 255, 0))

	result, err := CropRegion(f, blob.Region{X: 20, Y: 30, Width: 14, Height: 14}, 1.0)
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}

	if result.Width != 14 || result.Height != 14 {
		t.Errorf("dimensions: got %dx%d, want 14x14", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.Bounds != (blob.Region{X: 20, Y: 30, Width: 14, Height: 14}) {
		t.Errorf("Bounds: got %+v", result.Bounds)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode png: %v", err)
	}
	r, g, b, _ := img.At(7, 7).RGBA()
	if r>>8 != 0 || g>>8 != 255 || b>>8 != 0 {
		t.Errorf("center color: got (%d,%d,%d), want (0,255,0)", r>>8, g>>8, b>>8)
	}
}

func TestCropRegion_ClipsToFrame(t *testing.T) {
	f := solidFrame(50, 40, 0xFF000000)

	result, err := CropRegion(f, blob.Region{X: -7, Y: 33, Width: 14, Height: 14}, 1.0)
	if err != nil {
		t.Fatalf("CropRegion failed: %v", err)
	}

	want := blob.Region{X: 0, Y: 33, Width: 7, Height: 7}
	if result.Bounds != want {
		t.Errorf("Bounds: got %+v, want %+v", result.Bounds, want)
	}
	if result.Width != 7 || result.Height != 7 {
		t.Errorf("dimensions: got %dx%d, want 7x7", result.Width, result.Height)
	}
}

func TestCropRegion_WithScale(t *testing.T) {
	f := solidFrame(100, 100, 0xFF000000)

	result, err := CropRegion(f, blob.Region{X: 10, Y: 10, Width: 14, Height: 14}, 2.0)
	if err != nil {
		t.Fatalf("CropRegion with scale failed: %v", err)
	}
	if result.Width != 28 || result.Height != 28 {
		t.Errorf("scaled dimensions: got %dx%d, want 28x28", result.Width, result.Height)
	}
}

func TestCropRegion_Errors(t *testing.T) {
	f := solidFrame(50, 50, 0xFF000000)

	tests := []struct {
		name   string
		frame  blob.Frame
		region blob.Region
	}{
		{"outside", f, blob.Region{X: 60, Y: 0, Width: 14, Height: 14}},
		{"touching edge", f, blob.Region{X: -14, Y: 0, Width: 14, Height: 14}},
		{"empty frame", blob.Frame{}, blob.Region{X: 0, Y: 0, Width: 14, Height: 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := CropRegion(tt.frame, tt.region, 1.0); err == nil {
				t.Error("CropRegion should fail")
			}
		})
	}
}
