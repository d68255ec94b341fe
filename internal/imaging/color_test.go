package imaging

import (
	"testing"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// solidFrame creates a frame filled with one packed color
func solidFrame(width, height int, argb uint32) blob.Frame {
	f := blob.NewFrame(width, height)
	for i := range f.Pix {
		f.Pix[i] = argb
	}
	return f
}

func TestSampleColor(t *testing.T) {
	f := solidFrame(10, 10, blob.Pack(255, 255, 128, 64))

	result, err := SampleColor(f, 5, 5, blob.DefaultParams())
	if err != nil {
		t.Fatalf("SampleColor failed: %v", err)
	}

	if result.Hex != "#FF8040" {
		t.Errorf("Hex: got %s, want #FF8040", result.Hex)
	}
	if result.RGB.R != 255 || result.RGB.G != 128 || result.RGB.B != 64 {
		t.Errorf("RGB: got (%d,%d,%d), want (255,128,64)", result.RGB.R, result.RGB.G, result.RGB.B)
	}
	if result.Alpha != 255 {
		t.Errorf("Alpha: got %d, want 255", result.Alpha)
	}
	if result.Foreground {
		t.Error("orange should not be foreground")
	}
}

func TestSampleColor_OutOfBounds(t *testing.T) {
	f := solidFrame(10, 10, 0xFF000000)

	points := [][2]int{{-1, 0}, {0, -1}, {10, 0}, {0, 10}}
	for _, p := range points {
		if _, err := SampleColor(f, p[0], p[1], blob.DefaultParams()); err == nil {
			t.Errorf("SampleColor(%d,%d) should fail", p[0], p[1])
		}
	}
}

func TestDescribeColor_KnownColors(t *testing.T) {
	tests := []struct {
		name       string
		argb       uint32
		wantHex    string
		wantHue    int
		foreground bool
		gray       bool
	}{
		{"lime", blob.Pack(255, 0, 255, 0), "#00FF00", 120, true, false},
		{"dark lime", blob.Pack(255, 50, 160, 40), "#32A028", 115, true, false},
		{"pure red", blob.Pack(255, 255, 0, 0), "#FF0000", 0, false, false},
		{"pure blue", blob.Pack(255, 0, 0, 255), "#0000FF", 240, false, false},
		{"white", blob.Pack(255, 255, 255, 255), "#FFFFFF", 0, false, true},
		{"gray", blob.Pack(255, 128, 128, 128), "#808080", 0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := DescribeColor(tt.argb, blob.DefaultParams())

			if result.Hex != tt.wantHex {
				t.Errorf("Hex: got %s, want %s", result.Hex, tt.wantHex)
			}
			if diff := result.HSL.H - tt.wantHue; diff < -1 || diff > 1 {
				t.Errorf("Hue: got %d, want ~%d", result.HSL.H, tt.wantHue)
			}
			if result.Foreground != tt.foreground {
				t.Errorf("Foreground: got %v, want %v", result.Foreground, tt.foreground)
			}
			if result.Gray != tt.gray {
				t.Errorf("Gray: got %v, want %v", result.Gray, tt.gray)
			}
		})
	}
}

func TestDescribeColor_HSLRanges(t *testing.T) {
	result := DescribeColor(blob.Pack(255, 0, 255, 0), blob.DefaultParams())

	if result.HSL.S != 100 {
		t.Errorf("Saturation: got %d, want 100", result.HSL.S)
	}
	if result.HSL.L != 50 {
		t.Errorf("Lightness: got %d, want 50", result.HSL.L)
	}
}

func TestClassifyHex(t *testing.T) {
	tests := []struct {
		hex        string
		foreground bool
	}{
		{"#00FF00", true},
		{"#50651E", true},
		{"#516550", false},
		{"#506450", false},
	}

	for _, tt := range tests {
		t.Run(tt.hex, func(t *testing.T) {
			result, err := ClassifyHex(tt.hex, blob.DefaultParams())
			if err != nil {
				t.Fatalf("ClassifyHex failed: %v", err)
			}
			if result.Foreground != tt.foreground {
				t.Errorf("Foreground: got %v, want %v", result.Foreground, tt.foreground)
			}
		})
	}
}

func TestClassifyHex_Invalid(t *testing.T) {
	for _, hex := range []string{"", "00FF00", "#00FF", "#GGGGGG"} {
		if _, err := ClassifyHex(hex, blob.DefaultParams()); err == nil {
			t.Errorf("ClassifyHex(%q) should fail", hex)
		}
	}
}

func TestRegionColor(t *testing.T) {
	f := solidFrame(20, 20, blob.Pack(255, 0, 0, 0))
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			f.Set(x, y, blob.Pack(255, 0, 200, 0))
		}
	}

	// Half of the region lies outside the frame and is ignored.
	result, err := RegionColor(f, blob.Region{X: -5, Y: 0, Width: 10, Height: 10}, blob.DefaultParams())
	if err != nil {
		t.Fatalf("RegionColor failed: %v", err)
	}
	if result.Hex != "#00C800" {
		t.Errorf("Hex: got %s, want #00C800", result.Hex)
	}
	if !result.Foreground {
		t.Error("mean color should be foreground")
	}

	result, err = RegionColor(f, blob.Region{X: 5, Y: 0, Width: 10, Height: 1}, blob.DefaultParams())
	if err != nil {
		t.Fatalf("RegionColor failed: %v", err)
	}
	if result.Hex != "#006400" {
		t.Errorf("Hex: got %s, want #006400", result.Hex)
	}
}

func TestRegionColor_Outside(t *testing.T) {
	f := solidFrame(20, 20, 0xFF000000)
	if _, err := RegionColor(f, blob.Region{X: 30, Y: 30, Width: 14, Height: 14}, blob.DefaultParams()); err == nil {
		t.Error("RegionColor should fail for region outside frame")
	}
}
