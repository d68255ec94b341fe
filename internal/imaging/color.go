package imaging

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// grayRange is the channel spread below which a sampled color is reported as gray.
const grayRange = 16

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L int `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// ColorResult describes a color and how the detector classifies it.
type ColorResult struct {
	Hex        string   `json:"hex"`        // Hex format "#RRGGBB" (no alpha)
	RGB        RGBColor `json:"rgb"`        // RGB components
	Alpha      uint8    `json:"alpha"`      // Alpha component (0-255)
	HSL        HSLColor `json:"hsl"`        // HSL representation
	Foreground bool     `json:"foreground"` // Matches the detector's target color
	Gray       bool     `json:"gray"`       // Channels lie within a narrow band of each other
}

// DescribeColor reports a packed pixel in several formats along with its
// classification under params.
func DescribeColor(argb uint32, params blob.Params) *ColorResult {
	r, g, b := blob.Channels(argb)
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}

	return &ColorResult{
		Hex:        fmt.Sprintf("#%02X%02X%02X", r, g, b),
		RGB:        RGBColor{R: r, G: g, B: b},
		Alpha:      uint8(argb >> 24),
		HSL:        toHSL(c),
		Foreground: params.IsForeground(argb),
		Gray:       blob.IsGray(argb, grayRange),
	}
}

// SampleColor describes the pixel at (x, y).
func SampleColor(f blob.Frame, x, y int, params blob.Params) (*ColorResult, error) {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		return nil, fmt.Errorf("coordinates (%d,%d) outside frame bounds %dx%d", x, y, f.Width, f.Height)
	}
	return DescribeColor(f.At(x, y), params), nil
}

// ClassifyHex parses a "#RRGGBB" color and describes it as an opaque pixel.
func ClassifyHex(hex string, params blob.Params) (*ColorResult, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return DescribeColor(blob.Pack(255, r, g, b), params), nil
}

// RegionColor averages the pixels of f covered by region. The part of the
// region that lies outside the frame is ignored.
func RegionColor(f blob.Frame, region blob.Region, params blob.Params) (*ColorResult, error) {
	rect := region.Rect().Intersect(f.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("region (%d,%d %dx%d) does not intersect the frame",
			region.X, region.Y, region.Width, region.Height)
	}

	var sr, sg, sb float64
	n := 0
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			r, g, b := blob.Channels(f.At(x, y))
			sr += float64(r)
			sg += float64(g)
			sb += float64(b)
			n++
		}
	}

	avg := blob.Pack(255,
		uint8(math.Round(sr/float64(n))),
		uint8(math.Round(sg/float64(n))),
		uint8(math.Round(sb/float64(n))))
	return DescribeColor(avg, params), nil
}

func toHSL(c colorful.Color) HSLColor {
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}
	return HSLColor{
		H: int(h),
		S: int(s * 100),
		L: int(l * 100),
	}
}
