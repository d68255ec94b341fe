package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// DefaultPanelGap is the horizontal space between the original and mask panels.
const DefaultPanelGap = 10

// OverlayOptions controls how RenderOverlay composes its output.
type OverlayOptions struct {
	// Gap is the number of pixels between the two panels. Negative means none.
	Gap int

	// BoxColor is the outline color, "#RRGGBB" or "#RRGGBBAA". Empty means red.
	BoxColor string

	// Labels draws each region's index next to its outline.
	Labels bool
}

// DefaultOverlayOptions returns red outlines, a 10px gap, and no labels.
func DefaultOverlayOptions() OverlayOptions {
	return OverlayOptions{Gap: DefaultPanelGap, BoxColor: "#FF0000"}
}

// RenderOverlay places original and mask side by side and outlines every
// region on the original panel. Outlines are clipped to that panel.
func RenderOverlay(original, mask blob.Frame, regions []blob.Region, opts OverlayOptions) (*image.NRGBA, error) {
	if err := original.Validate(); err != nil {
		return nil, fmt.Errorf("original frame: %w", err)
	}
	if err := mask.Validate(); err != nil {
		return nil, fmt.Errorf("mask frame: %w", err)
	}
	if original.Width != mask.Width || original.Height != mask.Height {
		return nil, fmt.Errorf("%w: mask %dx%d does not match frame %dx%d", blob.ErrInvalidInput,
			mask.Width, mask.Height, original.Width, original.Height)
	}

	gap := opts.Gap
	if gap < 0 {
		gap = 0
	}
	boxColor := color.RGBA{255, 0, 0, 255}
	if opts.BoxColor != "" {
		c, err := parseHexColor(opts.BoxColor)
		if err != nil {
			return nil, fmt.Errorf("%w: box color %q: %v", blob.ErrInvalidInput, opts.BoxColor, err)
		}
		boxColor = c
	}

	w, h := original.Width, original.Height
	canvas := imaging.New(2*w+gap, h, color.Black)
	canvas = imaging.Paste(canvas, FrameToImage(original), image.Pt(0, 0))
	canvas = imaging.Paste(canvas, FrameToImage(mask), image.Pt(w+gap, 0))

	panel := canvas.SubImage(image.Rect(0, 0, w, h)).(*image.NRGBA)
	for i, r := range regions {
		drawOutline(panel, r.Rect(), boxColor)
		if opts.Labels {
			drawLabel(panel, r.X+2, r.Y+r.Height-2, strconv.Itoa(i), boxColor)
		}
	}

	return canvas, nil
}

// EncodedImage is a PNG image encoded as base64.
type EncodedImage struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// EncodePNG scales img by scale (1.0 keeps its size) and encodes it as base64 PNG.
func EncodePNG(img image.Image, scale float64) (*EncodedImage, error) {
	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(img.Bounds().Dx()) * scale)
		newHeight := int(float64(img.Bounds().Dy()) * scale)
		if newWidth < 1 || newHeight < 1 {
			return nil, fmt.Errorf("scale %.3f collapses %dx%d image", scale, img.Bounds().Dx(), img.Bounds().Dy())
		}
		// Nearest neighbour keeps mask pixels binary.
		img = imaging.Resize(img, newWidth, newHeight, imaging.NearestNeighbor)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	return &EncodedImage{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// drawOutline draws a 1px rectangle covering columns Min.X..Max.X and rows
// Min.Y..Max.Y inclusive, clipped to img.
func drawOutline(img *image.NRGBA, r image.Rectangle, c color.Color) {
	b := img.Bounds()
	set := func(x, y int) {
		if image.Pt(x, y).In(b) {
			img.Set(x, y, c)
		}
	}
	for x := r.Min.X; x <= r.Max.X; x++ {
		set(x, r.Min.Y)
		set(x, r.Max.Y)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		set(r.Min.X, y)
		set(r.Max.X, y)
	}
}

// drawLabel writes text with its baseline at (x, y).
func drawLabel(dst draw.Image, x, y int, text string, c color.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

// parseHexColor parses a hex color string like "#FF0000" or "#FF000080"
func parseHexColor(hex string) (color.RGBA, error) {
	if len(hex) == 0 {
		return color.RGBA{}, fmt.Errorf("empty color string")
	}
	if hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint8 = 0, 0, 0, 255

	switch len(hex) {
	case 6:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 16)
		g = uint8(val >> 8)
		b = uint8(val)
	case 8:
		val, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return color.RGBA{}, err
		}
		r = uint8(val >> 24)
		g = uint8(val >> 16)
		b = uint8(val >> 8)
		a = uint8(val)
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color length")
	}

	return color.RGBA{R: r, G: g, B: b, A: a}, nil
}
