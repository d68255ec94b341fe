package imaging

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// CropResult contains a cropped region encoded as PNG.
type CropResult struct {
	EncodedImage

	// Bounds is the part of the region that was inside the frame.
	Bounds blob.Region `json:"bounds"`
}

// CropRegion extracts the part of region that lies inside the frame.
//
// Regions near the frame edge extend past it; only the visible part is
// returned. A region entirely outside the frame is an error.
func CropRegion(f blob.Frame, region blob.Region, scale float64) (*CropResult, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}
	rect := region.Rect().Intersect(f.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("crop region (%d,%d %dx%d) outside frame bounds %dx%d",
			region.X, region.Y, region.Width, region.Height, f.Width, f.Height)
	}

	cropped := imaging.Crop(FrameToImage(f), rect)

	enc, err := EncodePNG(cropped, scale)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		EncodedImage: *enc,
		Bounds: blob.Region{
			X:      rect.Min.X,
			Y:      rect.Min.Y,
			Width:  rect.Dx(),
			Height: rect.Dy(),
		},
	}, nil
}
