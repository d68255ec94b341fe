package blob

import "fmt"

// Default detection parameters. They were tuned empirically for a lime green
// target under indoor lighting.
const (
	DefaultMaxRed           = 80
	DefaultMinGreen         = 100
	DefaultMaxBlue          = 80
	DefaultRadius           = 5
	DefaultDensityThreshold = 40
	DefaultBoxSize          = 14
)

// Params holds every tunable of a detection pass.
type Params struct {
	// MaxRed is the highest red value (inclusive) a foreground pixel may have.
	MaxRed uint8 `json:"max_red"`

	// MinGreen is the green value a foreground pixel must exceed (exclusive).
	MinGreen uint8 `json:"min_green"`

	// MaxBlue is the highest blue value (inclusive) a foreground pixel may have.
	MaxBlue uint8 `json:"max_blue"`

	// Radius sets the density window. A source at (x, y) scans columns
	// x-Radius .. x+Radius-1 and rows y-Radius .. y+Radius-1, and only pixels
	// strictly more than Radius away from the top and left edges (and strictly
	// inside Radius of the bottom and right edges) act as sources.
	Radius int `json:"radius"`

	// DensityThreshold is the density a cell must exceed to become a hit.
	DensityThreshold int `json:"density_threshold"`

	// BoxSize is the side length of every proposed region.
	BoxSize int `json:"box_size"`
}

// DefaultParams returns the lime green detector configuration.
func DefaultParams() Params {
	return Params{
		MaxRed:           DefaultMaxRed,
		MinGreen:         DefaultMinGreen,
		MaxBlue:          DefaultMaxBlue,
		Radius:           DefaultRadius,
		DensityThreshold: DefaultDensityThreshold,
		BoxSize:          DefaultBoxSize,
	}
}

// Validate rejects parameter sets that cannot drive a detection pass.
func (p Params) Validate() error {
	if p.Radius <= 0 {
		return fmt.Errorf("%w: radius must be positive, got %d", ErrInvalidInput, p.Radius)
	}
	if p.BoxSize <= 0 {
		return fmt.Errorf("%w: box size must be positive, got %d", ErrInvalidInput, p.BoxSize)
	}
	if p.DensityThreshold < 0 {
		return fmt.Errorf("%w: density threshold must not be negative, got %d", ErrInvalidInput, p.DensityThreshold)
	}
	return nil
}
