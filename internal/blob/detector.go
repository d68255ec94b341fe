package blob

import "fmt"

// Detector runs detection passes with a fixed parameter set.
//
// The zero value is not usable; create one with New or NewDefault.
type Detector struct {
	params Params
}

// Result holds everything one detection pass produced. All buffers are owned
// by the caller.
type Result struct {
	// Mask has Foreground wherever density exceeded the threshold.
	Mask Frame

	// Classified is the per-pixel color classification before accumulation.
	Classified Frame

	// Density is the accumulated neighbor count per pixel.
	Density Grid

	// Regions are the accepted boxes in scan order. No two overlap.
	Regions []Region
}

// New creates a detector after validating params.
func New(params Params) (*Detector, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Detector{params: params}, nil
}

// NewDefault creates a detector with DefaultParams.
func NewDefault() *Detector {
	return &Detector{params: DefaultParams()}
}

// Params returns a copy of the detector's parameters.
func (d *Detector) Params() Params {
	return d.params
}

// Detect runs classification, accumulation and extraction on one frame.
//
// frame is only read and is not referenced after Detect returns. The returned
// error wraps ErrInvalidInput if the frame is empty or malformed.
func (d *Detector) Detect(frame Frame) (*Result, error) {
	if err := frame.Validate(); err != nil {
		return nil, fmt.Errorf("detect: %w", err)
	}

	classified := d.Classify(frame)
	density := d.Accumulate(classified)
	mask, regions := d.Extract(density)

	return &Result{
		Mask:       mask,
		Classified: classified,
		Density:    density,
		Regions:    regions,
	}, nil
}
