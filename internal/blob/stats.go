package blob

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes one detection pass.
type Stats struct {
	// ForegroundPixels is the number of pixels that matched the target color.
	ForegroundPixels int `json:"foreground_pixels"`

	// Coverage is ForegroundPixels as a percentage of the frame (0-100).
	Coverage float64 `json:"coverage"`

	// HotPixels is the number of cells whose density exceeded the threshold.
	HotPixels int `json:"hot_pixels"`

	// MeanDensity and StdDevDensity are computed over non-zero density cells.
	MeanDensity   float64 `json:"mean_density"`
	StdDevDensity float64 `json:"stddev_density"`

	// MaxDensity is the highest density anywhere in the frame.
	MaxDensity int `json:"max_density"`

	// Regions is the number of accepted regions.
	Regions int `json:"regions"`
}

// Summarize computes Stats for a result produced by this detector.
func (d *Detector) Summarize(res *Result) Stats {
	s := Stats{Regions: len(res.Regions)}

	for _, px := range res.Classified.Pix {
		if px == Foreground {
			s.ForegroundPixels++
		}
	}
	if n := len(res.Classified.Pix); n > 0 {
		s.Coverage = float64(s.ForegroundPixels) / float64(n) * 100
	}

	nonZero := make([]float64, 0)
	for _, v := range res.Density.Cells {
		if v == 0 {
			continue
		}
		nonZero = append(nonZero, float64(v))
		if v > d.params.DensityThreshold {
			s.HotPixels++
		}
	}
	if len(nonZero) == 0 {
		return s
	}

	s.MaxDensity = int(floats.Max(nonZero))
	if len(nonZero) == 1 {
		// the unbiased estimator is undefined for a single sample
		s.MeanDensity = nonZero[0]
		return s
	}
	s.MeanDensity, s.StdDevDensity = stat.MeanStdDev(nonZero, nil)
	return s
}
