package blob

// Extract scans the density grid row-major and returns the output mask and the
// accepted regions.
//
// A cell whose density exceeds DensityThreshold is painted Foreground and
// proposes a BoxSize × BoxSize region centered on it. The proposal is dropped
// if it overlaps any region accepted earlier in the scan, so the topmost, then
// leftmost, hit of a cluster always wins. Every other cell is painted
// Background.
func (d *Detector) Extract(grid Grid) (Frame, []Region) {
	mask := NewFrame(grid.Width, grid.Height)
	regions := make([]Region, 0)
	half := d.params.BoxSize / 2

	for y := 0; y < grid.Height; y++ {
		row := y * grid.Width
		for x := 0; x < grid.Width; x++ {
			if grid.Cells[row+x] <= d.params.DensityThreshold {
				mask.Pix[row+x] = Background
				continue
			}
			mask.Pix[row+x] = Foreground

			candidate := Region{
				X:      x - half,
				Y:      y - half,
				Width:  d.params.BoxSize,
				Height: d.params.BoxSize,
			}
			if !overlapsAny(candidate, regions) {
				regions = append(regions, candidate)
			}
		}
	}

	return mask, regions
}

// overlapsAny checks a candidate against accepted regions only.
func overlapsAny(candidate Region, accepted []Region) bool {
	for _, r := range accepted {
		if candidate.Overlaps(r) {
			return true
		}
	}
	return false
}
