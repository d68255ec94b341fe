package blob

// Accumulate builds the density grid for a classified mask.
//
// Every foreground pixel that lies strictly inside the Radius border acts as a
// source and adds one to each foreground pixel in its window. Overlapping
// windows add up, so the center of a solid cluster scores higher than its rim.
// Border pixels never act as sources but can still be counted by an interior
// source.
//
// The returned grid is freshly allocated; mask is only read.
func (d *Detector) Accumulate(mask Frame) Grid {
	w, h := mask.Width, mask.Height
	r := d.params.Radius
	grid := NewGrid(w, h)

	for y := r + 1; y < h-r; y++ {
		row := y * w
		for x := r + 1; x < w-r; x++ {
			if mask.Pix[row+x] != Foreground {
				continue
			}
			for wy := y - r; wy < y+r; wy++ {
				off := wy * w
				for wx := x - r; wx < x+r; wx++ {
					if mask.Pix[off+wx] == Foreground {
						grid.Cells[off+wx]++
					}
				}
			}
		}
	}

	return grid
}
