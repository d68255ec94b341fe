package blob

// IsForeground reports whether a packed pixel matches the target color.
func (p Params) IsForeground(argb uint32) bool {
	r, g, b := Channels(argb)
	return r <= p.MaxRed && g > p.MinGreen && b <= p.MaxBlue
}

// Classify maps a packed pixel to Foreground or Background.
func (p Params) Classify(argb uint32) uint32 {
	if p.IsForeground(argb) {
		return Foreground
	}
	return Background
}

// Classify builds a fresh mask frame from src. src is not modified.
func (d *Detector) Classify(src Frame) Frame {
	mask := Frame{
		Width:  src.Width,
		Height: src.Height,
		Pix:    make([]uint32, len(src.Pix)),
	}
	for i, px := range src.Pix {
		mask.Pix[i] = d.params.Classify(px)
	}
	return mask
}

// IsGray reports whether the red, green and blue channels all sit within
// spread of each other. The red-green pair is compared inclusively, the other
// two pairs exclusively.
func IsGray(argb uint32, spread int) bool {
	r, g, b := Channels(argb)
	rg := absInt(int(r) - int(g))
	rb := absInt(int(r) - int(b))
	gb := absInt(int(g) - int(b))
	return rg <= spread && rb < spread && gb < spread
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
