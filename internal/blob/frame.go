package blob

import (
	"errors"
	"fmt"
	"image"
)

// Sentinel colors written into mask frames.
const (
	Foreground uint32 = 0xFF00FF00 // opaque green
	Background uint32 = 0xFF000000 // opaque black
)

// ErrInvalidInput is returned when a frame does not match its declared dimensions.
var ErrInvalidInput = errors.New("invalid input")

// Frame is a width × height grid of packed 0xAARRGGBB pixels stored row-major.
type Frame struct {
	Width  int
	Height int
	Pix    []uint32
}

// NewFrame allocates a frame filled with zero pixels.
func NewFrame(width, height int) Frame {
	return Frame{
		Width:  width,
		Height: height,
		Pix:    make([]uint32, width*height),
	}
}

// Validate checks that the pixel buffer is non-empty and matches Width × Height.
func (f Frame) Validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return fmt.Errorf("%w: frame dimensions %dx%d", ErrInvalidInput, f.Width, f.Height)
	}
	if len(f.Pix) == 0 {
		return fmt.Errorf("%w: empty pixel buffer", ErrInvalidInput)
	}
	if len(f.Pix) != f.Width*f.Height {
		return fmt.Errorf("%w: pixel buffer holds %d values, want %d for %dx%d",
			ErrInvalidInput, len(f.Pix), f.Width*f.Height, f.Width, f.Height)
	}
	return nil
}

// At returns the pixel at (x, y). No bounds checking is performed.
func (f Frame) At(x, y int) uint32 {
	return f.Pix[y*f.Width+x]
}

// Set stores a pixel at (x, y). No bounds checking is performed.
func (f Frame) Set(x, y int, argb uint32) {
	f.Pix[y*f.Width+x] = argb
}

// Clone returns a deep copy of the frame.
func (f Frame) Clone() Frame {
	pix := make([]uint32, len(f.Pix))
	copy(pix, f.Pix)
	return Frame{Width: f.Width, Height: f.Height, Pix: pix}
}

// Bounds returns the frame rectangle anchored at the origin.
func (f Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// Pack builds a 0xAARRGGBB pixel from 8-bit channels.
func Pack(a, r, g, b uint8) uint32 {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// Channels splits a packed pixel into its red, green and blue components.
func Channels(argb uint32) (r, g, b uint8) {
	return uint8(argb >> 16), uint8(argb >> 8), uint8(argb)
}

// Grid is a per-pixel integer map with the same layout as a Frame.
type Grid struct {
	Width  int
	Height int
	Cells  []int
}

// NewGrid allocates a zeroed grid.
func NewGrid(width, height int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Cells:  make([]int, width*height),
	}
}

// At returns the value at (x, y). No bounds checking is performed.
func (g Grid) At(x, y int) int {
	return g.Cells[y*g.Width+x]
}

// Region is an axis-aligned box in frame coordinates.
//
// A Region may extend past the frame edges; it is never clamped.
type Region struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rect converts the region to an image.Rectangle.
func (r Region) Rect() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Center returns the pixel the region was centered on.
func (r Region) Center() image.Point {
	return image.Pt(r.X+r.Width/2, r.Y+r.Height/2)
}

// Overlaps reports whether two regions share interior area.
// Regions that only touch along an edge do not overlap.
func (r Region) Overlaps(o Region) bool {
	if r.Width <= 0 || r.Height <= 0 || o.Width <= 0 || o.Height <= 0 {
		return false
	}
	return r.X < o.X+o.Width && o.X < r.X+r.Width &&
		r.Y < o.Y+o.Height && o.Y < r.Y+r.Height
}
