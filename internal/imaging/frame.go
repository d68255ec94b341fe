package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// FrameFromImage converts any image into a packed, non-premultiplied frame.
func FrameFromImage(img image.Image) blob.Frame {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()
	f := blob.NewFrame(w, h)

	for y := 0; y < h; y++ {
		row := nrgba.Pix[y*nrgba.Stride:]
		for x := 0; x < w; x++ {
			p := row[x*4 : x*4+4]
			f.Pix[y*w+x] = blob.Pack(p[3], p[0], p[1], p[2])
		}
	}
	return f
}

// FrameToImage converts a frame into an NRGBA image anchored at the origin.
func FrameToImage(f blob.Frame) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, f.Width, f.Height))
	for i, px := range f.Pix {
		r, g, b := blob.Channels(px)
		o := i * 4
		img.Pix[o] = r
		img.Pix[o+1] = g
		img.Pix[o+2] = b
		img.Pix[o+3] = uint8(px >> 24)
	}
	return img
}

// FrameFromRGB24 builds an opaque frame from tightly packed 24-bit RGB bytes,
// the layout produced by raw video decoders.
func FrameFromRGB24(data []byte, width, height int) (blob.Frame, error) {
	if width <= 0 || height <= 0 {
		return blob.Frame{}, fmt.Errorf("%w: frame dimensions %dx%d", blob.ErrInvalidInput, width, height)
	}
	if len(data) != width*height*3 {
		return blob.Frame{}, fmt.Errorf("%w: got %d rgb24 bytes, want %d for %dx%d",
			blob.ErrInvalidInput, len(data), width*height*3, width, height)
	}
	f := blob.NewFrame(width, height)
	for i := range f.Pix {
		o := i * 3
		f.Pix[i] = blob.Pack(255, data[o], data[o+1], data[o+2])
	}
	return f, nil
}
