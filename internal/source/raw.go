package source

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/imaging"
)

// RawSource reads fixed-size rgb24 frames from a byte stream.
type RawSource struct {
	r      io.ReadCloser
	width  int
	height int
	buf    []byte
}

// NewRawSource wraps r, which must yield width × height × 3 bytes per frame.
func NewRawSource(r io.ReadCloser, width, height int) (*RawSource, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: raw frame size %dx%d", blob.ErrInvalidInput, width, height)
	}
	return &RawSource{
		r:      r,
		width:  width,
		height: height,
		buf:    make([]byte, width*height*3),
	}, nil
}

// Next blocks until a whole frame has been read.
//
// A stream that ends cleanly on a frame boundary yields ErrEndOfStream. A
// stream that ends mid-frame or fails yields ErrDevice.
func (s *RawSource) Next(ctx context.Context) (blob.Frame, error) {
	if err := ctx.Err(); err != nil {
		return blob.Frame{}, err
	}

	_, err := io.ReadFull(s.r, s.buf)
	switch {
	case errors.Is(err, io.EOF):
		return blob.Frame{}, ErrEndOfStream
	case errors.Is(err, io.ErrUnexpectedEOF):
		return blob.Frame{}, fmt.Errorf("%w: stream ended mid-frame", ErrDevice)
	case err != nil:
		return blob.Frame{}, fmt.Errorf("%w: %v", ErrDevice, err)
	}

	return imaging.FrameFromRGB24(s.buf, s.width, s.height)
}

// Close closes the underlying stream.
func (s *RawSource) Close() error {
	return s.r.Close()
}
