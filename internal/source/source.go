// Package source supplies frames to the detection loop.
//
// Every Source hands out frames of an agreed size. A frame that does not
// match is reported as blob.ErrInvalidInput rather than resized, and device
// trouble is reported as ErrDevice. Sources never retry on their own; the
// caller decides whether to ask again.
package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

var (
	// ErrDevice reports that the underlying device or decoder cannot deliver frames.
	ErrDevice = errors.New("device error")

	// ErrEndOfStream reports that a finite source has no more frames.
	ErrEndOfStream = errors.New("end of stream")
)

// Source produces frames on demand.
//
// Frames returned by Next are owned by the caller.
type Source interface {
	Next(ctx context.Context) (blob.Frame, error)
	Close() error
}

// checkSize verifies f against the declared size. A zero width or height
// accepts any value for that dimension.
func checkSize(f blob.Frame, width, height int) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if (width > 0 && f.Width != width) || (height > 0 && f.Height != height) {
		return fmt.Errorf("%w: got %dx%d frame, want %dx%d",
			blob.ErrInvalidInput, f.Width, f.Height, width, height)
	}
	return nil
}
