//go:build !gocv

package source

import (
	"context"
	"fmt"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// CameraSource is unavailable in builds without the gocv tag.
type CameraSource struct{}

// OpenCamera always fails; rebuild with -tags gocv for camera support.
func OpenCamera(device, width, height int) (*CameraSource, error) {
	return nil, fmt.Errorf("%w: camera %d: built without gocv support", ErrDevice, device)
}

// Next always fails.
func (c *CameraSource) Next(ctx context.Context) (blob.Frame, error) {
	return blob.Frame{}, fmt.Errorf("%w: built without gocv support", ErrDevice)
}

// Close is a no-op.
func (c *CameraSource) Close() error { return nil }
