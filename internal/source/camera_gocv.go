//go:build gocv

package source

import (
	"context"
	"fmt"
	"sync"

	"gocv.io/x/gocv"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/imaging"
)

// CameraSource grabs frames from a local capture device through OpenCV.
type CameraSource struct {
	mu     sync.Mutex
	cap    *gocv.VideoCapture
	mat    gocv.Mat
	device int
	width  int
	height int
}

// OpenCamera opens capture device and requests the given frame size. Devices
// that ignore the request produce frames that fail the size check in Next.
func OpenCamera(device, width, height int) (*CameraSource, error) {
	vc, err := gocv.OpenVideoCapture(device)
	if err != nil {
		return nil, fmt.Errorf("%w: open camera %d: %v", ErrDevice, device, err)
	}
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("%w: camera %d not opened", ErrDevice, device)
	}
	if width > 0 {
		vc.Set(gocv.VideoCaptureFrameWidth, float64(width))
	}
	if height > 0 {
		vc.Set(gocv.VideoCaptureFrameHeight, float64(height))
	}
	return &CameraSource{
		cap:    vc,
		mat:    gocv.NewMat(),
		device: device,
		width:  width,
		height: height,
	}, nil
}

// Next reads one frame from the device.
func (c *CameraSource) Next(ctx context.Context) (blob.Frame, error) {
	if err := ctx.Err(); err != nil {
		return blob.Frame{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cap == nil {
		return blob.Frame{}, fmt.Errorf("%w: camera %d closed", ErrDevice, c.device)
	}
	if ok := c.cap.Read(&c.mat); !ok || c.mat.Empty() {
		return blob.Frame{}, fmt.Errorf("%w: cannot read from camera %d", ErrDevice, c.device)
	}

	img, err := c.mat.ToImage()
	if err != nil {
		return blob.Frame{}, fmt.Errorf("%w: convert camera frame: %v", ErrDevice, err)
	}
	f := imaging.FrameFromImage(img)
	if err := checkSize(f, c.width, c.height); err != nil {
		return blob.Frame{}, fmt.Errorf("camera %d: %w", c.device, err)
	}
	return f, nil
}

// Close releases the device.
func (c *CameraSource) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cap == nil {
		return nil
	}
	c.mat.Close()
	err := c.cap.Close()
	c.cap = nil
	return err
}
