package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"sync"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
)

// ImageCache provides thread-safe caching of decoded frames to avoid redundant
// disk reads and conversions.
//
// Frames are keyed by the exact path string passed to Load. Once a file is
// loaded, later calls return the cached frame without touching the disk.
//
// Cached frames are shared between callers and must be treated as read-only.
// Detection never writes to its input, so a cached frame can be detected any
// number of times.
//
// # Memory Management
//
// Cached frames remain in memory until removed via Evict or Clear.
type ImageCache struct {
	mu     sync.RWMutex
	frames map[string]blob.Frame
}

// NewImageCache creates an empty cache that is ready for concurrent use.
func NewImageCache() *ImageCache {
	return &ImageCache{
		frames: make(map[string]blob.Frame),
	}
}

// Load returns the frame for path, decoding it from disk on first use.
//
// Supported formats are PNG, JPEG, and GIF.
func (c *ImageCache) Load(path string) (blob.Frame, error) {
	c.mu.RLock()
	if f, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return f, nil
	}
	c.mu.RUnlock()

	img, err := DecodeFile(path)
	if err != nil {
		return blob.Frame{}, err
	}
	f := FrameFromImage(img)

	c.mu.Lock()
	c.frames[path] = f
	c.mu.Unlock()

	return f, nil
}

// Clear removes all frames from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]blob.Frame)
	c.mu.Unlock()
}

// Evict removes a single path from the cache. Unknown paths are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// DecodeFile opens and decodes an image file.
func DecodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageInfo contains metadata about a loaded image file.
type ImageInfo struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is "png", "jpeg", "gif", or "unknown", based on file extension.
	Format string `json:"format"`

	// Pixels is Width × Height.
	Pixels int `json:"pixels"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads an image into the cache and reports its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	f, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	}

	return &ImageInfo{
		Width:         f.Width,
		Height:        f.Height,
		Format:        format,
		Pixels:        f.Width * f.Height,
		FileSizeBytes: stat.Size(),
	}, nil
}
