package source

import (
	"context"
	"fmt"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/imaging"
)

// FileSource replays a single still image on every call.
type FileSource struct {
	cache  *imaging.ImageCache
	path   string
	width  int
	height int
}

// NewFileSource creates a source backed by the image at path. width and height
// declare the expected frame size; zero accepts whatever the file holds.
func NewFileSource(cache *imaging.ImageCache, path string, width, height int) *FileSource {
	return &FileSource{cache: cache, path: path, width: width, height: height}
}

// Next decodes (or reuses) the image and returns a private copy of it.
func (s *FileSource) Next(ctx context.Context) (blob.Frame, error) {
	if err := ctx.Err(); err != nil {
		return blob.Frame{}, err
	}
	f, err := s.cache.Load(s.path)
	if err != nil {
		return blob.Frame{}, fmt.Errorf("%w: %v", ErrDevice, err)
	}
	if err := checkSize(f, s.width, s.height); err != nil {
		return blob.Frame{}, fmt.Errorf("%s: %w", s.path, err)
	}
	return f.Clone(), nil
}

// Close drops the image from the cache.
func (s *FileSource) Close() error {
	s.cache.Evict(s.path)
	return nil
}

// SequenceSource walks a list of image files in order.
type SequenceSource struct {
	cache  *imaging.ImageCache
	paths  []string
	next   int
	loop   bool
	width  int
	height int
}

// NewSequenceSource creates a source over paths. With loop set it restarts
// from the first path instead of reporting ErrEndOfStream.
func NewSequenceSource(cache *imaging.ImageCache, paths []string, loop bool, width, height int) *SequenceSource {
	return &SequenceSource{
		cache:  cache,
		paths:  paths,
		loop:   loop,
		width:  width,
		height: height,
	}
}

// Next returns the next image in the list.
func (s *SequenceSource) Next(ctx context.Context) (blob.Frame, error) {
	if err := ctx.Err(); err != nil {
		return blob.Frame{}, err
	}
	if len(s.paths) == 0 {
		return blob.Frame{}, ErrEndOfStream
	}
	if s.next >= len(s.paths) {
		if !s.loop {
			return blob.Frame{}, ErrEndOfStream
		}
		s.next = 0
	}

	path := s.paths[s.next]
	s.next++

	f, err := s.cache.Load(path)
	if err != nil {
		return blob.Frame{}, fmt.Errorf("%w: %v", ErrDevice, err)
	}
	if err := checkSize(f, s.width, s.height); err != nil {
		return blob.Frame{}, fmt.Errorf("%s: %w", path, err)
	}
	if !s.loop {
		// never read again
		s.cache.Evict(path)
		return f, nil
	}
	return f.Clone(), nil
}

// Close releases cached images.
func (s *SequenceSource) Close() error {
	for _, p := range s.paths {
		s.cache.Evict(p)
	}
	return nil
}
