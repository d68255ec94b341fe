package sink

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/imaging"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
)

// SnapshotSink writes the side-by-side overlay of every Nth result to a
// directory as numbered PNG files.
type SnapshotSink struct {
	dir   string
	every int
	opts  imaging.OverlayOptions
	log   logger.Logger

	mu    sync.Mutex
	seen  int
	saved int
	last  string
}

// NewSnapshotSink creates a sink writing into dir. every < 1 is treated as 1.
func NewSnapshotSink(dir string, every int, opts imaging.OverlayOptions, log logger.Logger) *SnapshotSink {
	if every < 1 {
		every = 1
	}
	return &SnapshotSink{dir: dir, every: every, opts: opts, log: log}
}

// Put renders and saves the result if it falls on the snapshot interval.
func (s *SnapshotSink) Put(original, mask blob.Frame, regions []blob.Region) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.seen
	s.seen++
	if n%s.every != 0 {
		return nil
	}

	img, err := imaging.RenderOverlay(original, mask, regions, s.opts)
	if err != nil {
		return fmt.Errorf("snapshot %d: %w", n, err)
	}
	path := filepath.Join(s.dir, fmt.Sprintf("frame-%06d.png", n))
	if err := imaging.SavePNG(path, img); err != nil {
		return fmt.Errorf("snapshot %d: %w", n, err)
	}
	s.saved++
	s.last = path

	s.log.Debug("sink", "saved snapshot", map[string]interface{}{
		"path":    path,
		"regions": len(regions),
	})
	return nil
}

// Saved reports how many snapshots were written and the most recent path.
func (s *SnapshotSink) Saved() (int, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved, s.last
}

// Close logs a summary.
func (s *SnapshotSink) Close() error {
	saved, last := s.Saved()
	s.log.Info("sink", "snapshot sink closed", map[string]interface{}{
		"dir":   s.dir,
		"saved": saved,
		"last":  last,
	})
	return nil
}
