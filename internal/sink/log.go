package sink

import (
	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
)

// LogSink reports each result as a structured log entry.
type LogSink struct {
	log logger.Logger
}

// NewLogSink creates a sink writing to log.
func NewLogSink(log logger.Logger) *LogSink {
	return &LogSink{log: log}
}

// Put logs the region count and, at debug level, every region.
func (s *LogSink) Put(original, mask blob.Frame, regions []blob.Region) error {
	s.log.Info("sink", "regions detected", map[string]interface{}{
		"width":   original.Width,
		"height":  original.Height,
		"regions": len(regions),
	})
	for i, r := range regions {
		s.log.Debug("sink", "region", map[string]interface{}{
			"index":  i,
			"x":      r.X,
			"y":      r.Y,
			"width":  r.Width,
			"height": r.Height,
		})
	}
	return nil
}

// Close does nothing.
func (s *LogSink) Close() error { return nil }
