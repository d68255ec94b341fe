// Package scheduler drives the detection loop: on every tick it pulls a
// frame from a source, runs the detector, and hands the result to a sink.
//
// Passes never overlap. A tick that arrives while a pass is still running
// is dropped by the underlying ticker.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
	"github.com/ironsheep/color-blob-mcp/internal/sink"
	"github.com/ironsheep/color-blob-mcp/internal/source"
)

// DefaultInterval is the pause between detection passes.
const DefaultInterval = 25 * time.Millisecond

// Stats summarizes the passes run so far.
type Stats struct {
	Passes       int           `json:"passes"`
	Skipped      int           `json:"skipped"`
	LastRegions  int           `json:"last_regions"`
	LastDuration time.Duration `json:"last_duration"`
}

// Scheduler runs one detection pass per tick.
type Scheduler struct {
	src      source.Source
	det      *blob.Detector
	snk      sink.Sink
	interval time.Duration
	log      logger.Logger

	mu    sync.Mutex
	stats Stats
}

// New creates a scheduler. interval <= 0 selects DefaultInterval.
func New(src source.Source, det *blob.Detector, snk sink.Sink, interval time.Duration, log logger.Logger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		src:      src,
		det:      det,
		snk:      snk,
		interval: interval,
		log:      log,
	}
}

// Run executes passes until ctx is cancelled or the source is exhausted.
// Both end the run cleanly. Failed passes are logged and skipped.
func (s *Scheduler) Run(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.log.Info("scheduler", "detection loop started", map[string]interface{}{
		"interval": s.interval.String(),
	})

	for {
		err := s.Tick(ctx)
		switch {
		case err == nil:
		case errors.Is(err, source.ErrEndOfStream):
			s.log.Info("scheduler", "source exhausted", s.fields())
			return nil
		case ctx.Err() != nil:
			s.log.Info("scheduler", "detection loop stopped", s.fields())
			return nil
		default:
			s.log.Error("scheduler", err, nil)
		}

		select {
		case <-ctx.Done():
			s.log.Info("scheduler", "detection loop stopped", s.fields())
			return nil
		case <-ticker.C:
		}
	}
}

// Tick runs a single pass: fetch, detect, deliver.
func (s *Scheduler) Tick(ctx context.Context) error {
	start := time.Now()

	frame, err := s.src.Next(ctx)
	if err != nil {
		if !errors.Is(err, source.ErrEndOfStream) && ctx.Err() == nil {
			s.skip()
		}
		return err
	}

	res, err := s.det.Detect(frame)
	if err != nil {
		s.skip()
		return err
	}

	if err := s.snk.Put(frame, res.Mask, res.Regions); err != nil {
		s.skip()
		return fmt.Errorf("sink: %w", err)
	}

	s.mu.Lock()
	s.stats.Passes++
	s.stats.LastRegions = len(res.Regions)
	s.stats.LastDuration = time.Since(start)
	s.mu.Unlock()
	return nil
}

// Stats returns a snapshot of the pass counters.
func (s *Scheduler) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

func (s *Scheduler) skip() {
	s.mu.Lock()
	s.stats.Skipped++
	s.mu.Unlock()
}

func (s *Scheduler) fields() map[string]interface{} {
	st := s.Stats()
	return map[string]interface{}{
		"passes":  st.Passes,
		"skipped": st.Skipped,
	}
}
