package scheduler

import (
	"bytes"
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
	"github.com/ironsheep/color-blob-mcp/internal/sink"
	"github.com/ironsheep/color-blob-mcp/internal/source"
)

// scriptedSource returns each step in turn, then ErrEndOfStream.
type scriptedSource struct {
	mu    sync.Mutex
	steps []step
	calls int
}

type step struct {
	frame blob.Frame
	err   error
}

func (s *scriptedSource) Next(ctx context.Context) (blob.Frame, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.calls >= len(s.steps) {
		return blob.Frame{}, source.ErrEndOfStream
	}
	st := s.steps[s.calls]
	s.calls++
	return st.frame, st.err
}

func (s *scriptedSource) Close() error { return nil }

// blockFrame returns a 100x100 frame with a green square of the given size at x,y.
func blockFrame(x, y, size int) blob.Frame {
	f := blob.NewFrame(100, 100)
	for i := range f.Pix {
		f.Pix[i] = blob.Pack(0xFF, 0, 0, 0)
	}
	for yy := y; yy < y+size; yy++ {
		for xx := x; xx < x+size; xx++ {
			f.Set(xx, yy, blob.Pack(0xFF, 0, 200, 0))
		}
	}
	return f
}

type collected struct {
	mu     sync.Mutex
	counts []int
	widths []int
}

func (c *collected) sink() sink.Sink {
	return sink.Func(func(original, mask blob.Frame, regions []blob.Region) error {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.counts = append(c.counts, len(regions))
		c.widths = append(c.widths, mask.Width)
		return nil
	})
}

func TestScheduler_RunsUntilEndOfStream(t *testing.T) {
	src := &scriptedSource{steps: []step{
		{frame: blockFrame(40, 40, 12)},
		{frame: blob.NewFrame(100, 100)},
		{frame: blockFrame(20, 20, 12)},
	}}
	out := &collected{}
	s := New(src, blob.NewDefault(), out.sink(), time.Millisecond, logger.NewNop())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, s.Run(ctx))

	assert.Equal(t, []int{1, 0, 1}, out.counts)
	assert.Equal(t, []int{100, 100, 100}, out.widths)

	st := s.Stats()
	assert.Equal(t, 3, st.Passes)
	assert.Equal(t, 0, st.Skipped)
	assert.Equal(t, 1, st.LastRegions)
}

func TestScheduler_SkipsFailedPasses(t *testing.T) {
	var buf bytes.Buffer
	src := &scriptedSource{steps: []step{
		{err: errors.New("usb hiccup")},
		{frame: blob.Frame{Width: 10, Height: 10}},
		{frame: blockFrame(40, 40, 12)},
	}}
	out := &collected{}
	s := New(src, blob.NewDefault(), out.sink(), time.Millisecond,
		logger.NewZerolog(&buf, zerolog.InfoLevel))

	require.NoError(t, s.Run(context.Background()))

	assert.Equal(t, []int{1}, out.counts)
	st := s.Stats()
	assert.Equal(t, 1, st.Passes)
	assert.Equal(t, 2, st.Skipped)
	assert.Contains(t, buf.String(), "usb hiccup")
	assert.Contains(t, buf.String(), "source exhausted")
}

func TestScheduler_SinkFailureSkipsPass(t *testing.T) {
	src := &scriptedSource{steps: []step{{frame: blockFrame(40, 40, 12)}}}
	failing := sink.Func(func(_, _ blob.Frame, _ []blob.Region) error {
		return errors.New("disk full")
	})
	s := New(src, blob.NewDefault(), failing, time.Millisecond, logger.NewNop())

	err := s.Tick(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sink: disk full")
	assert.Equal(t, 1, s.Stats().Skipped)
	assert.Equal(t, 0, s.Stats().Passes)
}

// endlessSource always returns the same frame.
type endlessSource struct{ frame blob.Frame }

func (e endlessSource) Next(ctx context.Context) (blob.Frame, error) {
	if err := ctx.Err(); err != nil {
		return blob.Frame{}, err
	}
	return e.frame, nil
}

func (e endlessSource) Close() error { return nil }

func TestScheduler_StopsOnCancel(t *testing.T) {
	out := &collected{}
	s := New(endlessSource{frame: blockFrame(40, 40, 12)}, blob.NewDefault(), out.sink(),
		time.Millisecond, logger.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	require.Eventually(t, func() bool { return s.Stats().Passes >= 3 }, 5*time.Second, time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Zero(t, s.Stats().Skipped)
}

func TestScheduler_Cadence(t *testing.T) {
	src := &scriptedSource{steps: make([]step, 4)}
	for i := range src.steps {
		src.steps[i].frame = blob.NewFrame(20, 20)
	}
	s := New(src, blob.NewDefault(), sink.Func(func(_, _ blob.Frame, _ []blob.Region) error { return nil }),
		20*time.Millisecond, logger.NewNop())

	start := time.Now()
	require.NoError(t, s.Run(context.Background()))

	// four passes plus the end-of-stream check wait for four ticks
	assert.GreaterOrEqual(t, time.Since(start), 60*time.Millisecond)
}

func TestNew_DefaultInterval(t *testing.T) {
	s := New(&scriptedSource{}, blob.NewDefault(), sink.Multi{}, 0, logger.NewNop())
	assert.Equal(t, DefaultInterval, s.interval)
}
