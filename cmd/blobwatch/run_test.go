package main

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
)

func writeFrame(t *testing.T, path string, blockX int) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 60, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 60; x++ {
			img.Set(x, y, color.Black)
		}
	}
	for y := 14; y < 26; y++ {
		for x := blockX; x < blockX+12; x++ {
			img.Set(x, y, color.NRGBA{0, 200, 0, 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func TestRun_FileSequenceWritesSnapshots(t *testing.T) {
	in := t.TempDir()
	out := filepath.Join(t.TempDir(), "snaps")
	writeFrame(t, filepath.Join(in, "f1.png"), 10)
	writeFrame(t, filepath.Join(in, "f2.png"), 30)

	cfg := &config{
		Source:   "file",
		Input:    filepath.Join(in, "*.png"),
		Width:    60,
		Height:   40,
		Interval: time.Millisecond,
		Out:      out,
		Every:    1,
		Params:   blob.DefaultParams(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	require.NoError(t, run(ctx, cfg, logger.NewNop()))

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRun_CameraUnavailable(t *testing.T) {
	if testing.Short() {
		t.Skip("touches capture devices when built with gocv")
	}
	cfg := &config{Source: "camera", Device: 99, Width: 64, Height: 48, Interval: time.Millisecond, Every: 1, Params: blob.DefaultParams()}
	assert.Error(t, run(context.Background(), cfg, logger.NewNop()))
}
