// Command blobwatch runs the color-blob detector continuously over a camera,
// a video, or image files, logging the regions found on every pass and
// optionally saving overlay snapshots.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/imaging"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
	"github.com/ironsheep/color-blob-mcp/internal/scheduler"
	"github.com/ironsheep/color-blob-mcp/internal/sink"
	"github.com/ironsheep/color-blob-mcp/internal/source"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "blobwatch: %v\n", err)
		os.Exit(2)
	}

	log := logger.NewConsoleLogger(os.Stderr, logger.LevelFromEnv())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("main", err, nil)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, log logger.Logger) error {
	det, err := blob.New(cfg.Params)
	if err != nil {
		return err
	}

	src, err := openSource(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer src.Close()

	sinks := sink.Multi{sink.NewLogSink(log)}
	if cfg.Out != "" {
		opts := imaging.DefaultOverlayOptions()
		opts.Labels = cfg.Labels
		sinks = append(sinks, sink.NewSnapshotSink(cfg.Out, cfg.Every, opts, log))
	}
	defer sinks.Close()

	sched := scheduler.New(src, det, sinks, cfg.Interval, log)
	if err := sched.Run(ctx); err != nil {
		return err
	}

	st := sched.Stats()
	log.Info("main", "done", map[string]interface{}{
		"passes":  st.Passes,
		"skipped": st.Skipped,
	})
	return nil
}

func openSource(ctx context.Context, cfg *config, log logger.Logger) (source.Source, error) {
	switch cfg.Source {
	case "camera":
		return source.OpenCamera(cfg.Device, cfg.Width, cfg.Height)
	case "video":
		return source.OpenVideo(ctx, cfg.Input, cfg.Width, cfg.Height, log)
	case "file":
		paths, err := cfg.inputPaths()
		if err != nil {
			return nil, err
		}
		cache := imaging.NewImageCache()
		if len(paths) == 1 {
			return source.NewFileSource(cache, paths[0], cfg.Width, cfg.Height), nil
		}
		return source.NewSequenceSource(cache, paths, cfg.Loop, cfg.Width, cfg.Height), nil
	default:
		return nil, fmt.Errorf("unknown source %q", cfg.Source)
	}
}
