package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/scheduler"
)

// envPrefix prefixes the environment variable that backs each flag:
// -max-red is read from BLOB_MAX_RED.
const envPrefix = "BLOB_"

type config struct {
	Source   string
	Device   int
	Input    string
	Loop     bool
	Width    int
	Height   int
	Interval time.Duration

	Out    string
	Every  int
	Labels bool

	Params blob.Params
}

// envName returns the environment variable consulted for flag name.
func envName(name string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// parseConfig reads flags from args. A flag absent from args takes its value
// from the matching BLOB_* variable when getenv reports one.
func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (*config, error) {
	cfg := &config{}
	def := blob.DefaultParams()

	var maxRed, minGreen, maxBlue int

	fs := flag.NewFlagSet("blobwatch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Source, "source", "camera", "Frame source: camera, video or file")
	fs.IntVar(&cfg.Device, "device", 0, "Camera device index")
	fs.StringVar(&cfg.Input, "input", "", "Video path/URL, or image path or glob for -source file")
	fs.BoolVar(&cfg.Loop, "loop", false, "Restart a multi-image file source at the end instead of stopping")
	fs.IntVar(&cfg.Width, "width", 640, "Frame width (0 accepts any for file, probes for video)")
	fs.IntVar(&cfg.Height, "height", 480, "Frame height (0 accepts any for file, probes for video)")
	fs.DurationVar(&cfg.Interval, "interval", scheduler.DefaultInterval, "Pause between detection passes")
	fs.StringVar(&cfg.Out, "out", "", "Directory for overlay snapshots (empty disables)")
	fs.IntVar(&cfg.Every, "every", 1, "Save a snapshot every N passes")
	fs.BoolVar(&cfg.Labels, "labels", false, "Draw region indices on snapshots")
	fs.IntVar(&maxRed, "max-red", int(def.MaxRed), "Largest red value counted as target color")
	fs.IntVar(&minGreen, "min-green", int(def.MinGreen), "Green must exceed this value")
	fs.IntVar(&maxBlue, "max-blue", int(def.MaxBlue), "Largest blue value counted as target color")
	fs.IntVar(&cfg.Params.Radius, "radius", def.Radius, "Density neighborhood radius")
	fs.IntVar(&cfg.Params.DensityThreshold, "density", def.DensityThreshold, "Density must exceed this value to seed a region")
	fs.IntVar(&cfg.Params.BoxSize, "box", def.BoxSize, "Side length of reported regions")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var envErr error
	fs.VisitAll(func(f *flag.Flag) {
		if set[f.Name] || envErr != nil {
			return
		}
		if v := getenv(envName(f.Name)); v != "" {
			if err := fs.Set(f.Name, v); err != nil {
				envErr = fmt.Errorf("%s=%q: %w", envName(f.Name), v, err)
			}
		}
	})
	if envErr != nil {
		return nil, envErr
	}

	for _, c := range []struct {
		name string
		v    int
		dst  *uint8
	}{
		{"max-red", maxRed, &cfg.Params.MaxRed},
		{"min-green", minGreen, &cfg.Params.MinGreen},
		{"max-blue", maxBlue, &cfg.Params.MaxBlue},
	} {
		if c.v < 0 || c.v > 255 {
			return nil, fmt.Errorf("-%s must be 0-255, got %d", c.name, c.v)
		}
		*c.dst = uint8(c.v)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	switch c.Source {
	case "camera":
	case "video", "file":
		if c.Input == "" {
			return fmt.Errorf("-input is required for -source %s", c.Source)
		}
	default:
		return fmt.Errorf("unknown -source %q: want camera, video or file", c.Source)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("frame size %dx%d must not be negative", c.Width, c.Height)
	}
	if c.Source == "camera" && (c.Width == 0 || c.Height == 0) {
		return errors.New("-width and -height are required for -source camera")
	}
	if c.Interval <= 0 {
		return fmt.Errorf("-interval must be positive, got %s", c.Interval)
	}
	if c.Every < 1 {
		return fmt.Errorf("-every must be at least 1, got %d", c.Every)
	}
	return c.Params.Validate()
}

// inputPaths expands -input for the file source. A pattern with no match is
// returned as-is so that the open error names it.
func (c *config) inputPaths() ([]string, error) {
	matches, err := filepath.Glob(c.Input)
	if err != nil {
		return nil, fmt.Errorf("bad -input pattern: %w", err)
	}
	if len(matches) == 0 {
		return []string{c.Input}, nil
	}
	sort.Strings(matches)
	return matches, nil
}
