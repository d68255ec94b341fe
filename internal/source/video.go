package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sync"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/ironsheep/color-blob-mcp/internal/blob"
	"github.com/ironsheep/color-blob-mcp/internal/logger"
)

// VideoSource decodes a video file or stream URL with ffmpeg, scaled to a
// fixed frame size.
type VideoSource struct {
	*RawSource

	input  string
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
	log    logger.Logger
}

// videoArgs are the ffmpeg output options for raw rgb24 frames of the given size.
func videoArgs(width, height int) ffmpeg.KwArgs {
	return ffmpeg.KwArgs{
		"format":  "rawvideo",
		"pix_fmt": "rgb24",
		"s":       fmt.Sprintf("%dx%d", width, height),
	}
}

type videoProbe struct {
	Streams []struct {
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

// ProbeSize asks ffprobe for the native frame size of the first video stream.
func ProbeSize(input string) (width, height int, err error) {
	out, err := ffmpeg.Probe(input)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: ffprobe %s: %v", ErrDevice, input, err)
	}
	var probe videoProbe
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, 0, fmt.Errorf("%w: ffprobe %s: %v", ErrDevice, input, err)
	}
	for _, s := range probe.Streams {
		if s.CodecType == "video" && s.Width > 0 && s.Height > 0 {
			return s.Width, s.Height, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: %s has no video stream", ErrDevice, input)
}

// OpenVideo starts ffmpeg on input. The decoder runs until the stream ends,
// ctx is cancelled, or Close is called. A zero width or height is replaced
// by the stream's native size.
func OpenVideo(ctx context.Context, input string, width, height int, log logger.Logger) (*VideoSource, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: video frame size %dx%d", blob.ErrInvalidInput, width, height)
	}
	if width == 0 || height == 0 {
		w, h, err := ProbeSize(input)
		if err != nil {
			return nil, err
		}
		if width == 0 {
			width = w
		}
		if height == 0 {
			height = h
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	pr, pw := io.Pipe()

	raw, err := NewRawSource(pr, width, height)
	if err != nil {
		cancel()
		return nil, err
	}

	stream := ffmpeg.Input(input).
		Output("pipe:1", videoArgs(width, height)).
		WithOutput(pw).
		WithErrorOutput(io.Discard)
	stream.Context = ctx

	v := &VideoSource{
		RawSource: raw,
		input:     input,
		cancel:    cancel,
		done:      make(chan struct{}),
		log:       log,
	}

	go func() {
		defer close(v.done)
		err := stream.Run()
		if err != nil && ctx.Err() == nil {
			log.Error("source", fmt.Errorf("ffmpeg %s: %w", input, err), nil)
		}
		pw.CloseWithError(err)
	}()

	log.Info("source", "video decoder started", map[string]interface{}{
		"input":  input,
		"width":  width,
		"height": height,
	})
	return v, nil
}

// Close stops the decoder and waits for it to exit.
func (v *VideoSource) Close() error {
	var err error
	v.once.Do(func() {
		v.cancel()
		err = v.RawSource.Close()
		<-v.done
	})
	return err
}
