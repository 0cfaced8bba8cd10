package camera

import (
	"context"
	"errors"
	"image"
	"log/slog"
	"time"
)

// Producer owns a Capture exclusively and pushes frames into a single-slot
// channel at the capture rate. When the consumer lags, the stale frame is
// replaced rather than queued, so the consumer always sees the freshest frame.
type Producer struct {
	capture *Capture
	frames  chan image.Image
}

// NewProducer wraps a capture handle. The producer takes over frame reading;
// callers must not call Frame on the capture concurrently.
func NewProducer(capture *Capture) *Producer {
	return &Producer{
		capture: capture,
		frames:  make(chan image.Image, 1),
	}
}

// Frames returns the channel new frames arrive on. The channel is closed when
// Run returns.
func (p *Producer) Frames() <-chan image.Image {
	return p.frames
}

// Run reads frames at the configured cadence until the context is cancelled
// or the device stops delivering. It always closes the frame channel before
// returning.
func (p *Producer) Run(ctx context.Context) error {
	defer close(p.frames)

	fps := p.capture.Options().FPS
	interval := time.Second / time.Duration(fps)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		frame, err := p.capture.Frame()
		if err != nil {
			if errors.Is(err, ErrNoFrame) {
				continue
			}
			slog.Warn("frame capture stopped", "error", err)
			return err
		}
		p.publish(frame)
	}
}

// publish replaces any unconsumed frame with the new one.
func (p *Producer) publish(frame image.Image) {
	select {
	case p.frames <- frame:
	default:
		select {
		case <-p.frames:
		default:
		}
		select {
		case p.frames <- frame:
		default:
		}
	}
}
