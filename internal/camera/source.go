// Package camera models the frame source: a device that supplies decoded
// pixel buffers on demand, plus a producer that turns it into a live feed.
// The OCR pipeline is never invoked from inside this package; consumers run
// it on-demand against whatever frame they currently hold.
package camera

import (
	"errors"
	"fmt"
	"image"
	"sync/atomic"
)

var (
	// ErrNotAvailable is returned when the device cannot be opened or read.
	ErrNotAvailable = errors.New("camera not available")
	// ErrNoFrame is returned when the source has no frame to deliver.
	ErrNoFrame = errors.New("no frame available")
)

// Options configures a frame source.
type Options struct {
	Index     int  // device index, 0 for the primary camera
	Width     int  // capture width in pixels
	Height    int  // capture height in pixels
	FPS       int  // target capture rate
	Autofocus bool // enable device autofocus if supported
}

// DefaultOptions returns the default capture configuration.
func DefaultOptions() Options {
	return Options{
		Index:     0,
		Width:     640,
		Height:    480,
		FPS:       30,
		Autofocus: true,
	}
}

// Validate checks the capture options against sane device limits.
func (o Options) Validate() error {
	if o.Index < 0 || o.Index > 10 {
		return fmt.Errorf("camera index must be in [0, 10], got %d", o.Index)
	}
	if o.Width < 320 || o.Width > 4096 {
		return fmt.Errorf("frame width must be in [320, 4096], got %d", o.Width)
	}
	if o.Height < 240 || o.Height > 4096 {
		return fmt.Errorf("frame height must be in [240, 4096], got %d", o.Height)
	}
	if o.FPS < 10 || o.FPS > 120 {
		return fmt.Errorf("fps must be in [10, 120], got %d", o.FPS)
	}
	return nil
}

// Source is the device boundary: open a device, read decoded frames, release
// it. Implementations own the actual acquisition mechanism.
type Source interface {
	Open(opts Options) error
	ReadFrame() (image.Image, error)
	Release()
	IsAvailable() bool
}

// Capture wraps a Source with frame accounting. It is the single owner of
// the underlying device.
type Capture struct {
	src    Source
	opts   Options
	frames atomic.Int64
}

// NewCapture opens the source with the given options and returns a capture
// handle. The caller must Release it when done.
func NewCapture(src Source, opts Options) (*Capture, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid capture options: %w", err)
	}
	if err := src.Open(opts); err != nil {
		return nil, fmt.Errorf("open camera %d: %w", opts.Index, err)
	}
	return &Capture{src: src, opts: opts}, nil
}

// Frame reads a single frame from the device.
func (c *Capture) Frame() (image.Image, error) {
	if !c.src.IsAvailable() {
		return nil, ErrNotAvailable
	}
	frame, err := c.src.ReadFrame()
	if err != nil {
		return nil, err
	}
	c.frames.Add(1)
	return frame, nil
}

// FrameCount returns the number of frames read so far.
func (c *Capture) FrameCount() int64 { return c.frames.Load() }

// ResetFrameCount resets the frame counter.
func (c *Capture) ResetFrameCount() { c.frames.Store(0) }

// Options returns the options the device was opened with.
func (c *Capture) Options() Options { return c.opts }

// Available reports whether the device is open and readable.
func (c *Capture) Available() bool { return c.src.IsAvailable() }

// Release releases the underlying device.
func (c *Capture) Release() { c.src.Release() }
