// Package recognize wraps an external text-recognition engine behind a small
// interface and normalizes its raw per-word output into detections with
// bounding boxes and confidence scores.
package recognize

import (
	"fmt"
	"image"
)

// Candidate is a raw per-word result as emitted by the underlying engine,
// before any filtering. Confidence is the engine's own score in [0, 100];
// values <= 0 mark non-text or rejected regions.
type Candidate struct {
	X          int
	Y          int
	Width      int
	Height     int
	Confidence int
	Text       string
}

// Engine is the contract for the external recognition engine: one image in,
// plain text or structured word candidates out. Implementations receive a
// preprocessed single-channel or binary buffer.
type Engine interface {
	// Text extracts all text from the image as a single string.
	Text(img image.Image) (string, error)
	// Words returns per-word candidates in the engine's emission order.
	Words(img image.Image) ([]Candidate, error)
}

// EngineError wraps a failure from the external engine. It is always
// recoverable: a failed recognition degrades to an empty result and the
// caller keeps running.
type EngineError struct {
	Op  string
	Err error
}

func (e *EngineError) Error() string {
	return fmt.Sprintf("recognition engine error in %s: %v", e.Op, e.Err)
}

func (e *EngineError) Unwrap() error { return e.Err }

// Config carries pass-through parameters for the underlying engine.
type Config struct {
	// Language is the trained-data code, e.g. "eng".
	Language string
	// PageSegMode is the page segmentation mode (0-13).
	PageSegMode int
	// EngineMode selects the OCR engine variant (0-3). Tesseract fixes this
	// at initialization, so it is forwarded best effort.
	EngineMode int
	// TessdataPrefix optionally overrides the trained-data directory.
	TessdataPrefix string
}

// DefaultConfig returns the default engine configuration: English, fully
// automatic page segmentation, default engine selection.
func DefaultConfig() Config {
	return Config{
		Language:    "eng",
		PageSegMode: 3,
		EngineMode:  3,
	}
}

// Validate checks the engine configuration ranges.
func (c Config) Validate() error {
	if c.Language == "" {
		return fmt.Errorf("language must not be empty")
	}
	if c.PageSegMode < 0 || c.PageSegMode > 13 {
		return fmt.Errorf("page segmentation mode must be in [0, 13], got %d", c.PageSegMode)
	}
	if c.EngineMode < 0 || c.EngineMode > 3 {
		return fmt.Errorf("engine mode must be in [0, 3], got %d", c.EngineMode)
	}
	return nil
}
