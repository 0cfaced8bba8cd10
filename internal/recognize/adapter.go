package recognize

import (
	"image"
	"strings"
)

// Detection is a recognized text block: its bounding rectangle in the pixel
// space of the image it was produced from, the engine's confidence in
// [1, 100], and the recognized text (possibly empty).
type Detection struct {
	X          int    `json:"x"`
	Y          int    `json:"y"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Confidence int    `json:"confidence"`
	Text       string `json:"text"`
}

// Adapter normalizes the raw output of a recognition Engine. It never invokes
// the engine on absent or zero-area input, and converts any engine failure
// into a recoverable *EngineError so one failed recognition never takes down
// the host.
type Adapter struct {
	engine Engine
}

// NewAdapter wraps an engine.
func NewAdapter(engine Engine) *Adapter {
	return &Adapter{engine: engine}
}

// RecognizeText extracts the whole image's text, trimmed of surrounding
// whitespace. An absent or zero-area image yields "" without touching the
// engine.
func (a *Adapter) RecognizeText(img image.Image) (string, error) {
	if emptyImage(img) {
		return "", nil
	}
	text, err := a.engine.Text(img)
	if err != nil {
		return "", &EngineError{Op: "recognize text", Err: err}
	}
	return strings.TrimSpace(text), nil
}

// DetectBlocks returns the engine's word candidates as detections, dropping
// every candidate with confidence <= 0 (the engine's marker for non-text or
// rejected regions) and preserving emission order.
func (a *Adapter) DetectBlocks(img image.Image) ([]Detection, error) {
	if emptyImage(img) {
		return nil, nil
	}
	candidates, err := a.engine.Words(img)
	if err != nil {
		return nil, &EngineError{Op: "detect blocks", Err: err}
	}

	detections := make([]Detection, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence <= 0 {
			continue
		}
		detections = append(detections, Detection{
			X:          c.X,
			Y:          c.Y,
			Width:      c.Width,
			Height:     c.Height,
			Confidence: c.Confidence,
			Text:       c.Text,
		})
	}
	return detections, nil
}

func emptyImage(img image.Image) bool {
	if img == nil {
		return true
	}
	b := img.Bounds()
	return b.Dx() == 0 || b.Dy() == 0
}
