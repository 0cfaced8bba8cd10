package recognize

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"math"

	"github.com/otiai10/gosseract/v2"
)

// TesseractEngine implements Engine using the gosseract client. A fresh
// client is created per call; gosseract clients are not safe for concurrent
// reuse and setup cost is negligible next to recognition itself.
type TesseractEngine struct {
	cfg           Config
	clientFactory func() *gosseract.Client
}

// NewTesseractEngine constructs a Tesseract-backed engine.
func NewTesseractEngine(cfg Config) (*TesseractEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &TesseractEngine{cfg: cfg, clientFactory: gosseract.NewClient}, nil
}

// Text extracts all text from the image in a single pass.
func (e *TesseractEngine) Text(img image.Image) (string, error) {
	c, err := e.newClient(img)
	if err != nil {
		return "", err
	}
	defer func() { _ = c.Close() }()

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("extract text: %w", err)
	}
	return text, nil
}

// Words returns per-word candidates with bounding boxes and confidences.
func (e *TesseractEngine) Words(img image.Image) ([]Candidate, error) {
	c, err := e.newClient(img)
	if err != nil {
		return nil, err
	}
	defer func() { _ = c.Close() }()

	boxes, err := c.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("get bounding boxes: %w", err)
	}

	candidates := make([]Candidate, 0, len(boxes))
	for _, b := range boxes {
		candidates = append(candidates, Candidate{
			X:          b.Box.Min.X,
			Y:          b.Box.Min.Y,
			Width:      b.Box.Dx(),
			Height:     b.Box.Dy(),
			Confidence: int(math.Round(b.Confidence)),
			Text:       b.Word,
		})
	}
	return candidates, nil
}

func (e *TesseractEngine) newClient(img image.Image) (*gosseract.Client, error) {
	c := e.clientFactory()
	if err := e.configure(c); err != nil {
		_ = c.Close()
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("encode image: %w", err)
	}
	if err := c.SetImageFromBytes(buf.Bytes()); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("set image: %w", err)
	}
	return c, nil
}

func (e *TesseractEngine) configure(c *gosseract.Client) error {
	if e.cfg.TessdataPrefix != "" {
		if err := c.SetTessdataPrefix(e.cfg.TessdataPrefix); err != nil {
			return fmt.Errorf("set tessdata prefix: %w", err)
		}
	}
	if err := c.SetLanguage(e.cfg.Language); err != nil {
		return fmt.Errorf("set language: %w", err)
	}
	if err := c.SetPageSegMode(gosseract.PageSegMode(e.cfg.PageSegMode)); err != nil {
		return fmt.Errorf("set page segmentation mode: %w", err)
	}
	// Best effort: the engine mode is fixed when Tesseract initializes and
	// the client exposes no OEM setter, so the engine may ignore this.
	if err := c.SetVariable("tessedit_ocr_engine_mode", fmt.Sprint(e.cfg.EngineMode)); err != nil {
		return fmt.Errorf("set engine mode: %w", err)
	}
	return nil
}
