// Package pipeline drives the preprocessing engine and the recognition
// adapter: raw frame in, plain text or detections out. A Pipeline holds no
// state across calls; each invocation is independent and idempotent modulo
// the external engine.
package pipeline

import (
	"fmt"

	"github.com/MeKo-Tech/textscan/internal/preprocess"
	"github.com/MeKo-Tech/textscan/internal/recognize"
)

// Config holds configuration for the OCR pipeline and its components.
type Config struct {
	Preprocess       preprocess.Config
	Engine           recognize.Config
	DefaultMode      preprocess.Mode
	DefaultThreshold int
}

// DefaultConfig returns a default pipeline config with component defaults.
func DefaultConfig() Config {
	return Config{
		Preprocess:       preprocess.DefaultConfig(),
		Engine:           recognize.DefaultConfig(),
		DefaultMode:      preprocess.ModeGrayscale,
		DefaultThreshold: 127,
	}
}

// Pipeline runs preprocessing and recognition against individual images.
type Pipeline struct {
	cfg     Config
	adapter *recognize.Adapter
}

// Config returns a copy of the pipeline configuration.
func (p *Pipeline) Config() Config { return p.cfg }

// Builder constructs a Pipeline with fluent configuration.
type Builder struct {
	cfg    Config
	engine recognize.Engine
}

// NewBuilder creates a new pipeline builder with defaults.
func NewBuilder() *Builder { return &Builder{cfg: DefaultConfig()} }

// WithEngine injects a recognition engine, replacing the Tesseract default.
func (b *Builder) WithEngine(engine recognize.Engine) *Builder {
	b.engine = engine
	return b
}

// WithLanguage sets the recognition language code.
func (b *Builder) WithLanguage(lang string) *Builder {
	if lang != "" {
		b.cfg.Engine.Language = lang
	}
	return b
}

// WithPageSegMode sets the engine's page segmentation mode.
func (b *Builder) WithPageSegMode(psm int) *Builder {
	b.cfg.Engine.PageSegMode = psm
	return b
}

// WithEngineMode selects the OCR engine variant.
func (b *Builder) WithEngineMode(oem int) *Builder {
	b.cfg.Engine.EngineMode = oem
	return b
}

// WithTessdataPrefix overrides the trained-data directory.
func (b *Builder) WithTessdataPrefix(dir string) *Builder {
	if dir != "" {
		b.cfg.Engine.TessdataPrefix = dir
	}
	return b
}

// WithPreprocessConfig replaces the preprocessing tuning parameters.
func (b *Builder) WithPreprocessConfig(cfg preprocess.Config) *Builder {
	b.cfg.Preprocess = cfg
	return b
}

// WithDefaults sets the preprocessing mode and threshold used when a caller
// passes no explicit values.
func (b *Builder) WithDefaults(mode preprocess.Mode, threshold int) *Builder {
	b.cfg.DefaultMode = mode
	b.cfg.DefaultThreshold = threshold
	return b
}

// Build validates the configuration and assembles the pipeline. When no
// engine was injected, a Tesseract-backed one is created.
func (b *Builder) Build() (*Pipeline, error) {
	if err := b.cfg.Preprocess.Validate(); err != nil {
		return nil, fmt.Errorf("invalid preprocess config: %w", err)
	}
	engine := b.engine
	if engine == nil {
		tess, err := recognize.NewTesseractEngine(b.cfg.Engine)
		if err != nil {
			return nil, err
		}
		engine = tess
	}
	return &Pipeline{cfg: b.cfg, adapter: recognize.NewAdapter(engine)}, nil
}
