package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/MeKo-Tech/textscan/internal/camera"
	"github.com/MeKo-Tech/textscan/internal/preprocess"
	"github.com/MeKo-Tech/textscan/internal/recognize"
)

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Camera: CameraConfig{
			Index:     0,
			Width:     640,
			Height:    480,
			FPS:       30,
			Autofocus: true,
		},
		OCR: OCRConfig{
			DefaultMode:       "grayscale",
			DefaultThreshold:  127,
			NoiseKernelSize:   5,
			AdaptiveBlockSize: 11,
			AdaptiveConstant:  2,
			MorphKernelSize:   3,
			MorphIterations:   1,
		},
		Tesseract: TesseractConfig{
			Lang: "eng",
			PSM:  3,
			OEM:  3,
		},
		Display: DisplayConfig{
			MaxWidth:     1200,
			MaxHeight:    800,
			BoxColor:     "#00ff00",
			BoxThickness: 2,
		},
		Files: FilesConfig{
			MaxDimension: 4096,
			JPEGQuality:  95,
		},
	}
}

// Validate checks the complete configuration and returns the first problem
// found. Validation happens once at startup, not ad hoc at use sites.
func (c *Config) Validate() error {
	if _, err := preprocess.ParseMode(c.OCR.DefaultMode); err != nil {
		return fmt.Errorf("ocr.default_mode: %w", err)
	}
	if c.OCR.DefaultThreshold < 0 || c.OCR.DefaultThreshold > 255 {
		return fmt.Errorf("ocr.default_threshold must be in [0, 255], got %d", c.OCR.DefaultThreshold)
	}
	if err := c.PreprocessConfig().Validate(); err != nil {
		return fmt.Errorf("ocr: %w", err)
	}
	if err := c.EngineConfig().Validate(); err != nil {
		return fmt.Errorf("tesseract: %w", err)
	}
	if err := c.CameraOptions().Validate(); err != nil {
		return fmt.Errorf("camera: %w", err)
	}
	if c.Display.MaxWidth < 1 || c.Display.MaxHeight < 1 {
		return fmt.Errorf("display.max_width and display.max_height must be positive")
	}
	if c.Display.BoxThickness < 1 {
		return fmt.Errorf("display.box_thickness must be positive, got %d", c.Display.BoxThickness)
	}
	if _, err := c.BoxColor(); err != nil {
		return fmt.Errorf("display.box_color: %w", err)
	}
	if c.Files.MaxDimension < 1 {
		return fmt.Errorf("files.max_dimension must be positive, got %d", c.Files.MaxDimension)
	}
	if c.Files.JPEGQuality < 1 || c.Files.JPEGQuality > 100 {
		return fmt.Errorf("files.jpeg_quality must be in [1, 100], got %d", c.Files.JPEGQuality)
	}
	return nil
}

// Mode returns the configured default preprocessing mode.
func (c *Config) Mode() (preprocess.Mode, error) {
	return preprocess.ParseMode(c.OCR.DefaultMode)
}

// PreprocessConfig maps the OCR section onto the preprocessing engine config.
func (c *Config) PreprocessConfig() preprocess.Config {
	return preprocess.Config{
		NoiseKernelSize:   c.OCR.NoiseKernelSize,
		AdaptiveBlockSize: c.OCR.AdaptiveBlockSize,
		AdaptiveConstant:  c.OCR.AdaptiveConstant,
		MorphKernelSize:   c.OCR.MorphKernelSize,
		MorphIterations:   c.OCR.MorphIterations,
	}
}

// EngineConfig maps the tesseract section onto the recognition engine config.
func (c *Config) EngineConfig() recognize.Config {
	return recognize.Config{
		Language:       c.Tesseract.Lang,
		PageSegMode:    c.Tesseract.PSM,
		EngineMode:     c.Tesseract.OEM,
		TessdataPrefix: c.Tesseract.TessdataPrefix,
	}
}

// CameraOptions maps the camera section onto frame-source options.
func (c *Config) CameraOptions() camera.Options {
	return camera.Options{
		Index:     c.Camera.Index,
		Width:     c.Camera.Width,
		Height:    c.Camera.Height,
		FPS:       c.Camera.FPS,
		Autofocus: c.Camera.Autofocus,
	}
}

// BoxColor parses the overlay box color from its "#rrggbb" form.
func (c *Config) BoxColor() (color.RGBA, error) {
	return ParseHexColor(c.Display.BoxColor)
}

// ParseHexColor parses "#rrggbb" into an opaque RGBA color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("expected #rrggbb, got %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
