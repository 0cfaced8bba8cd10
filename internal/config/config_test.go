package config

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/textscan/internal/preprocess"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	mode, err := cfg.Mode()
	require.NoError(t, err)
	assert.Equal(t, preprocess.ModeGrayscale, mode)
}

func TestConfigValidate_BadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown mode", func(c *Config) { c.OCR.DefaultMode = "sepia" }},
		{"threshold out of range", func(c *Config) { c.OCR.DefaultThreshold = 300 }},
		{"even noise kernel", func(c *Config) { c.OCR.NoiseKernelSize = 4 }},
		{"even adaptive block", func(c *Config) { c.OCR.AdaptiveBlockSize = 10 }},
		{"psm out of range", func(c *Config) { c.Tesseract.PSM = 14 }},
		{"oem out of range", func(c *Config) { c.Tesseract.OEM = -1 }},
		{"camera fps too low", func(c *Config) { c.Camera.FPS = 1 }},
		{"zero display size", func(c *Config) { c.Display.MaxWidth = 0 }},
		{"zero box thickness", func(c *Config) { c.Display.BoxThickness = 0 }},
		{"bad box color", func(c *Config) { c.Display.BoxColor = "green" }},
		{"zero max dimension", func(c *Config) { c.Files.MaxDimension = 0 }},
		{"jpeg quality out of range", func(c *Config) { c.Files.JPEGQuality = 101 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestConfigMappings(t *testing.T) {
	cfg := DefaultConfig()

	pc := cfg.PreprocessConfig()
	assert.Equal(t, 5, pc.NoiseKernelSize)
	assert.Equal(t, 11, pc.AdaptiveBlockSize)

	ec := cfg.EngineConfig()
	assert.Equal(t, "eng", ec.Language)
	assert.Equal(t, 3, ec.PageSegMode)

	co := cfg.CameraOptions()
	assert.Equal(t, 640, co.Width)
	assert.Equal(t, 480, co.Height)
	assert.True(t, co.Autofocus)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#00ff00")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{G: 255, A: 255}, c)

	c, err = ParseHexColor("ff8000")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 255, G: 128, A: 255}, c)

	_, err = ParseHexColor("#fff")
	assert.Error(t, err)

	_, err = ParseHexColor("#zzzzzz")
	assert.Error(t, err)
}
