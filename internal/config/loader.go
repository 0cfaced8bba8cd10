package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the base name for configuration files (without extension).
	ConfigFileName = "textscan"

	// EnvPrefix is the prefix for environment variables.
	EnvPrefix = "TEXTSCAN"
)

// Loader handles loading configuration from files, environment variables,
// and bound command-line flags.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new configuration loader backed by the global viper
// instance so that flag bindings made by the command layer take effect.
func NewLoader() *Loader {
	return &Loader{v: viper.GetViper()}
}

// Load reads configuration from the search paths and environment, applies
// defaults, and validates the result.
func (l *Loader) Load() (*Config, error) {
	l.v.SetConfigName(ConfigFileName)
	l.v.SetConfigType("yaml")
	l.addConfigPaths()
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		// A missing config file is fine; defaults and env vars apply.
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

// LoadWithFile loads configuration from a specific file path instead of the
// search paths.
func (l *Loader) LoadWithFile(configFile string) (*Config, error) {
	if configFile == "" {
		return l.Load()
	}
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configFile)
	}

	l.v.SetConfigFile(configFile)
	l.setupEnvironmentVariables()
	l.setDefaults()

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return &cfg, nil
}

func (l *Loader) addConfigPaths() {
	l.v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		l.v.AddConfigPath(home)
		l.v.AddConfigPath(filepath.Join(home, ".config", "textscan"))
	}
	l.v.AddConfigPath("/etc/textscan")
}

func (l *Loader) setupEnvironmentVariables() {
	l.v.SetEnvPrefix(EnvPrefix)
	l.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	l.v.AutomaticEnv()
}

func (l *Loader) setDefaults() {
	def := DefaultConfig()

	l.v.SetDefault("log_level", def.LogLevel)
	l.v.SetDefault("verbose", def.Verbose)

	l.v.SetDefault("camera.index", def.Camera.Index)
	l.v.SetDefault("camera.width", def.Camera.Width)
	l.v.SetDefault("camera.height", def.Camera.Height)
	l.v.SetDefault("camera.fps", def.Camera.FPS)
	l.v.SetDefault("camera.autofocus", def.Camera.Autofocus)

	l.v.SetDefault("ocr.default_mode", def.OCR.DefaultMode)
	l.v.SetDefault("ocr.default_threshold", def.OCR.DefaultThreshold)
	l.v.SetDefault("ocr.noise_kernel_size", def.OCR.NoiseKernelSize)
	l.v.SetDefault("ocr.adaptive_block_size", def.OCR.AdaptiveBlockSize)
	l.v.SetDefault("ocr.adaptive_constant", def.OCR.AdaptiveConstant)
	l.v.SetDefault("ocr.morph_kernel_size", def.OCR.MorphKernelSize)
	l.v.SetDefault("ocr.morph_iterations", def.OCR.MorphIterations)

	l.v.SetDefault("tesseract.lang", def.Tesseract.Lang)
	l.v.SetDefault("tesseract.psm", def.Tesseract.PSM)
	l.v.SetDefault("tesseract.oem", def.Tesseract.OEM)
	l.v.SetDefault("tesseract.tessdata_prefix", def.Tesseract.TessdataPrefix)

	l.v.SetDefault("display.max_width", def.Display.MaxWidth)
	l.v.SetDefault("display.max_height", def.Display.MaxHeight)
	l.v.SetDefault("display.box_color", def.Display.BoxColor)
	l.v.SetDefault("display.box_thickness", def.Display.BoxThickness)

	l.v.SetDefault("files.max_dimension", def.Files.MaxDimension)
	l.v.SetDefault("files.jpeg_quality", def.Files.JPEGQuality)
}
