package preprocess

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// Mode selects the preprocessing strategy applied before recognition.
type Mode int

const (
	// ModeGrayscale converts to grayscale and denoises only.
	ModeGrayscale Mode = iota
	// ModeThreshold applies a global binary threshold after denoising.
	ModeThreshold
	// ModeAdaptiveThreshold applies a Gaussian-weighted local threshold,
	// useful under uneven lighting. The global threshold value is ignored.
	ModeAdaptiveThreshold
	// ModeMorphological applies a global threshold followed by a closing and
	// an opening to remove speckle noise and fill small gaps in strokes.
	ModeMorphological
)

var (
	// ErrUnknownMode is returned when a Mode value is outside the known set.
	ErrUnknownMode = errors.New("unknown preprocessing mode")
	// ErrInvalidThreshold is returned when a threshold is outside [0, 255].
	ErrInvalidThreshold = errors.New("threshold out of range [0, 255]")
)

// String returns the human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeGrayscale:
		return "grayscale"
	case ModeThreshold:
		return "threshold"
	case ModeAdaptiveThreshold:
		return "adaptive-threshold"
	case ModeMorphological:
		return "morphological"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode. Unknown names fail with
// ErrUnknownMode rather than falling back to a default.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "grayscale":
		return ModeGrayscale, nil
	case "threshold":
		return ModeThreshold, nil
	case "adaptive-threshold", "adaptive":
		return ModeAdaptiveThreshold, nil
	case "morphological", "morph":
		return ModeMorphological, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
}

// Config holds tuning parameters for the preprocessing stages.
type Config struct {
	NoiseKernelSize   int // median filter window, must be odd
	AdaptiveBlockSize int // neighborhood for adaptive threshold, must be odd
	AdaptiveConstant  int // constant subtracted from the local mean
	MorphKernelSize   int // square structuring element size
	MorphIterations   int // iterations for each morphological pass
}

// DefaultConfig returns the default preprocessing configuration.
func DefaultConfig() Config {
	return Config{
		NoiseKernelSize:   5,
		AdaptiveBlockSize: 11,
		AdaptiveConstant:  2,
		MorphKernelSize:   3,
		MorphIterations:   1,
	}
}

// Validate checks the configuration for usable values.
func (c Config) Validate() error {
	if c.NoiseKernelSize < 1 || c.NoiseKernelSize%2 == 0 {
		return fmt.Errorf("noise kernel size must be a positive odd number, got %d", c.NoiseKernelSize)
	}
	if c.AdaptiveBlockSize < 3 || c.AdaptiveBlockSize%2 == 0 {
		return fmt.Errorf("adaptive block size must be an odd number >= 3, got %d", c.AdaptiveBlockSize)
	}
	if c.MorphKernelSize < 1 {
		return fmt.Errorf("morphological kernel size must be positive, got %d", c.MorphKernelSize)
	}
	if c.MorphIterations < 1 {
		return fmt.Errorf("morphological iterations must be positive, got %d", c.MorphIterations)
	}
	return nil
}

// Preprocess transforms an image into a recognition-ready single-channel
// buffer using the default configuration. The input is never mutated; the
// result is always a new buffer. A nil or zero-area image is returned
// unchanged, since preprocessing nothing is a no-op rather than an error.
func Preprocess(img image.Image, mode Mode, threshold int) (image.Image, error) {
	return PreprocessWithConfig(img, mode, threshold, DefaultConfig())
}

// PreprocessWithConfig is like Preprocess with explicit tuning parameters.
func PreprocessWithConfig(img image.Image, mode Mode, threshold int, cfg Config) (image.Image, error) {
	if img == nil {
		return nil, nil
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return img, nil
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if mode == ModeThreshold || mode == ModeMorphological {
		if threshold < 0 || threshold > 255 {
			return nil, fmt.Errorf("%w: %d", ErrInvalidThreshold, threshold)
		}
	}

	denoised := MedianFilter(toGray(img), cfg.NoiseKernelSize)

	switch mode {
	case ModeGrayscale:
		return denoised, nil
	case ModeThreshold:
		return BinaryThreshold(denoised, uint8(threshold)), nil
	case ModeAdaptiveThreshold:
		return AdaptiveThreshold(denoised, cfg.AdaptiveBlockSize, cfg.AdaptiveConstant), nil
	case ModeMorphological:
		binary := BinaryThreshold(denoised, uint8(threshold))
		morph := Close(binary, cfg.MorphKernelSize, cfg.MorphIterations)
		return Open(morph, cfg.MorphKernelSize, cfg.MorphIterations), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, mode)
	}
}

// toGray converts an image to a single-channel grayscale buffer. A *image.Gray
// input is copied rather than aliased so downstream stages never share pixels
// with the caller.
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	dst := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	if g, ok := img.(*image.Gray); ok {
		draw.Draw(dst, dst.Bounds(), g, b.Min, draw.Src)
		return dst
	}
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
