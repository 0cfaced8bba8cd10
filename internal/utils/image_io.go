package utils

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Supported file extensions for loading and saving.
var SupportedImageExtensions = []string{".jpg", ".jpeg", ".png", ".bmp", ".tiff", ".tif"}

var (
	// ErrFileNotFound is returned when the image file does not exist.
	ErrFileNotFound = errors.New("image file not found")
	// ErrUnsupportedFormat is returned for unknown extensions or data that
	// cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported or corrupt image format")
)

// MaxImageDimension caps the width or height of loaded images.
const MaxImageDimension = 4096

// DefaultJPEGQuality is the quality used when saving JPEG output.
const DefaultJPEGQuality = 95

// IsSupportedImage reports whether the path has a supported image extension.
func IsSupportedImage(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, s := range SupportedImageExtensions {
		if ext == s {
			return true
		}
	}
	return false
}

// ImageMetadata captures lightweight file and pixel information.
type ImageMetadata struct {
	Path      string
	Format    string
	SizeBytes int64
	Width     int
	Height    int
}

// LoadImage opens and decodes an image file, returning the image and metadata.
// Missing files surface as ErrFileNotFound, unknown extensions and decode
// failures as ErrUnsupportedFormat; both are recoverable in the host.
func LoadImage(path string) (image.Image, ImageMetadata, error) {
	if path == "" {
		return nil, ImageMetadata{}, fmt.Errorf("%w: empty path", ErrFileNotFound)
	}
	if !IsSupportedImage(path) {
		return nil, ImageMetadata{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
	}

	f, err := os.Open(path) //nolint:gosec // G304: reading a user-provided image path is expected
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ImageMetadata{}, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, ImageMetadata{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error closing image file: %v\n", cerr)
		}
	}()

	fi, statErr := f.Stat()
	if statErr != nil {
		return nil, ImageMetadata{}, fmt.Errorf("stat %s: %w", path, statErr)
	}

	img, format, decErr := image.Decode(f)
	if decErr != nil {
		return nil, ImageMetadata{}, fmt.Errorf("%w: %v", ErrUnsupportedFormat, decErr)
	}

	b := img.Bounds()
	if b.Dx() > MaxImageDimension || b.Dy() > MaxImageDimension {
		return nil, ImageMetadata{}, fmt.Errorf(
			"image too large: %dx%d exceeds maximum dimension %d", b.Dx(), b.Dy(), MaxImageDimension)
	}

	meta := ImageMetadata{
		Path:      path,
		Format:    format,
		SizeBytes: fi.Size(),
		Width:     b.Dx(),
		Height:    b.Dy(),
	}
	return img, meta, nil
}

// SaveImage encodes the image to the format implied by the path extension.
func SaveImage(img image.Image, path string) error {
	if img == nil {
		return errors.New("cannot save nil image")
	}
	ext := strings.ToLower(filepath.Ext(path))

	f, err := os.Create(path) //nolint:gosec // G304: writing a user-provided output path is expected
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error closing output file: %v\n", cerr)
		}
	}()

	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: DefaultJPEGQuality})
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tiff", ".tif":
		err = tiff.Encode(f, img, nil)
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
