// Package testutil provides synthetic image generators for pipeline and
// preprocessing tests.
package testutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// ImageSize represents common image dimensions.
type ImageSize struct {
	Width  int
	Height int
}

var (
	// Common test image sizes.
	SmallSize  = ImageSize{320, 240}
	MediumSize = ImageSize{640, 480}
)

// TextImageConfig holds configuration for generating text images.
type TextImageConfig struct {
	Text       string
	Size       ImageSize
	Background color.Color
	Foreground color.Color
	FontFace   font.Face
}

// DefaultTextImageConfig returns a default configuration for text images.
func DefaultTextImageConfig() TextImageConfig {
	return TextImageConfig{
		Text:       "Sample Text",
		Size:       MediumSize,
		Background: color.White,
		Foreground: color.Black,
		FontFace:   basicfont.Face7x13,
	}
}

// GenerateTextImage creates a synthetic image with a centered line of text.
func GenerateTextImage(cfg TextImageConfig) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Size.Width, cfg.Size.Height))
	draw.Draw(img, img.Bounds(), &image.Uniform{cfg.Background}, image.Point{}, draw.Src)

	drawer := &font.Drawer{
		Dst:  img,
		Src:  &image.Uniform{cfg.Foreground},
		Face: cfg.FontFace,
	}
	textWidth := drawer.MeasureString(cfg.Text).Ceil()
	drawer.Dot = fixed.P((cfg.Size.Width-textWidth)/2, cfg.Size.Height/2)
	drawer.DrawString(cfg.Text)
	return img
}

// GenerateGradient creates a grayscale image whose intensity ramps from 0 on
// the left edge to 255 on the right edge.
func GenerateGradient(width, height int) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(x * 255 / max(width-1, 1))
			img.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return img
}

// GenerateSpeckled creates a binary image containing a solid bright block and
// a set of isolated single bright pixels, for morphological cleanup tests.
// Block and speckle positions are fixed so tests are deterministic.
func GenerateSpeckled(width, height int, block image.Rectangle, speckles []image.Point) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := block.Min.Y; y < block.Max.Y; y++ {
		for x := block.Min.X; x < block.Max.X; x++ {
			img.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	for _, p := range speckles {
		img.SetGray(p.X, p.Y, color.Gray{Y: 255})
	}
	return img
}

// GenerateUniform creates a grayscale image filled with one value.
func GenerateUniform(width, height int, value uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, width, height))
	for i := range img.Pix {
		img.Pix[i] = value
	}
	return img
}
