package utils

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
)

// CropImageRect returns a copy of the sub-image described by rect, clipped to
// the image bounds. An empty intersection yields an empty image.
func CropImageRect(img image.Image, rect image.Rectangle) image.Image {
	r := rect.Intersect(img.Bounds())
	return imaging.Crop(img, r)
}

// ScaleToFit resizes the image to fit within maxW x maxH while preserving
// aspect ratio, never scaling up. This produces the display-space render that
// interactive selections are drawn against.
func ScaleToFit(img image.Image, maxW, maxH int) image.Image {
	b := img.Bounds()
	if b.Dx() <= maxW && b.Dy() <= maxH {
		return imaging.Clone(img)
	}
	return imaging.Fit(img, maxW, maxH, imaging.Lanczos)
}

// CloneRGBA copies an image into a fresh RGBA buffer anchored at the origin.
func CloneRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}

// DrawRect draws a rectangle outline with the given thickness, clamped to the
// destination bounds.
func DrawRect(dst *image.RGBA, rect image.Rectangle, col color.Color, thickness int) {
	if dst == nil || thickness <= 0 {
		return
	}
	r := rect.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	for t := 0; t < thickness; t++ {
		top := r.Min.Y + t
		bottom := r.Max.Y - 1 - t
		for x := r.Min.X; x < r.Max.X; x++ {
			if top < r.Max.Y {
				dst.Set(x, top, col)
			}
			if bottom >= r.Min.Y && bottom != top {
				dst.Set(x, bottom, col)
			}
		}
		left := r.Min.X + t
		right := r.Max.X - 1 - t
		for y := r.Min.Y; y < r.Max.Y; y++ {
			if left < r.Max.X {
				dst.Set(left, y, col)
			}
			if right >= r.Min.X && right != left {
				dst.Set(right, y, col)
			}
		}
	}
}
