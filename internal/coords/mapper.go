// Package coords converts rectangles between the scaled display coordinate
// space and the full-resolution source image coordinate space. A selection is
// always drawn against the scaled render, so every crop against the captured
// image has to pass through this mapping.
package coords

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroDisplay is returned when a display dimension is zero, which would
// make the scale factors undefined.
var ErrZeroDisplay = errors.New("display size has a zero dimension")

// Rectangle is an axis-aligned rectangle in pixel coordinates.
type Rectangle struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Empty reports whether the rectangle has no area.
func (r Rectangle) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// Size is a width/height pair in pixels.
type Size struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ToSourceSpace maps a rectangle drawn on a scaled display into the source
// image's pixel space. The result is clamped so it lies fully inside the
// source image and has strictly positive area.
func ToSourceSpace(displayRect Rectangle, display, source Size) (Rectangle, error) {
	if display.Width == 0 || display.Height == 0 {
		return Rectangle{}, fmt.Errorf("%w: %dx%d", ErrZeroDisplay, display.Width, display.Height)
	}
	sx := float64(source.Width) / float64(display.Width)
	sy := float64(source.Height) / float64(display.Height)
	mapped := Rectangle{
		X:      round(float64(displayRect.X) * sx),
		Y:      round(float64(displayRect.Y) * sy),
		Width:  round(float64(displayRect.Width) * sx),
		Height: round(float64(displayRect.Height) * sy),
	}
	return clampToBounds(mapped, source), nil
}

// ToDisplaySpace maps a source-space rectangle back onto the scaled display,
// the inverse of ToSourceSpace. Overlay boxes computed against the captured
// resolution go through this before being painted on the render.
func ToDisplaySpace(sourceRect Rectangle, display, source Size) (Rectangle, error) {
	if source.Width == 0 || source.Height == 0 {
		return Rectangle{}, fmt.Errorf("%w: %dx%d", ErrZeroDisplay, source.Width, source.Height)
	}
	sx := float64(display.Width) / float64(source.Width)
	sy := float64(display.Height) / float64(source.Height)
	mapped := Rectangle{
		X:      round(float64(sourceRect.X) * sx),
		Y:      round(float64(sourceRect.Y) * sy),
		Width:  round(float64(sourceRect.Width) * sx),
		Height: round(float64(sourceRect.Height) * sy),
	}
	return clampToBounds(mapped, display), nil
}

// clampToBounds forces the rectangle inside [0,bounds.Width) x [0,bounds.Height)
// while keeping at least a 1x1 area.
func clampToBounds(r Rectangle, bounds Size) Rectangle {
	if r.X < 0 {
		r.X = 0
	}
	if r.X > bounds.Width-1 {
		r.X = bounds.Width - 1
	}
	if r.Y < 0 {
		r.Y = 0
	}
	if r.Y > bounds.Height-1 {
		r.Y = bounds.Height - 1
	}
	if r.Width < 1 {
		r.Width = 1
	}
	if r.X+r.Width > bounds.Width {
		r.Width = bounds.Width - r.X
	}
	if r.Height < 1 {
		r.Height = 1
	}
	if r.Y+r.Height > bounds.Height {
		r.Height = bounds.Height - r.Y
	}
	return r
}

func round(v float64) int { return int(math.Round(v)) }
