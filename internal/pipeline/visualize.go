package pipeline

import (
	"image"
	"image/color"

	"github.com/MeKo-Tech/textscan/internal/recognize"
	"github.com/MeKo-Tech/textscan/internal/utils"
)

// RenderOverlay draws detection boxes over the image and returns an RGBA
// copy. The input is never modified.
func RenderOverlay(img image.Image, detections []recognize.Detection, boxColor color.Color, thickness int) *image.RGBA {
	if img == nil {
		return nil
	}
	dst := utils.CloneRGBA(img)
	for _, d := range detections {
		rect := image.Rect(d.X, d.Y, d.X+d.Width, d.Y+d.Height)
		utils.DrawRect(dst, rect, boxColor, thickness)
	}
	return dst
}
