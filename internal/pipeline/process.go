package pipeline

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"github.com/MeKo-Tech/textscan/internal/coords"
	"github.com/MeKo-Tech/textscan/internal/preprocess"
	"github.com/MeKo-Tech/textscan/internal/recognize"
	"github.com/MeKo-Tech/textscan/internal/utils"
)

// ErrEmptyROI is returned when a region of interest has zero area. This is a
// selection error, distinct from "no text found".
var ErrEmptyROI = errors.New("region of interest has zero area")

// OverlayResult pairs the original, unprocessed image with the text blocks
// detected in it. Detections are expressed in the image's own pixel space;
// drawing is left to the presentation layer.
type OverlayResult struct {
	Image      image.Image
	Detections []recognize.Detection
}

// RunFullImageOCR preprocesses the image and extracts its text. An absent or
// zero-area image yields "" without invoking the recognition engine; an empty
// string on a real image simply means no text was detected, and how to
// present that is the caller's decision.
func (p *Pipeline) RunFullImageOCR(img image.Image, mode preprocess.Mode, threshold int) (string, error) {
	if emptyImage(img) {
		return "", nil
	}
	b := img.Bounds()
	slog.Debug("running full-image OCR", "width", b.Dx(), "height", b.Dy(), "mode", mode.String())

	processed, err := preprocess.PreprocessWithConfig(img, mode, threshold, p.cfg.Preprocess)
	if err != nil {
		return "", err
	}
	return p.adapter.RecognizeText(processed)
}

// RunROIOCR crops the image to a region of interest already expressed in
// source-image pixel space (the caller maps display selections through
// coords.ToSourceSpace first) and runs the full-image path on the crop. A
// zero-area region fails before any engine work.
func (p *Pipeline) RunROIOCR(img image.Image, roi coords.Rectangle, mode preprocess.Mode, threshold int) (string, error) {
	if roi.Empty() {
		return "", fmt.Errorf("%w: %dx%d", ErrEmptyROI, roi.Width, roi.Height)
	}
	if emptyImage(img) {
		return "", nil
	}

	rect := image.Rect(roi.X, roi.Y, roi.X+roi.Width, roi.Y+roi.Height)
	crop := utils.CropImageRect(img, rect)
	if emptyImage(crop) {
		return "", fmt.Errorf("%w: selection lies outside the image", ErrEmptyROI)
	}
	return p.RunFullImageOCR(crop, mode, threshold)
}

// RunOverlayDetection preprocesses the image, detects text blocks, and
// returns the original image reference together with the detection list.
func (p *Pipeline) RunOverlayDetection(img image.Image, mode preprocess.Mode, threshold int) (*OverlayResult, error) {
	if emptyImage(img) {
		return &OverlayResult{Image: img}, nil
	}
	b := img.Bounds()
	slog.Debug("running overlay detection", "width", b.Dx(), "height", b.Dy(), "mode", mode.String())

	processed, err := preprocess.PreprocessWithConfig(img, mode, threshold, p.cfg.Preprocess)
	if err != nil {
		return nil, err
	}
	detections, err := p.adapter.DetectBlocks(processed)
	if err != nil {
		return nil, err
	}
	return &OverlayResult{Image: img, Detections: detections}, nil
}

func emptyImage(img image.Image) bool {
	if img == nil {
		return true
	}
	b := img.Bounds()
	return b.Dx() == 0 || b.Dy() == 0
}
