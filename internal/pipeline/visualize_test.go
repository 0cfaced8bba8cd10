package pipeline

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/textscan/internal/recognize"
	"github.com/MeKo-Tech/textscan/internal/testutil"
)

func TestRenderOverlay_DrawsBoxes(t *testing.T) {
	img := testutil.GenerateUniform(100, 100, 0)
	green := color.RGBA{G: 255, A: 255}
	detections := []recognize.Detection{
		{X: 10, Y: 10, Width: 30, Height: 20, Confidence: 90, Text: "hi"},
	}

	out := RenderOverlay(img, detections, green, 1)
	require.NotNil(t, out)

	// Box edges carry the overlay color; the interior keeps the background.
	assert.Equal(t, green, out.RGBAAt(10, 10))
	assert.Equal(t, green, out.RGBAAt(39, 29))
	assert.Equal(t, uint8(0), out.RGBAAt(25, 20).G)

	// The source image itself is untouched.
	assert.Equal(t, uint8(0), img.GrayAt(10, 10).Y)
}

func TestRenderOverlay_NilImage(t *testing.T) {
	assert.Nil(t, RenderOverlay(nil, nil, color.White, 1))
}

func TestRenderOverlay_NoDetectionsCopiesImage(t *testing.T) {
	img := testutil.GenerateUniform(10, 10, 128)
	out := RenderOverlay(img, nil, color.White, 2)
	require.NotNil(t, out)
	assert.Equal(t, uint8(128), out.RGBAAt(5, 5).R)
}
