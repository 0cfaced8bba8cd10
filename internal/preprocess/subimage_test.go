package preprocess

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/MeKo-Tech/textscan/internal/testutil"
)

// reanchor copies a region of img into a fresh buffer with origin-anchored
// bounds, the reference a sub-image result must match.
func reanchor(img *image.Gray, region image.Rectangle) *image.Gray {
	dst := image.NewGray(image.Rect(0, 0, region.Dx(), region.Dy()))
	for y := 0; y < region.Dy(); y++ {
		for x := 0; x < region.Dx(); x++ {
			dst.SetGray(x, y, img.GrayAt(region.Min.X+x, region.Min.Y+y))
		}
	}
	return dst
}

func TestKernels_SubImageMatchesReanchoredCopy(t *testing.T) {
	full := testutil.GenerateGradient(40, 40)
	block := image.Rect(14, 14, 24, 24)
	for y := block.Min.Y; y < block.Max.Y; y++ {
		for x := block.Min.X; x < block.Max.X; x++ {
			full.Pix[y*full.Stride+x] = 255
		}
	}

	region := image.Rect(10, 10, 30, 30)
	sub, ok := full.SubImage(region).(*image.Gray)
	require.True(t, ok)
	anchored := reanchor(full, region)

	tests := []struct {
		name  string
		apply func(*image.Gray) *image.Gray
	}{
		{"median", func(g *image.Gray) *image.Gray { return MedianFilter(g, 3) }},
		{"median size 1", func(g *image.Gray) *image.Gray { return MedianFilter(g, 1) }},
		{"binary threshold", func(g *image.Gray) *image.Gray { return BinaryThreshold(g, 127) }},
		{"adaptive threshold", func(g *image.Gray) *image.Gray { return AdaptiveThreshold(g, 11, 2) }},
		{"dilate", func(g *image.Gray) *image.Gray { return Dilate(g, 3) }},
		{"erode", func(g *image.Gray) *image.Gray { return Erode(g, 3) }},
		{"morph kernel 1", func(g *image.Gray) *image.Gray { return Dilate(g, 1) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fromSub := tt.apply(sub)
			fromAnchored := tt.apply(anchored)
			require.Equal(t, fromAnchored.Bounds(), fromSub.Bounds())
			require.Equal(t, fromAnchored.Pix, fromSub.Pix,
				"sub-image input must produce the same pixels as an anchored copy")
		})
	}
}
