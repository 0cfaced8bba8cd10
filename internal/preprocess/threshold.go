package preprocess

import (
	"image"
	"math"
)

const (
	onPixel  = 255
	offPixel = 0
)

// BinaryThreshold applies a global binary threshold: pixels strictly above
// cutoff become 255, all others 0.
func BinaryThreshold(src *image.Gray, cutoff uint8) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[off : off+w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x, v := range row {
			if v > cutoff {
				out[x] = onPixel
			} else {
				out[x] = offPixel
			}
		}
	}
	return dst
}

// AdaptiveThreshold binarizes using a per-pixel cutoff computed as the
// Gaussian-weighted mean of the blockSize x blockSize neighborhood minus a
// constant offset. This tracks local illumination, so the caller supplies no
// global threshold. The Gaussian weighting is applied separably with border
// replication.
func AdaptiveThreshold(src *image.Gray, blockSize, constant int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if blockSize < 3 {
		blockSize = 3
	}
	if blockSize%2 == 0 {
		blockSize++
	}

	kernel := gaussianKernel(blockSize)
	half := blockSize / 2

	// Horizontal pass into a float buffer, then vertical pass.
	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[off : off+w]
		for x := 0; x < w; x++ {
			var sum float64
			for k := -half; k <= half; k++ {
				sum += kernel[k+half] * float64(row[clampInt(x+k, 0, w-1)])
			}
			tmp[y*w+x] = sum
		}
	}
	for y := 0; y < h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[off : off+w]
		out := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := 0; x < w; x++ {
			var mean float64
			for k := -half; k <= half; k++ {
				mean += kernel[k+half] * tmp[clampInt(y+k, 0, h-1)*w+x]
			}
			cutoff := mean - float64(constant)
			if float64(row[x]) > cutoff {
				out[x] = onPixel
			} else {
				out[x] = offPixel
			}
		}
	}
	return dst
}

// gaussianKernel builds a normalized 1D Gaussian of the given odd size using
// the conventional sigma heuristic sigma = 0.3*((size-1)*0.5 - 1) + 0.8.
func gaussianKernel(size int) []float64 {
	sigma := 0.3*(float64(size-1)*0.5-1) + 0.8
	half := size / 2
	kernel := make([]float64, size)
	var sum float64
	for i := -half; i <= half; i++ {
		v := math.Exp(-float64(i*i) / (2 * sigma * sigma))
		kernel[i+half] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}
