package preprocess

import (
	"image"
	"sort"
)

// MedianFilter suppresses isolated pixel noise by replacing each pixel with
// the median of its size x size neighborhood. Edges are handled by clamping
// neighbor coordinates to the image bounds (border replication). A size of 1
// returns a plain copy.
func MedianFilter(src *image.Gray, size int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	base := src.PixOffset(b.Min.X, b.Min.Y)
	if size <= 1 {
		copyGray(dst, src)
		return dst
	}

	half := size / 2
	window := make([]uint8, 0, size*size)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			window = window[:0]
			for ky := -half; ky <= half; ky++ {
				for kx := -half; kx <= half; kx++ {
					nx := clampInt(x+kx, 0, w-1)
					ny := clampInt(y+ky, 0, h-1)
					window = append(window, src.Pix[base+ny*src.Stride+nx])
				}
			}
			sort.Slice(window, func(i, j int) bool { return window[i] < window[j] })
			dst.Pix[y*dst.Stride+x] = window[len(window)/2]
		}
	}
	return dst
}

// copyGray copies src's pixels into the origin-anchored dst row by row, so
// sub-images with a non-zero Min and a wider backing stride copy correctly.
func copyGray(dst, src *image.Gray) {
	b := src.Bounds()
	w := b.Dx()
	for y := 0; y < b.Dy(); y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src.Pix[off:off+w])
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
