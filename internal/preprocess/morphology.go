package preprocess

import "image"

// Dilate expands bright regions: each pixel becomes the maximum within the
// square structuring element. Out-of-bounds neighbors are ignored.
func Dilate(src *image.Gray, kernelSize int) *image.Gray {
	return morph(src, kernelSize, func(best, v uint8) bool { return v > best }, 0)
}

// Erode shrinks bright regions: each pixel becomes the minimum within the
// square structuring element. Out-of-bounds neighbors are ignored.
func Erode(src *image.Gray, kernelSize int) *image.Gray {
	return morph(src, kernelSize, func(best, v uint8) bool { return v < best }, 255)
}

// Close fills small gaps in strokes by dilating then eroding.
func Close(src *image.Gray, kernelSize, iterations int) *image.Gray {
	result := src
	for it := 0; it < iterations; it++ {
		result = Erode(Dilate(result, kernelSize), kernelSize)
	}
	return result
}

// Open removes speckles smaller than the structuring element by eroding then
// dilating.
func Open(src *image.Gray, kernelSize, iterations int) *image.Gray {
	result := src
	for it := 0; it < iterations; it++ {
		result = Dilate(Erode(result, kernelSize), kernelSize)
	}
	return result
}

func morph(src *image.Gray, kernelSize int, better func(best, v uint8) bool, seed uint8) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if kernelSize <= 1 {
		copyGray(dst, src)
		return dst
	}

	base := src.PixOffset(b.Min.X, b.Min.Y)
	half := kernelSize / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			best := seed
			for ky := -half; ky <= half; ky++ {
				ny := y + ky
				if ny < 0 || ny >= h {
					continue
				}
				for kx := -half; kx <= half; kx++ {
					nx := x + kx
					if nx < 0 || nx >= w {
						continue
					}
					if v := src.Pix[base+ny*src.Stride+nx]; better(best, v) {
						best = v
					}
				}
			}
			dst.Pix[y*dst.Stride+x] = best
		}
	}
	return dst
}
