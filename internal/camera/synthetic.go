package camera

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SyntheticSource renders generated frames instead of reading a device. It
// stands in for real camera hardware, which is out of scope: the rest of the
// system only ever sees decoded pixel buffers. Each frame is a light page
// with a line of printed text, so the live-scan path exercises the full
// pipeline end to end.
type SyntheticSource struct {
	mu    sync.Mutex
	opts  Options
	open  bool
	tick  int
	Lines []string // text drawn on frames; defaults to a sample line
}

// NewSyntheticSource creates a closed synthetic source.
func NewSyntheticSource() *SyntheticSource {
	return &SyntheticSource{Lines: []string{"The quick brown fox"}}
}

// Open marks the source available at the requested geometry.
func (s *SyntheticSource) Open(opts Options) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.opts = opts
	s.open = true
	s.tick = 0
	return nil
}

// ReadFrame renders the next frame.
func (s *SyntheticSource) ReadFrame() (image.Image, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return nil, ErrNotAvailable
	}
	s.tick++
	return s.render(), nil
}

// Release closes the source.
func (s *SyntheticSource) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// IsAvailable reports whether the source is open.
func (s *SyntheticSource) IsAvailable() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

func (s *SyntheticSource) render() *image.RGBA {
	w, h := s.opts.Width, s.opts.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{color.RGBA{R: 235, G: 235, B: 235, A: 255}}, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	lineHeight := face.Metrics().Height.Ceil() + 4
	startY := h/3 + (s.tick%8)*2 // slight vertical drift between frames
	drawer := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	for i, line := range s.Lines {
		drawer.Dot = fixed.P(w/8, startY+i*lineHeight)
		drawer.DrawString(line)
	}
	return img
}
