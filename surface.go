package truenetwork

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface is the 2D drawing region the network animation renders into.
// Measure synchronises the backing store with the host's current size and
// returns it, the way a canvas copies offsetWidth/offsetHeight into its
// width/height.
type Surface interface {
	Measure() (width, height int)
	Clear()
	StrokeLine(x0, y0, x1, y1, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
}

// ImageSurface is a Surface backed by an offscreen ebiten image. The size is
// taken from a host function, usually the bounds of the canvas element.
type ImageSurface struct {
	host      func() (int, int)
	img       *ebiten.Image
	antialias bool
}

// NewImageSurface creates a surface that sizes itself from host. The image
// is allocated lazily on the first Measure.
func NewImageSurface(host func() (int, int)) *ImageSurface {
	return &ImageSurface{host: host, antialias: true}
}

// NewElementSurface binds a surface to an element's layout size.
func NewElementSurface(el *Element) *ImageSurface {
	return NewImageSurface(func() (int, int) {
		return int(el.Width), int(el.Height)
	})
}

// Measure reallocates the image when the host size changed.
func (s *ImageSurface) Measure() (int, int) {
	w, h := s.host()
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	if s.img != nil {
		b := s.img.Bounds()
		if b.Dx() == w && b.Dy() == h {
			return w, h
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(w, h)
	return w, h
}

// Image returns the backing image, or nil before the first Measure.
func (s *ImageSurface) Image() *ebiten.Image {
	return s.img
}

// SetAntialias toggles vector antialiasing for subsequent draws.
func (s *ImageSurface) SetAntialias(on bool) {
	s.antialias = on
}

// Clear erases the image to transparent.
func (s *ImageSurface) Clear() {
	if s.img != nil {
		s.img.Clear()
	}
}

// StrokeLine draws a straight segment.
func (s *ImageSurface) StrokeLine(x0, y0, x1, y1, width float64, c Color) {
	if s.img == nil {
		return
	}
	vector.StrokeLine(s.img, float32(x0), float32(y0), float32(x1), float32(y1),
		float32(width), c.toRGBA(), s.antialias)
}

// FillCircle draws a filled disc.
func (s *ImageSurface) FillCircle(cx, cy, r float64, c Color) {
	if s.img == nil {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c.toRGBA(), s.antialias)
}
