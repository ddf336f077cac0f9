package truenetwork

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func drawStats(p *Page) debugStats {
	screen := ebiten.NewImage(int(p.viewport.Width), int(p.viewport.Height))
	var stats debugStats
	p.drawElement(screen, p.root, 0, 1, false, &stats)
	for _, el := range p.fixedLayer() {
		p.drawElement(screen, el, 0, 1, true, &stats)
	}
	return stats
}

func TestDrawSkipsOffscreenElements(t *testing.T) {
	ip := newInputPage()
	// root, header, menu, section, a, b, form, input, submit
	if got := drawStats(ip.Page).elements; got != 9 {
		t.Errorf("elements = %d, want 9", got)
	}
	ip.ScrollTo(500)
	// The header stays on screen; a, b and the form scrolled away.
	if got := drawStats(ip.Page).elements; got != 4 {
		t.Errorf("elements after scroll = %d, want 4", got)
	}
}

func TestDrawSkipsHiddenAndTransparent(t *testing.T) {
	ip := newInputPage()
	ip.form.Display = DisplayNone
	ip.Relayout()
	if got := drawStats(ip.Page).elements; got != 6 {
		t.Errorf("elements = %d, want 6", got)
	}
	ip.section.Alpha = 0
	if got := drawStats(ip.Page).elements; got != 3 {
		t.Errorf("elements = %d, want 3 with a transparent section", got)
	}
}

func TestFixedLayerOrder(t *testing.T) {
	p := NewPage(100, 100)
	low := NewElement("div", "low")
	low.Fixed = true
	low.ZIndex = 1
	high := NewElement("div", "high")
	high.Fixed = true
	high.ZIndex = 999
	nested := NewElement("div", "nested")
	nested.Fixed = true
	high.AddChild(nested)
	p.Root().AddChild(high)
	p.Root().AddChild(low)
	p.Relayout()

	layer := p.fixedLayer()
	if len(layer) != 2 || layer[0] != low || layer[1] != high {
		t.Errorf("layer = %v", layer)
	}
}

func TestPageDraw(t *testing.T) {
	l := NewLanding(DefaultLandingOptions())
	l.Page.tick(frameTime)
	screen := ebiten.NewImage(1280, 800)
	l.Page.Draw(screen)
	if len(l.Page.screenshotQueue) != 0 {
		t.Error("screenshot queue not flushed")
	}
}

func TestImageSurfaceMeasure(t *testing.T) {
	el := NewElement("canvas", "c")
	el.Width, el.Height = 200, 100
	s := NewElementSurface(el)
	if s.Image() != nil {
		t.Fatal("image allocated before Measure")
	}
	if w, h := s.Measure(); w != 200 || h != 100 {
		t.Fatalf("Measure = %dx%d", w, h)
	}
	img := s.Image()
	s.Measure()
	if s.Image() != img {
		t.Error("same size reallocated the image")
	}
	el.Width = 300
	s.Measure()
	if b := s.Image().Bounds(); b.Dx() != 300 || b.Dy() != 100 {
		t.Errorf("bounds = %v", b)
	}
	el.Width, el.Height = 0, 0
	if w, h := s.Measure(); w != 1 || h != 1 {
		t.Errorf("empty host = %dx%d, want 1x1", w, h)
	}
	s.Clear()
	s.StrokeLine(0, 0, 1, 1, 1, ColorWhite)
	s.FillCircle(0, 0, 1, ColorWhite)
}
