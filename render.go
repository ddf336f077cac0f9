package truenetwork

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// textFace renders element text. basicfont is 7x13 and needs no loading.
var textFace = text.NewGoXFace(basicfont.Face7x13)

const textPadding = 12.0

// Draw renders the page: normal flow first, then fixed elements in ZIndex
// order, then the FPS overlay. Queued screenshots are captured last.
func (p *Page) Draw(screen *ebiten.Image) {
	var t0 time.Time
	var stats debugStats
	if p.debug {
		t0 = time.Now()
	}

	screen.Fill(p.ClearColor.toRGBA())
	p.drawElement(screen, p.root, 0, 1, false, &stats)
	for _, el := range p.fixedLayer() {
		p.drawElement(screen, el, 0, 1, true, &stats)
	}
	if p.fps != nil {
		p.fps.draw(screen)
	}

	if p.debug {
		stats.drawTime = time.Since(t0)
		stats.frames = p.frames.Frames()
		stats.scrollY = p.scrollY
		p.debugLog(stats)
	}
	p.flushScreenshots(screen)
}

// drawElement paints e and its subtree. offsetY and alpha accumulate down
// the tree the way CSS transforms and opacity do.
func (p *Page) drawElement(screen *ebiten.Image, e *Element, offsetY, alpha float64, fixedPass bool, stats *debugStats) {
	if !e.shown {
		return
	}
	if e.Fixed && !fixedPass {
		return
	}
	offsetY += e.OffsetY
	alpha *= e.Alpha
	if alpha <= 0 {
		return
	}

	r := e.bounds
	r.Y += offsetY
	if !e.inFixed {
		r.Y -= p.scrollY
	}
	visible := r.Intersects(Rect{Width: p.viewport.Width, Height: p.viewport.Height})

	if visible {
		stats.elements++
		if e.Background.A > 0 {
			vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
				e.Background.WithAlpha(e.Background.A*alpha).toRGBA(), false)
		}
		if e.Border.A > 0 {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height),
				1, e.Border.WithAlpha(e.Border.A*alpha).toRGBA(), false)
		}
		p.drawCanvas(screen, e, r, alpha)
		drawText(screen, e, r, alpha)
	}

	for _, c := range e.children {
		p.drawElement(screen, c, offsetY, alpha, fixedPass, stats)
	}
}

func (p *Page) drawCanvas(screen *ebiten.Image, e *Element, r Rect, alpha float64) {
	for _, cb := range p.canvases {
		if cb.el != e {
			continue
		}
		img := cb.surface.Image()
		if img == nil {
			return
		}
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(r.X, r.Y)
		op.ColorScale.ScaleAlpha(float32(alpha))
		screen.DrawImage(img, &op)
		return
	}
}

// drawText writes the element's text, or its input value, left-aligned and
// vertically centered.
func drawText(screen *ebiten.Image, e *Element, r Rect, alpha float64) {
	s := e.Text
	if e.Tag == "input" {
		s = e.Value
		if s == "" {
			s, _ = e.Attr("placeholder")
		}
	}
	if s == "" {
		return
	}
	_, h := text.Measure(s, textFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(r.X+textPadding, r.Y+(min(r.Height, 48)-h)/2)
	op.ColorScale.ScaleWithColor(e.Foreground.toRGBA())
	op.ColorScale.ScaleAlpha(float32(alpha))
	text.Draw(screen, s, textFace, op)
}
