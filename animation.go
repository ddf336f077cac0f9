package truenetwork

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on an Element simultaneously.
// Create one via the convenience constructors (TweenAlpha, TweenOffsetY,
// TweenFadeIn) and either call Update(dt) each frame or hand it to
// Page.AddTween.
type TweenGroup struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	target *Element
	delay  float32
	Done   bool
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. While a delay is pending nothing is written.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.delay > 0 {
		g.delay -= dt
		if g.delay > 0 {
			return
		}
		// Carry the part of dt that outlived the delay into the tween.
		dt = -g.delay
		g.delay = 0
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// WithDelay postpones the start of the group by d seconds, like a CSS
// transition-delay, and returns g.
func (g *TweenGroup) WithDelay(d float32) *TweenGroup {
	g.delay = d
	return g
}

// Target returns the element the group writes to.
func (g *TweenGroup) Target() *Element {
	return g.target
}

// TweenAlpha creates a TweenGroup that animates el.Alpha to the target value
// over the specified duration using the easing function.
func TweenAlpha(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: el}
	g.tweens[0] = gween.New(float32(el.Alpha), float32(to), duration, fn)
	g.fields[0] = &el.Alpha
	return g
}

// TweenOffsetY creates a TweenGroup that animates el.OffsetY, the element's
// vertical translation.
func TweenOffsetY(el *Element, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1, target: el}
	g.tweens[0] = gween.New(float32(el.OffsetY), float32(to), duration, fn)
	g.fields[0] = &el.OffsetY
	return g
}

// TweenFadeIn creates a TweenGroup that animates el.Alpha to 1 and el.OffsetY
// to 0 together.
func TweenFadeIn(el *Element, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2, target: el}
	g.tweens[0] = gween.New(float32(el.Alpha), 1, duration, fn)
	g.tweens[1] = gween.New(float32(el.OffsetY), 0, duration, fn)
	g.fields[0] = &el.Alpha
	g.fields[1] = &el.OffsetY
	return g
}

// TweenColor creates a TweenGroup that animates all four components of
// el.Background to the target color.
func TweenColor(el *Element, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 4, target: el}
	g.tweens[0] = gween.New(float32(el.Background.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(el.Background.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(el.Background.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(el.Background.A), float32(to.A), duration, fn)
	g.fields[0] = &el.Background.R
	g.fields[1] = &el.Background.G
	g.fields[2] = &el.Background.B
	g.fields[3] = &el.Background.A
	return g
}
