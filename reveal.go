package truenetwork

import (
	"github.com/tanema/gween/ease"
)

// Insets grows (positive) or shrinks (negative) a rectangle on each side.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// IntersectionEntry reports how much of a target is inside the observer's
// root area.
type IntersectionEntry struct {
	Target         *Element
	Ratio          float64
	IsIntersecting bool
}

// IntersectionObserver watches elements against the visible part of the
// page, grown or shrunk by a margin. The callback receives the entries
// whose intersecting state changed since the previous check; the first
// check after Observe always reports.
type IntersectionObserver struct {
	page      *Page
	threshold float64
	margin    Insets
	callback  func([]IntersectionEntry)

	targets []*Element
	state   map[*Element]bool
	buf     []IntersectionEntry
}

// NewIntersectionObserver registers an observer that the page checks after
// every tick. An entry is intersecting when at least threshold of the
// target's area is inside the root area.
func (p *Page) NewIntersectionObserver(callback func([]IntersectionEntry), threshold float64, margin Insets) *IntersectionObserver {
	o := &IntersectionObserver{
		page:      p,
		threshold: threshold,
		margin:    margin,
		callback:  callback,
		state:     make(map[*Element]bool),
	}
	p.observers = append(p.observers, o)
	return o
}

// Observe starts watching el.
func (o *IntersectionObserver) Observe(el *Element) {
	o.targets = append(o.targets, el)
}

// Unobserve stops watching el.
func (o *IntersectionObserver) Unobserve(el *Element) {
	for i, t := range o.targets {
		if t == el {
			o.targets = append(o.targets[:i], o.targets[i+1:]...)
			break
		}
	}
	delete(o.state, el)
}

// Disconnect stops watching everything and detaches from the page.
func (o *IntersectionObserver) Disconnect() {
	o.targets = nil
	clear(o.state)
	for i, other := range o.page.observers {
		if other == o {
			o.page.observers = append(o.page.observers[:i], o.page.observers[i+1:]...)
			return
		}
	}
}

// rootRect returns the observed area in page coordinates.
func (o *IntersectionObserver) rootRect() Rect {
	vp := o.page.viewport
	return Rect{
		X:      -o.margin.Left,
		Y:      o.page.scrollY - o.margin.Top,
		Width:  vp.Width + o.margin.Left + o.margin.Right,
		Height: vp.Height + o.margin.Top + o.margin.Bottom,
	}
}

// ratio returns the visible fraction of el inside root.
func (o *IntersectionObserver) ratio(el *Element, root Rect) float64 {
	if !el.shown {
		return 0
	}
	b := el.bounds
	b.Y += el.offsetTotal()
	if el.inFixed {
		b.Y += o.page.scrollY
	}
	if b.Area() <= 0 {
		if root.Contains(b.X, b.Y) {
			return 1
		}
		return 0
	}
	return b.Intersection(root).Area() / b.Area()
}

func (o *IntersectionObserver) check() {
	if len(o.targets) == 0 {
		return
	}
	root := o.rootRect()
	o.buf = o.buf[:0]
	for _, el := range o.targets {
		r := o.ratio(el, root)
		in := r > 0 && r >= o.threshold
		prev, seen := o.state[el]
		if seen && prev == in {
			continue
		}
		o.state[el] = in
		o.buf = append(o.buf, IntersectionEntry{Target: el, Ratio: r, IsIntersecting: in})
	}
	if len(o.buf) > 0 {
		o.callback(o.buf)
	}
}

// RevealConfig controls the scroll-triggered fade-in.
type RevealConfig struct {
	// Threshold is the visible fraction that triggers the reveal.
	Threshold float64
	// Margin adjusts the viewport used for visibility checks.
	Margin Insets
	// Offset is the initial downward translation of hidden elements.
	Offset float64
	// Duration is the fade length in seconds.
	Duration float32
	// Stagger delays the n-th element by n*Stagger seconds.
	Stagger float32
	// Ease is the easing function for both alpha and offset.
	Ease ease.TweenFunc
}

// DefaultRevealConfig reveals elements once 10% of them is at least 100
// units above the bottom edge, fading up from 20 units over 0.6 s with a
// 0.1 s stagger.
func DefaultRevealConfig() RevealConfig {
	return RevealConfig{
		Threshold: 0.1,
		Margin:    Insets{Bottom: -100},
		Offset:    20,
		Duration:  0.6,
		Stagger:   0.1,
		Ease:      ease.OutQuad,
	}
}

// ScrollReveal hides elements until they scroll into view, then fades them
// in once. Revealed elements never hide again.
type ScrollReveal struct {
	page     *Page
	cfg      RevealConfig
	delays   map[*Element]float32
	revealed map[*Element]bool
	observer *IntersectionObserver
}

// NewScrollReveal hides every element and starts observing them.
func NewScrollReveal(p *Page, elements []*Element, cfg RevealConfig) *ScrollReveal {
	if cfg.Ease == nil {
		cfg.Ease = ease.OutQuad
	}
	r := &ScrollReveal{
		page:     p,
		cfg:      cfg,
		delays:   make(map[*Element]float32, len(elements)),
		revealed: make(map[*Element]bool, len(elements)),
	}
	r.observer = p.NewIntersectionObserver(r.onIntersect, cfg.Threshold, cfg.Margin)
	for i, el := range elements {
		el.Alpha = 0
		el.OffsetY = cfg.Offset
		r.delays[el] = float32(i) * cfg.Stagger
		r.observer.Observe(el)
	}
	return r
}

func (r *ScrollReveal) onIntersect(entries []IntersectionEntry) {
	for _, e := range entries {
		if !e.IsIntersecting || r.revealed[e.Target] {
			continue
		}
		r.revealed[e.Target] = true
		r.observer.Unobserve(e.Target)
		r.page.AddTween(TweenFadeIn(e.Target, r.cfg.Duration, r.cfg.Ease).WithDelay(r.delays[e.Target]))
	}
}

// Revealed reports whether el has started its fade-in.
func (r *ScrollReveal) Revealed(el *Element) bool {
	return r.revealed[el]
}

// Close stops observing. Tweens already started run to completion.
func (r *ScrollReveal) Close() {
	r.observer.Disconnect()
}
