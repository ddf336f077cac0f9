package truenetwork

import (
	"cmp"
	"slices"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// EntityStore is the interface for optional ECS integration.
// When set on a Page, interaction events are forwarded to the ECS.
type EntityStore interface {
	EmitEvent(event InteractionEvent)
}

// InteractionEvent carries interaction data for the ECS bridge.
type InteractionEvent struct {
	Type        EventType
	ElementID   uint32
	ElementName string
	X, Y        float64
	ScrollY     float64
	Viewport    Viewport
	Value       string
}

// Page is the top-level object that owns the element tree, the viewport and
// scroll state, the frame queue, timers and tweens. It implements
// ebiten.Game.
type Page struct {
	root     *Element
	style    StyleFunc
	viewport Viewport
	scrollY  float64
	height   float64

	// ClearColor fills the screen before elements are drawn.
	ClearColor Color
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	frames     FrameQueue
	timers     Timers
	tweens     []*TweenGroup
	observers  []*IntersectionObserver
	canvases   []canvasBinding
	animations []*NetworkAnimation

	scrollListeners listenerList[float64]
	resizeListeners listenerList[Viewport]
	docClicks       listenerList[ClickContext]

	pressTarget *Element
	focus       *Element
	runeBuf     []rune
	quit        bool

	store           EntityStore
	debug           bool
	fps             *fpsOverlay
	injectQueue     []syntheticEvent
	testRunner      *TestRunner
	screenshotQueue []string
	fixedBuf        []*Element
}

type canvasBinding struct {
	el      *Element
	surface *ImageSurface
}

// NewPage creates a page for a viewport of the given size with an empty
// column root.
func NewPage(width, height int) *Page {
	root := NewElement("body", "root")
	root.Layout = LayoutColumn
	root.AutoHeight = true
	p := &Page{
		root:          root,
		viewport:      Viewport{Width: float64(width), Height: float64(height)},
		ClearColor:    Color{R: 0.97, G: 0.98, B: 1, A: 1},
		ScreenshotDir: "screenshots",
	}
	p.Relayout()
	return p
}

// Root returns the page's root element.
func (p *Page) Root() *Element {
	return p.root
}

// SetStyle installs the visibility rules used by layout.
func (p *Page) SetStyle(style StyleFunc) {
	p.style = style
	p.Relayout()
}

// Viewport returns the current viewport size.
func (p *Page) Viewport() Viewport {
	return p.viewport
}

// ContentHeight returns the laid-out height of the page.
func (p *Page) ContentHeight() float64 {
	return p.height
}

// Relayout recomputes every element's bounds and clamps the scroll offset.
func (p *Page) Relayout() {
	p.height = layoutTree(p.root, p.viewport, p.style)
	if p.scrollY > p.MaxScroll() {
		p.scrollY = p.MaxScroll()
	}
}

// --- Scrolling ---

// ScrollY returns the vertical scroll offset.
func (p *Page) ScrollY() float64 {
	return p.scrollY
}

// MaxScroll returns the largest valid scroll offset.
func (p *Page) MaxScroll() float64 {
	return max(0, p.height-p.viewport.Height)
}

// ScrollTo sets the scroll offset, clamped to [0, MaxScroll], and notifies
// scroll listeners when it changed.
func (p *Page) ScrollTo(y float64) {
	y = min(max(y, 0), p.MaxScroll())
	if y == p.scrollY {
		return
	}
	p.scrollY = y
	p.scrollListeners.emit(y)
	p.emitInteractionEvent(EventScroll, nil, 0, 0)
}

// ScrollBy scrolls relative to the current offset.
func (p *Page) ScrollBy(dy float64) {
	p.ScrollTo(p.scrollY + dy)
}

// Resize changes the viewport, lays the page out again and notifies resize
// listeners. Same-size calls are ignored.
func (p *Page) Resize(width, height int) {
	vp := Viewport{Width: float64(width), Height: float64(height)}
	if vp == p.viewport {
		return
	}
	p.viewport = vp
	p.Relayout()
	p.resizeListeners.emit(vp)
	p.emitInteractionEvent(EventResize, nil, 0, 0)
	if p.debug {
		for _, a := range p.animations {
			debugCheckPointCount(a)
		}
	}
}

// --- Frame host ---

// RequestFrame schedules fn for the next Update. Page satisfies
// FrameScheduler so animations can be bound directly to it.
func (p *Page) RequestFrame(fn func()) FrameHandle {
	return p.frames.RequestFrame(fn)
}

// CancelFrame cancels a request made with RequestFrame.
func (p *Page) CancelFrame(h FrameHandle) {
	p.frames.CancelFrame(h)
}

// AfterFunc runs fn once d of page time has elapsed.
func (p *Page) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return p.timers.AfterFunc(d, fn)
}

// CancelTimer stops a pending AfterFunc.
func (p *Page) CancelTimer(h TimerHandle) {
	p.timers.Cancel(h)
}

// AddTween starts driving g from the page's Update. Finished groups are
// dropped automatically.
func (p *Page) AddTween(g *TweenGroup) {
	p.tweens = append(p.tweens, g)
}

// AttachCanvas draws surface's image at el's position every Draw.
func (p *Page) AttachCanvas(el *Element, surface *ImageSurface) {
	p.canvases = append(p.canvases, canvasBinding{el: el, surface: surface})
}

// --- ebiten.Game ---

// Update processes input, then advances timers, tweens, frame callbacks and
// intersection observers by one tick.
func (p *Page) Update() error {
	if p.testRunner != nil {
		p.testRunner.step(p)
	}
	p.processInput()
	if p.quit {
		return ebiten.Termination
	}
	p.tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

func (p *Page) tick(dt time.Duration) {
	p.Relayout()
	p.timers.Advance(dt)
	p.updateTweens(float32(dt.Seconds()))
	p.frames.Tick()
	p.Relayout()
	for _, o := range p.observers {
		o.check()
	}
	if p.fps != nil {
		p.fps.update(dt.Seconds())
	}
}

func (p *Page) updateTweens(dt float32) {
	if len(p.tweens) == 0 {
		return
	}
	for _, g := range p.tweens {
		g.Update(dt)
	}
	p.tweens = slices.DeleteFunc(p.tweens, func(g *TweenGroup) bool { return g.Done })
}

// Layout reports the window size as the logical screen size and applies
// viewport changes.
func (p *Page) Layout(outsideWidth, outsideHeight int) (int, int) {
	p.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// fixedLayer returns the fixed elements in ascending ZIndex order, tree
// order breaking ties.
func (p *Page) fixedLayer() []*Element {
	p.fixedBuf = p.fixedBuf[:0]
	p.root.walk(func(e *Element) {
		if e.Fixed && (e.Parent == nil || !e.Parent.inFixed) {
			p.fixedBuf = append(p.fixedBuf, e)
		}
	})
	slices.SortStableFunc(p.fixedBuf, func(a, b *Element) int {
		return cmp.Compare(a.ZIndex, b.ZIndex)
	})
	return p.fixedBuf
}

// SetEntityStore sets the optional ECS bridge.
func (p *Page) SetEntityStore(store EntityStore) {
	p.store = store
}

func (p *Page) emitInteractionEvent(t EventType, el *Element, x, y float64) {
	if p.store == nil {
		return
	}
	ev := InteractionEvent{
		Type:     t,
		X:        x,
		Y:        y,
		ScrollY:  p.scrollY,
		Viewport: p.viewport,
	}
	if el != nil {
		ev.ElementID = el.ID
		ev.ElementName = el.Name
		ev.Value = el.Value
	}
	p.store.EmitEvent(ev)
}

// SetDebugMode enables or disables debug mode. When enabled, per-frame
// timing stats are logged to stderr and an FPS overlay is drawn.
func (p *Page) SetDebugMode(enabled bool) {
	p.debug = enabled
	if enabled {
		p.ShowFPS(true)
	}
}

// ShowFPS toggles the FPS overlay independently of debug mode.
func (p *Page) ShowFPS(on bool) {
	if on && p.fps == nil {
		p.fps = newFPSOverlay()
	} else if !on {
		p.fps = nil
	}
}
