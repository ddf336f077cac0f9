package truenetwork

import (
	"slices"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	wheelStep    = 40.0  // page units per wheel notch
	keyboardStep = 120.0 // page units per arrow/page key press
)

// --- Listener registry ---

type listener[T any] struct {
	id uint32
	fn func(T)
}

// listenerList is an ordered set of callbacks. Callbacks may add or remove
// listeners while being emitted; changes apply to the next emit.
type listenerList[T any] struct {
	items  []listener[T]
	nextID uint32
}

// CallbackHandle allows removing a registered callback.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the callback. Calling Remove on a zero handle or more
// than once is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove != nil {
		h.remove()
	}
}

func (l *listenerList[T]) add(fn func(T)) CallbackHandle {
	l.nextID++
	id := l.nextID
	l.items = append(l.items, listener[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() {
		l.items = slices.DeleteFunc(l.items, func(it listener[T]) bool { return it.id == id })
	}}
}

func (l *listenerList[T]) emit(v T) {
	if len(l.items) == 0 {
		return
	}
	for _, it := range slices.Clone(l.items) {
		it.fn(v)
	}
}

func (l *listenerList[T]) len() int {
	return len(l.items)
}

// --- Page-level registration ---

// OnScroll registers fn to run after every scroll offset change.
func (p *Page) OnScroll(fn func(scrollY float64)) CallbackHandle {
	return p.scrollListeners.add(fn)
}

// OnResize registers fn to run after the viewport changes size. The page
// has already been laid out for the new size when fn runs.
func (p *Page) OnResize(fn func(Viewport)) CallbackHandle {
	return p.resizeListeners.add(fn)
}

// OnDocumentClick registers fn for every click on the page, after the
// element handlers along the target's ancestor chain have run.
func (p *Page) OnDocumentClick(fn func(ClickContext)) CallbackHandle {
	return p.docClicks.add(fn)
}

// --- Hit testing ---

// hitTest returns the deepest shown element under the screen point. Fixed
// elements are tested first, highest ZIndex first; everything else is
// tested in page space. Returns the root when nothing else is hit.
func (p *Page) hitTest(sx, sy float64) *Element {
	fixed := p.fixedLayer()
	for i := len(fixed) - 1; i >= 0; i-- {
		if hit := hitElement(fixed[i], sx, sy, sy, 0, true); hit != nil {
			return hit
		}
	}
	if hit := hitElement(p.root, sx, sy+p.scrollY, sy, 0, false); hit != nil {
		return hit
	}
	return p.root
}

// hitElement searches e's subtree; px/py are page coordinates and sy is the
// screen y used for fixed descendants. offsetY is the ancestors' translation.
func hitElement(e *Element, px, py, sy, offsetY float64, fixed bool) *Element {
	if !e.shown {
		return nil
	}
	if e.Fixed && !fixed {
		return nil
	}
	offsetY += e.OffsetY
	y := py
	if e.inFixed {
		y = sy
	}
	for i := len(e.children) - 1; i >= 0; i-- {
		if hit := hitElement(e.children[i], px, py, sy, offsetY, fixed); hit != nil {
			return hit
		}
	}
	b := e.bounds
	b.Y += offsetY
	if b.Contains(px, y) {
		return e
	}
	return nil
}

// --- Input processing ---

// processInput consumes one injected event if any are queued; otherwise it
// reads the real mouse, wheel and keyboard.
func (p *Page) processInput() {
	if p.processInjectedInput() {
		return
	}
	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		p.pointerPress(float64(mx), float64(my))
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		p.pointerRelease(float64(mx), float64(my), MouseButtonLeft)
	}
	if _, dy := ebiten.Wheel(); dy != 0 {
		p.ScrollBy(-dy * wheelStep)
	}
	p.processKeys()
}

func (p *Page) processKeys() {
	if p.focus != nil {
		p.runeBuf = ebiten.AppendInputChars(p.runeBuf[:0])
		if len(p.runeBuf) > 0 {
			p.typeText(string(p.runeBuf))
		}
		for _, k := range []ebiten.Key{ebiten.KeyBackspace, ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeyEscape} {
			if inpututil.IsKeyJustPressed(k) {
				p.pressKey(k)
			}
		}
		return
	}
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		p.quit = true
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		p.ScrollBy(keyboardStep / 3)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		p.ScrollBy(-keyboardStep / 3)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		p.ScrollBy(p.viewport.Height - keyboardStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		p.ScrollBy(-(p.viewport.Height - keyboardStep))
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		p.ScrollTo(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		p.ScrollTo(p.MaxScroll())
	}
}

func (p *Page) pointerPress(sx, sy float64) {
	p.pressTarget = p.hitTest(sx, sy)
}

// pointerRelease fires a click on the deepest element containing both the
// press and release targets.
func (p *Page) pointerRelease(sx, sy float64, button MouseButton) {
	pressed := p.pressTarget
	p.pressTarget = nil
	if pressed == nil {
		return
	}
	target := commonAncestor(pressed, p.hitTest(sx, sy))
	if target == nil {
		target = p.root
	}
	p.click(target, sx, sy, button)
}

// click runs the full click sequence for target: focus, element handlers,
// document handlers, then the submit default action.
func (p *Page) click(target *Element, sx, sy float64, button MouseButton) {
	if target.Tag == "input" {
		p.focus = target
	} else {
		p.focus = nil
	}

	ctx := ClickContext{Target: target, X: sx, Y: sy, Button: button}
	dispatchClick(target, sx, sy, button)
	p.docClicks.emit(ctx)
	p.emitInteractionEvent(EventClick, target, sx, sy)

	if btn := target.ClosestTag("button"); btn != nil {
		if kind, _ := btn.Attr("type"); kind == "submit" {
			if form := btn.ClosestTag("form"); form != nil {
				p.Submit(form)
			}
		}
	}
}

// Submit fires the submit handlers of form.
func (p *Page) Submit(form *Element) {
	form.submits.emit(form)
	p.emitInteractionEvent(EventSubmit, form, 0, 0)
}

// Focus returns the input receiving typed text, or nil.
func (p *Page) Focus() *Element {
	return p.focus
}

// SetFocus directs typed text to el. Pass nil to clear focus.
func (p *Page) SetFocus(el *Element) {
	p.focus = el
}

func (p *Page) typeText(s string) {
	if p.focus == nil || s == "" {
		return
	}
	p.focus.Value += s
	p.emitInteractionEvent(EventInput, p.focus, 0, 0)
}

func (p *Page) pressKey(k ebiten.Key) {
	if p.focus == nil {
		return
	}
	switch k {
	case ebiten.KeyBackspace:
		if v := p.focus.Value; v != "" {
			_, size := utf8.DecodeLastRuneInString(v)
			p.focus.Value = v[:len(v)-size]
			p.emitInteractionEvent(EventInput, p.focus, 0, 0)
		}
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter:
		if form := p.focus.ClosestTag("form"); form != nil {
			p.Submit(form)
		}
	case ebiten.KeyEscape:
		p.focus = nil
	}
}
