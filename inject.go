package truenetwork

import "github.com/hajimehoshi/ebiten/v2"

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthRelease
	synthScroll
	synthResize
	synthText
	synthKey
)

// syntheticEvent is one injected input event. Pointer coordinates are in
// screen space, exactly like real mouse input.
type syntheticEvent struct {
	kind   syntheticKind
	x, y   float64
	width  int
	height int
	text   string
	key    ebiten.Key
}

// InjectPress queues a left-button press at the given screen coordinates.
// The event is consumed on the next frame's input step.
func (p *Page) InjectPress(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: synthPress, x: x, y: y})
}

// InjectRelease queues a left-button release at the given screen coordinates.
func (p *Page) InjectRelease(x, y float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: synthRelease, x: x, y: y})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (p *Page) InjectClick(x, y float64) {
	p.InjectPress(x, y)
	p.InjectRelease(x, y)
}

// InjectClickElement clicks the center of el as currently laid out.
func (p *Page) InjectClickElement(el *Element) {
	b := el.bounds
	x := b.X + b.Width/2
	y := b.Y + el.offsetTotal() + b.Height/2
	if !el.inFixed {
		y -= p.scrollY
	}
	p.InjectClick(x, y)
}

// InjectScroll queues a relative scroll of dy page units.
func (p *Page) InjectScroll(dy float64) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: synthScroll, y: dy})
}

// InjectResize queues a viewport change.
func (p *Page) InjectResize(width, height int) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: synthResize, width: width, height: height})
}

// InjectText queues typed text for the focused input.
func (p *Page) InjectText(s string) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: synthText, text: s})
}

// InjectKey queues a key press for the focused input (Enter, Backspace,
// Escape).
func (p *Page) InjectKey(k ebiten.Key) {
	p.injectQueue = append(p.injectQueue, syntheticEvent{kind: synthKey, key: k})
}

// processInjectedInput pops one event from the inject queue and applies it.
// Returns true if an event was consumed (real input is skipped that frame).
func (p *Page) processInjectedInput() bool {
	if len(p.injectQueue) == 0 {
		return false
	}
	evt := p.injectQueue[0]
	copy(p.injectQueue, p.injectQueue[1:])
	p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		p.pointerPress(evt.x, evt.y)
	case synthRelease:
		p.pointerRelease(evt.x, evt.y, MouseButtonLeft)
	case synthScroll:
		p.ScrollBy(evt.y)
	case synthResize:
		p.Resize(evt.width, evt.height)
	case synthText:
		p.typeText(evt.text)
	case synthKey:
		p.pressKey(evt.key)
	}
	return true
}
