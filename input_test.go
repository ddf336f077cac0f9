package truenetwork

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// inputPage lays out a fixed 64px header with a button, and a tall section
// holding two buttons and a form.
type inputPage struct {
	*Page
	header, menu, section, a, b, form, input, submit *Element
}

func newInputPage() *inputPage {
	ip := &inputPage{Page: NewPage(400, 300)}
	root := ip.Root()

	ip.header = NewElement("header", "header", "site-header")
	ip.header.WidthFrac = 1
	ip.header.Height = 64
	ip.header.Fixed = true
	ip.header.ZIndex = 10
	ip.menu = NewElement("button", "menu")
	ip.menu.X, ip.menu.Y, ip.menu.Width, ip.menu.Height = 300, 10, 40, 40
	ip.header.AddChild(ip.menu)

	ip.section = NewElement("section", "section")
	ip.section.WidthFrac = 1
	ip.section.Height = 1000
	ip.a = NewElement("button", "a")
	ip.a.X, ip.a.Y, ip.a.Width, ip.a.Height = 20, 100, 100, 40
	ip.b = NewElement("button", "b")
	ip.b.X, ip.b.Y, ip.b.Width, ip.b.Height = 200, 100, 100, 40
	ip.section.AddChild(ip.a)
	ip.section.AddChild(ip.b)

	ip.form = NewElement("form", "form")
	ip.form.X, ip.form.Y, ip.form.Width, ip.form.Height = 0, 200, 400, 50
	ip.input = NewElement("input", "email")
	ip.input.X, ip.input.Width, ip.input.Height = 0, 250, 50
	ip.submit = NewElement("button", "submit")
	ip.submit.X, ip.submit.Width, ip.submit.Height = 260, 100, 50
	ip.submit.SetAttr("type", "submit")
	ip.submit.Text = "Go"
	ip.form.AddChild(ip.input)
	ip.form.AddChild(ip.submit)
	ip.section.AddChild(ip.form)

	root.AddChild(ip.header)
	root.AddChild(ip.section)
	ip.Relayout()
	return ip
}

func (ip *inputPage) drain() {
	for len(ip.injectQueue) > 0 {
		ip.processInput()
	}
}

func TestHitTestFixedFirst(t *testing.T) {
	ip := newInputPage()
	if got := ip.hitTest(320, 20); got != ip.menu {
		t.Errorf("hit = %v, want menu", got.Name)
	}
	if got := ip.hitTest(10, 20); got != ip.header {
		t.Errorf("hit = %v, want header", got.Name)
	}
	if got := ip.hitTest(30, 110); got != ip.a {
		t.Errorf("hit = %v, want a", got.Name)
	}
}

func TestHitTestScrolled(t *testing.T) {
	ip := newInputPage()
	ip.ScrollTo(50)
	if got := ip.hitTest(30, 70); got != ip.a {
		t.Errorf("hit = %v, want a at screen y 70", got.Name)
	}
	// The fixed header does not scroll.
	if got := ip.hitTest(320, 20); got != ip.menu {
		t.Errorf("hit = %v, want menu", got.Name)
	}
}

func TestHitTestSkipsHidden(t *testing.T) {
	ip := newInputPage()
	ip.a.Display = DisplayNone
	ip.Relayout()
	if got := ip.hitTest(30, 110); got != ip.section {
		t.Errorf("hit = %v, want section", got.Name)
	}
}

func TestClickFiresOnRelease(t *testing.T) {
	ip := newInputPage()
	clicks := 0
	ip.a.OnClick(func(ctx ClickContext) {
		clicks++
		if ctx.Target != ip.a || ctx.X != 30 || ctx.Y != 110 {
			t.Errorf("ctx = %+v", ctx)
		}
	})
	ip.InjectClick(30, 110)
	ip.processInput()
	if clicks != 0 {
		t.Fatal("click fired on press")
	}
	ip.processInput()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}
}

func TestClickOnCommonAncestor(t *testing.T) {
	ip := newInputPage()
	var target *Element
	ip.section.OnClick(func(ctx ClickContext) { target = ctx.Target })
	aClicked := false
	ip.a.OnClick(func(ClickContext) { aClicked = true })

	ip.InjectPress(30, 110)
	ip.InjectRelease(210, 110)
	ip.drain()
	if aClicked {
		t.Error("press on a, release on b clicked a")
	}
	if target != ip.section {
		t.Errorf("target = %v, want section", target)
	}
}

func TestDocumentClickRunsAfterElementHandlers(t *testing.T) {
	ip := newInputPage()
	var order []string
	ip.OnDocumentClick(func(ctx ClickContext) {
		order = append(order, "document")
		if ctx.Target != ip.b {
			t.Errorf("document target = %v", ctx.Target.Name)
		}
	})
	ip.b.OnClick(func(ClickContext) { order = append(order, "b") })
	ip.InjectClickElement(ip.b)
	ip.drain()
	if len(order) != 2 || order[0] != "b" || order[1] != "document" {
		t.Errorf("order = %v", order)
	}
}

func TestClickOutsideContentHitsRoot(t *testing.T) {
	ip := newInputPage()
	var target *Element
	ip.OnDocumentClick(func(ctx ClickContext) { target = ctx.Target })
	ip.ScrollTo(ip.MaxScroll())
	ip.section.Height = 100
	ip.Relayout()
	ip.InjectClick(10, 290)
	ip.drain()
	if target != ip.Root() {
		t.Errorf("target = %v, want root", target)
	}
}

func TestTypingIntoFocusedInput(t *testing.T) {
	ip := newInputPage()
	store := &recordingStore{}
	ip.SetEntityStore(store)

	ip.InjectClickElement(ip.input)
	ip.InjectText("a@b.cé")
	ip.InjectKey(ebiten.KeyBackspace)
	ip.drain()
	if ip.Focus() != ip.input {
		t.Fatal("input not focused")
	}
	if ip.input.Value != "a@b.c" {
		t.Errorf("Value = %q, want %q", ip.input.Value, "a@b.c")
	}
	last := store.events[len(store.events)-1]
	if last.Type != EventInput || last.Value != "a@b.c" || last.ElementName != "email" {
		t.Errorf("last event = %+v", last)
	}

	ip.InjectKey(ebiten.KeyEscape)
	ip.InjectText("ignored")
	ip.drain()
	if ip.Focus() != nil || ip.input.Value != "a@b.c" {
		t.Errorf("focus = %v, value = %q", ip.Focus(), ip.input.Value)
	}
}

func TestClickElsewhereBlurs(t *testing.T) {
	ip := newInputPage()
	ip.SetFocus(ip.input)
	ip.InjectClickElement(ip.a)
	ip.drain()
	if ip.Focus() != nil {
		t.Error("click on a button kept input focus")
	}
}

func TestEnterSubmitsForm(t *testing.T) {
	ip := newInputPage()
	submits := 0
	ip.form.OnSubmit(func(f *Element) {
		submits++
		if f != ip.form {
			t.Errorf("submitted %v", f.Name)
		}
	})
	ip.SetFocus(ip.input)
	ip.InjectKey(ebiten.KeyEnter)
	ip.drain()
	if submits != 1 {
		t.Errorf("submits = %d, want 1", submits)
	}
}

func TestSubmitButtonSubmitsForm(t *testing.T) {
	ip := newInputPage()
	store := &recordingStore{}
	ip.SetEntityStore(store)
	submits := 0
	ip.form.OnSubmit(func(*Element) { submits++ })

	ip.InjectClickElement(ip.submit)
	ip.drain()
	if submits != 1 {
		t.Fatalf("submits = %d, want 1", submits)
	}
	var types []EventType
	for _, e := range store.events {
		types = append(types, e.Type)
	}
	if len(types) != 2 || types[0] != EventClick || types[1] != EventSubmit {
		t.Errorf("events = %v, want [click submit]", types)
	}

	// A plain button inside the form does not submit.
	ip.submit.SetAttr("type", "button")
	ip.InjectClickElement(ip.submit)
	ip.drain()
	if submits != 1 {
		t.Errorf("type=button submitted: %d", submits)
	}
}

func TestKeysWithoutFocusIgnored(t *testing.T) {
	ip := newInputPage()
	ip.pressKey(ebiten.KeyBackspace)
	ip.typeText("x")
	if ip.input.Value != "" {
		t.Errorf("Value = %q", ip.input.Value)
	}
}
