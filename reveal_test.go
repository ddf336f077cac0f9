package truenetwork

import (
	"testing"
	"time"
)

// revealPage returns a 400x300 page with blocks at the given page offsets.
func revealPage(ys ...float64) (*Page, []*Element) {
	p := NewPage(400, 300)
	main := NewElement("main", "main")
	main.WidthFrac = 1
	main.Height = 3000
	var blocks []*Element
	for _, y := range ys {
		b := NewElement("section", "")
		b.X, b.Y, b.Width, b.Height = 0, y, 400, 100
		main.AddChild(b)
		blocks = append(blocks, b)
	}
	p.Root().AddChild(main)
	p.Relayout()
	return p, blocks
}

func TestIntersectionObserverReportsChanges(t *testing.T) {
	p, blocks := revealPage(50, 1000)
	var got [][]IntersectionEntry
	o := p.NewIntersectionObserver(func(entries []IntersectionEntry) {
		got = append(got, append([]IntersectionEntry(nil), entries...))
	}, 0.5, Insets{})
	for _, b := range blocks {
		o.Observe(b)
	}

	p.tick(frameTime)
	if len(got) != 1 || len(got[0]) != 2 {
		t.Fatalf("first check = %+v, want both targets", got)
	}
	if !got[0][0].IsIntersecting || got[0][0].Ratio != 1 || got[0][1].IsIntersecting {
		t.Errorf("first entries = %+v", got[0])
	}

	p.tick(frameTime)
	if len(got) != 1 {
		t.Fatalf("unchanged state reported again: %+v", got)
	}

	// Scroll so the second block is 60% visible and the first is gone.
	p.ScrollTo(760)
	p.tick(frameTime)
	if len(got) != 2 || len(got[1]) != 2 {
		t.Fatalf("after scroll = %+v", got)
	}
	if got[1][0].IsIntersecting || !got[1][1].IsIntersecting {
		t.Errorf("entries = %+v", got[1])
	}
	if r := got[1][1].Ratio; r < 0.59 || r > 0.61 {
		t.Errorf("ratio = %v, want 0.6", r)
	}

	o.Unobserve(blocks[0])
	o.Disconnect()
	p.ScrollTo(0)
	p.tick(frameTime)
	if len(got) != 2 {
		t.Error("disconnected observer still reports")
	}
	if len(p.observers) != 0 {
		t.Errorf("observers = %d after Disconnect", len(p.observers))
	}
}

func TestIntersectionObserverThreshold(t *testing.T) {
	p, blocks := revealPage(250)
	var last IntersectionEntry
	o := p.NewIntersectionObserver(func(entries []IntersectionEntry) {
		last = entries[len(entries)-1]
	}, 0.6, Insets{})
	o.Observe(blocks[0])

	// 50 of 100 units visible.
	p.tick(frameTime)
	if last.IsIntersecting || last.Ratio != 0.5 {
		t.Errorf("entry = %+v, want ratio 0.5 below threshold", last)
	}
	p.ScrollTo(10)
	p.tick(frameTime)
	if !last.IsIntersecting {
		t.Errorf("entry = %+v, want intersecting at 0.6", last)
	}
}

func TestIntersectionObserverMargin(t *testing.T) {
	p, blocks := revealPage(230)
	var last IntersectionEntry
	o := p.NewIntersectionObserver(func(entries []IntersectionEntry) {
		last = entries[0]
	}, 0.1, Insets{Bottom: -100})
	o.Observe(blocks[0])
	p.tick(frameTime)
	if last.IsIntersecting {
		t.Errorf("block in the bottom 100 units counted as visible: %+v", last)
	}
}

func TestScrollRevealHidesThenFades(t *testing.T) {
	p, blocks := revealPage(40, 600, 1600)
	r := NewScrollReveal(p, blocks, DefaultRevealConfig())

	for _, b := range blocks {
		if b.Alpha != 0 || b.OffsetY != 20 {
			t.Fatalf("block not hidden: alpha %v offset %v", b.Alpha, b.OffsetY)
		}
	}

	for range 60 {
		p.tick(frameTime)
	}
	if !r.Revealed(blocks[0]) || blocks[0].Alpha != 1 || blocks[0].OffsetY != 0 {
		t.Errorf("first block: revealed %v alpha %v offset %v", r.Revealed(blocks[0]), blocks[0].Alpha, blocks[0].OffsetY)
	}
	if r.Revealed(blocks[1]) || blocks[1].Alpha != 0 {
		t.Error("offscreen block revealed")
	}

	p.ScrollTo(500)
	p.tick(frameTime)
	if !r.Revealed(blocks[1]) {
		t.Fatal("second block not revealed after scrolling")
	}
	// The second block waits for its 0.1s stagger.
	for range 5 {
		p.tick(frameTime)
	}
	if blocks[1].Alpha != 0 {
		t.Errorf("second block started before its delay: %v", blocks[1].Alpha)
	}
	p.tick(time.Second)
	if blocks[1].Alpha != 1 {
		t.Errorf("second block alpha = %v, want 1", blocks[1].Alpha)
	}

	// Revealed elements never hide again.
	p.ScrollTo(0)
	for range 10 {
		p.tick(frameTime)
	}
	if blocks[1].Alpha != 1 || len(p.tweens) != 0 {
		t.Errorf("second block alpha = %v, tweens %d", blocks[1].Alpha, len(p.tweens))
	}
	if r.Revealed(blocks[2]) {
		t.Error("third block revealed without being seen")
	}
	r.Close()
	if len(p.observers) != 0 {
		t.Error("Close left the observer attached")
	}
}

func TestScrollRevealHiddenElementsStayHidden(t *testing.T) {
	p, blocks := revealPage(40)
	blocks[0].Display = DisplayNone
	p.Relayout()
	r := NewScrollReveal(p, blocks, DefaultRevealConfig())
	p.tick(frameTime)
	if r.Revealed(blocks[0]) {
		t.Error("display:none element revealed")
	}
}
