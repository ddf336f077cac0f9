package truenetwork

import "testing"

func TestStickyHeader(t *testing.T) {
	p := tallPage(400, 300, 2000)
	header := NewElement("header", "header", "site-header")
	p.Root().AddChild(header)

	h := NewStickyHeader(p, header, 0)
	if h.Scrolled() {
		t.Fatal("scrolled at offset 0")
	}
	for _, tt := range []struct {
		y    float64
		want bool
	}{
		{50, false},
		{51, true},
		{400, true},
		{50, false},
		{0, false},
	} {
		p.ScrollTo(tt.y)
		if got := header.HasClass("scrolled"); got != tt.want {
			t.Errorf("scrollY %v: scrolled = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestStickyHeaderAppliesCurrentOffset(t *testing.T) {
	p := tallPage(400, 300, 2000)
	p.ScrollTo(200)
	header := NewElement("header", "header")
	h := NewStickyHeader(p, header, 100)
	if !h.Scrolled() {
		t.Error("header not marked at construction")
	}
	h.Close()
	p.ScrollTo(0)
	if !header.HasClass("scrolled") {
		t.Error("closed header still follows scroll")
	}
}

func TestStickyHeaderNil(t *testing.T) {
	if NewStickyHeader(NewPage(10, 10), nil, 0) != nil {
		t.Error("expected nil without a header")
	}
}
