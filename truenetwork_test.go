package truenetwork

import (
	"image/color"
	"math/rand/v2"
	"testing"
)

func TestRGB255(t *testing.T) {
	c := RGB255(255, 0, 51, 0.5)
	if c.R != 1 || c.G != 0 || c.B != 0.2 || c.A != 0.5 {
		t.Errorf("RGB255 = %+v", c)
	}
}

func TestColorToRGBAPremultiplies(t *testing.T) {
	got := Color{R: 1, G: 0.5, B: 0, A: 0.5}.toRGBA()
	want := color.RGBA{R: 127, G: 63, B: 0, A: 127}
	if got != want {
		t.Errorf("toRGBA = %+v, want %+v", got, want)
	}
	if got := (Color{R: 2, G: -1, B: 1, A: 1}).toRGBA(); got != (color.RGBA{R: 255, G: 0, B: 255, A: 255}) {
		t.Errorf("out-of-range components not clamped: %+v", got)
	}
}

func TestRectIntersection(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	b := Rect{X: 50, Y: 80, Width: 100, Height: 100}
	got := a.Intersection(b)
	if got != (Rect{X: 50, Y: 80, Width: 50, Height: 20}) {
		t.Errorf("Intersection = %+v", got)
	}
	if got.Area() != 1000 {
		t.Errorf("Area = %v, want 1000", got.Area())
	}
	far := Rect{X: 500, Y: 500, Width: 10, Height: 10}
	if a.Intersection(far).Area() != 0 {
		t.Error("disjoint rectangles have a non-empty intersection")
	}
	if a.Intersects(far) {
		t.Error("Intersects reported disjoint rectangles")
	}
	if !a.Intersects(Rect{X: 100, Y: 0, Width: 5, Height: 5}) {
		t.Error("touching rectangles should intersect")
	}
}

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, Width: 20, Height: 20}
	for _, tt := range []struct {
		x, y float64
		want bool
	}{
		{10, 10, true}, {30, 30, true}, {20, 20, true}, {9, 20, false}, {20, 31, false},
	} {
		if got := r.Contains(tt.x, tt.y); got != tt.want {
			t.Errorf("Contains(%v,%v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRangeRandom(t *testing.T) {
	r := Range{Min: -0.25, Max: 0.25}
	rng := rand.New(rand.NewPCG(1, 1))
	for range 1000 {
		v := r.randomFrom(rng)
		if v < r.Min || v >= r.Max {
			t.Fatalf("value %v outside [%v, %v)", v, r.Min, r.Max)
		}
		if g := r.Random(); g < r.Min || g >= r.Max {
			t.Fatalf("global value %v outside range", g)
		}
	}
	if got := (Range{Min: 3, Max: 3}).Random(); got != 3 {
		t.Errorf("degenerate range = %v, want 3", got)
	}
}

func TestEventTypeString(t *testing.T) {
	names := map[EventType]string{
		EventClick: "click", EventScroll: "scroll", EventResize: "resize",
		EventSubmit: "submit", EventInput: "input", EventType(99): "unknown",
	}
	for typ, want := range names {
		if got := typ.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", typ, got, want)
		}
	}
}
