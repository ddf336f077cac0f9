package truenetwork

// DefaultHeaderThreshold is the scroll offset past which the header is
// marked scrolled.
const DefaultHeaderThreshold = 50.0

// StickyHeader adds the "scrolled" class to the header once the page has
// scrolled past a threshold and removes it when scrolled back.
type StickyHeader struct {
	header    *Element
	threshold float64
	handle    CallbackHandle
}

// NewStickyHeader binds header to p's scroll offset and applies the current
// offset immediately. A threshold <= 0 uses DefaultHeaderThreshold. Returns
// nil if header is nil.
func NewStickyHeader(p *Page, header *Element, threshold float64) *StickyHeader {
	if header == nil {
		return nil
	}
	if threshold <= 0 {
		threshold = DefaultHeaderThreshold
	}
	h := &StickyHeader{header: header, threshold: threshold}
	h.handle = p.OnScroll(h.handleScroll)
	h.handleScroll(p.ScrollY())
	return h
}

func (h *StickyHeader) handleScroll(scrollY float64) {
	if scrollY > h.threshold {
		h.header.AddClass("scrolled")
	} else {
		h.header.RemoveClass("scrolled")
	}
}

// Scrolled reports whether the header currently carries the scrolled class.
func (h *StickyHeader) Scrolled() bool {
	return h.header.HasClass("scrolled")
}

// Close stops following the scroll offset.
func (h *StickyHeader) Close() {
	h.handle.Remove()
}
