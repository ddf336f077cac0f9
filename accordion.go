package truenetwork

// AccordionItem pairs an FAQ item with the question button that toggles it.
type AccordionItem struct {
	Item     *Element
	Question *Element
}

// FAQAccordion keeps at most one item open. Clicking the open item's
// question closes it.
type FAQAccordion struct {
	items   []AccordionItem
	handles []CallbackHandle
}

// NewFAQAccordion wires the question buttons. Items with a nil question are
// ignored.
func NewFAQAccordion(items []AccordionItem) *FAQAccordion {
	a := &FAQAccordion{}
	for _, it := range items {
		if it.Item == nil || it.Question == nil {
			continue
		}
		a.items = append(a.items, it)
		a.handles = append(a.handles, it.Question.OnClick(func(ClickContext) {
			a.Toggle(it)
		}))
	}
	return a
}

// Toggle closes every item, then opens it unless it was already open.
func (a *FAQAccordion) Toggle(it AccordionItem) {
	wasActive := it.Item.HasClass("active")

	for _, other := range a.items {
		other.Item.RemoveClass("active")
		other.Question.SetAttr("aria-expanded", "false")
	}

	if !wasActive {
		it.Item.AddClass("active")
		it.Question.SetAttr("aria-expanded", "true")
	}
}

// Open returns the open item's element, or nil.
func (a *FAQAccordion) Open() *Element {
	for _, it := range a.items {
		if it.Item.HasClass("active") {
			return it.Item
		}
	}
	return nil
}

// Close removes the click handlers.
func (a *FAQAccordion) Close() {
	for _, h := range a.handles {
		h.Remove()
	}
	a.handles = nil
}
