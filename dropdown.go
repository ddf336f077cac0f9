package truenetwork

// DropdownItem pairs a feature dropdown with its toggle button.
type DropdownItem struct {
	Item   *Element
	Button *Element
}

// FeatureDropdown toggles each item independently of the others.
type FeatureDropdown struct {
	items   []DropdownItem
	handles []CallbackHandle
}

// NewFeatureDropdown wires the toggle buttons. Items with a nil button are
// ignored.
func NewFeatureDropdown(items []DropdownItem) *FeatureDropdown {
	d := &FeatureDropdown{}
	for _, it := range items {
		if it.Item == nil || it.Button == nil {
			continue
		}
		d.items = append(d.items, it)
		d.handles = append(d.handles, it.Button.OnClick(func(ClickContext) {
			d.Toggle(it)
		}))
	}
	return d
}

// Toggle flips the item's active class and its button's aria-expanded.
func (d *FeatureDropdown) Toggle(it DropdownItem) {
	if it.Item.ToggleClass("active") {
		it.Button.SetAttr("aria-expanded", "true")
	} else {
		it.Button.SetAttr("aria-expanded", "false")
	}
}

// Close removes the click handlers.
func (d *FeatureDropdown) Close() {
	for _, h := range d.handles {
		h.Remove()
	}
	d.handles = nil
}
