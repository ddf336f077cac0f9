package truenetwork

// TabSystem switches between tab panels. Each button names its panel in
// Data["tab"]; each panel names itself in Data["content"].
type TabSystem struct {
	buttons  []*Element
	contents []*Element
	handles  []CallbackHandle
}

// NewTabSystem wires a click handler onto every button.
func NewTabSystem(buttons, contents []*Element) *TabSystem {
	t := &TabSystem{buttons: buttons, contents: contents}
	for _, b := range buttons {
		t.handles = append(t.handles, b.OnClick(func(ClickContext) {
			t.Select(b)
		}))
	}
	return t
}

// Select makes button the only active tab and shows its panel. The panel
// is looked up by matching data-content to the button's data-tab; when none
// matches, every panel ends up inactive.
func (t *TabSystem) Select(button *Element) {
	target := button.Data["tab"]

	for _, b := range t.buttons {
		b.RemoveClass("active")
		b.SetAttr("aria-selected", "false")
	}
	for _, c := range t.contents {
		c.RemoveClass("active")
	}

	button.AddClass("active")
	button.SetAttr("aria-selected", "true")

	for _, c := range t.contents {
		if v, ok := c.Data["content"]; ok && v == target {
			c.AddClass("active")
			return
		}
	}
}

// Active returns the active button, or nil.
func (t *TabSystem) Active() *Element {
	for _, b := range t.buttons {
		if b.HasClass("active") {
			return b
		}
	}
	return nil
}

// Close removes the click handlers.
func (t *TabSystem) Close() {
	for _, h := range t.handles {
		h.Remove()
	}
	t.handles = nil
}
