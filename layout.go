package truenetwork

// Viewport is the visible window size in page units.
type Viewport struct {
	Width, Height float64
}

// StyleFunc decides whether an element whose Display is DisplayAuto is shown,
// given the current viewport. It stands in for a stylesheet with media
// queries. A nil StyleFunc shows everything.
type StyleFunc func(el *Element, vp Viewport) bool

func selfShown(e *Element, vp Viewport, style StyleFunc) bool {
	switch e.Display {
	case DisplayNone:
		return false
	case DisplayShow:
		return true
	}
	if style == nil {
		return true
	}
	return style(e, vp)
}

// layoutTree positions root and its subtree for the viewport and returns
// the root's height.
func layoutTree(root *Element, vp Viewport, style StyleFunc) float64 {
	root.X, root.Y = 0, 0
	root.Width = vp.Width
	layoutElement(root, 0, 0, vp.Width, true, false, vp, style)
	return root.Height
}

// layoutElement sets e's computed bounds from its parent's origin (ox, oy),
// then lays out its children.
func layoutElement(e *Element, ox, oy, parentInner float64, parentShown, parentFixed bool, vp Viewport, style StyleFunc) {
	e.shown = parentShown && selfShown(e, vp, style)
	e.inFixed = parentFixed || e.Fixed
	if e.WidthFrac > 0 {
		e.Width = parentInner * e.WidthFrac
	}
	if e.Fixed {
		ox, oy = 0, 0
	}
	e.bounds = Rect{X: ox + e.X, Y: oy + e.Y + e.Top, Width: e.Width, Height: e.Height}

	inner := e.Width - 2*e.Padding
	var content float64
	switch e.Layout {
	case LayoutColumn:
		content = layoutColumn(e, inner, vp, style)
	case LayoutRow:
		content = layoutRow(e, inner, vp, style)
	default:
		for _, c := range e.children {
			layoutElement(c, e.bounds.X, e.bounds.Y, inner, e.shown, e.inFixed, vp, style)
			if c.shown && !c.Fixed {
				content = max(content, c.Y+c.Height)
			}
		}
		content += e.Padding
	}
	if e.AutoHeight {
		e.Height = content
		e.bounds.Height = content
	}
}

func layoutColumn(e *Element, inner float64, vp Viewport, style StyleFunc) float64 {
	cursor := e.Padding
	placed := 0
	for _, c := range e.children {
		if c.Fixed || !selfShown(c, vp, style) {
			layoutElement(c, e.bounds.X, e.bounds.Y, inner, e.shown, e.inFixed, vp, style)
			continue
		}
		if placed > 0 {
			cursor += e.Gap
		}
		c.X = e.Padding
		c.Y = cursor
		layoutElement(c, e.bounds.X, e.bounds.Y, inner, e.shown, e.inFixed, vp, style)
		cursor = c.Y + c.Height
		placed++
	}
	return cursor + e.Padding
}

func layoutRow(e *Element, inner float64, vp Viewport, style StyleFunc) float64 {
	visible := 0
	for _, c := range e.children {
		if !c.Fixed && selfShown(c, vp, style) {
			visible++
		}
	}
	avail := inner - e.Gap*float64(max(visible-1, 0))
	cursor := e.Padding
	tallest := 0.0
	for _, c := range e.children {
		if c.Fixed {
			layoutElement(c, e.bounds.X, e.bounds.Y, inner, e.shown, e.inFixed, vp, style)
			continue
		}
		c.X = cursor
		c.Y = e.Padding
		layoutElement(c, e.bounds.X, e.bounds.Y, avail, e.shown, e.inFixed, vp, style)
		if !selfShown(c, vp, style) {
			continue
		}
		cursor += c.Width + e.Gap
		tallest = max(tallest, c.Height)
	}
	return tallest + 2*e.Padding
}
