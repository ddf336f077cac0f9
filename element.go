package truenetwork

import "slices"

// elementIDCounter is a plain counter; the page runs on one goroutine.
var elementIDCounter uint32

func nextElementID() uint32 {
	elementIDCounter++
	return elementIDCounter
}

// Display overrides whether an element is shown.
type Display uint8

const (
	DisplayAuto Display = iota // the page StyleFunc decides
	DisplayNone                // hidden regardless of styles
	DisplayShow                // shown regardless of styles
)

// LayoutMode selects how an element positions its children.
type LayoutMode uint8

const (
	LayoutNone   LayoutMode = iota // children keep their own X/Y
	LayoutColumn                   // children stack top to bottom
	LayoutRow                      // children line up left to right
)

// ClickContext carries click event data. Target is the deepest element hit;
// Current is the element whose handler is running while the event bubbles.
type ClickContext struct {
	Target  *Element
	Current *Element
	X, Y    float64
	Button  MouseButton
}

// Element is a box on the page. Widgets receive the elements they drive as
// constructor arguments and mutate classes, attributes and style fields;
// the page lays them out and draws them.
type Element struct {
	// Identity
	ID   uint32
	Name string
	Tag  string

	// Content
	Text  string
	Value string
	Data  map[string]string

	// Hierarchy
	Parent   *Element
	children []*Element

	classes []string
	attrs   map[string]string

	// Box. X/Y are relative to the parent and are overwritten by flow layout.
	X, Y          float64
	Width, Height float64
	// WidthFrac, when > 0, sizes the element to a fraction of its parent's
	// inner width at layout time.
	WidthFrac  float64
	AutoHeight bool
	Layout     LayoutMode
	Gap        float64
	Padding    float64
	Fixed      bool

	// Style
	Display    Display
	Alpha      float64
	OffsetY    float64
	Top        float64
	ZIndex     int
	Background Color
	Foreground Color
	Border     Color

	// Computed by layout.
	bounds  Rect
	shown   bool
	inFixed bool

	clicks  listenerList[ClickContext]
	submits listenerList[*Element]
}

// NewElement creates a visible element with the given tag, name and classes.
func NewElement(tag, name string, classes ...string) *Element {
	return &Element{
		ID:         nextElementID(),
		Name:       name,
		Tag:        tag,
		Alpha:      1,
		Foreground: ColorWhite,
		classes:    slices.Clone(classes),
		shown:      true,
	}
}

// AddChild appends child, detaching it from any previous parent.
func (e *Element) AddChild(child *Element) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = e
	e.children = append(e.children, child)
}

// RemoveChild detaches child. It is a no-op if child is not a direct child.
func (e *Element) RemoveChild(child *Element) {
	i := slices.Index(e.children, child)
	if i < 0 {
		return
	}
	e.children = slices.Delete(e.children, i, i+1)
	child.Parent = nil
}

// Children returns the direct children. The returned slice MUST NOT be mutated.
func (e *Element) Children() []*Element {
	return e.children
}

// AddClass adds class if not already present.
func (e *Element) AddClass(class string) {
	if !e.HasClass(class) {
		e.classes = append(e.classes, class)
	}
}

// RemoveClass removes class if present.
func (e *Element) RemoveClass(class string) {
	if i := slices.Index(e.classes, class); i >= 0 {
		e.classes = slices.Delete(e.classes, i, i+1)
	}
}

// HasClass reports whether the element carries class.
func (e *Element) HasClass(class string) bool {
	return slices.Contains(e.classes, class)
}

// ToggleClass flips class and reports whether it is now present.
func (e *Element) ToggleClass(class string) bool {
	if e.HasClass(class) {
		e.RemoveClass(class)
		return false
	}
	e.classes = append(e.classes, class)
	return true
}

// Classes returns a copy of the class list.
func (e *Element) Classes() []string {
	return slices.Clone(e.classes)
}

// SetAttr sets an attribute such as aria-expanded.
func (e *Element) SetAttr(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// Attr returns an attribute value and whether it is set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetData sets a data-* value, keyed without the prefix.
func (e *Element) SetData(key, value string) {
	if e.Data == nil {
		e.Data = make(map[string]string)
	}
	e.Data[key] = value
}

// Closest returns the nearest element, starting with e itself and walking
// up the parents, that carries class.
func (e *Element) Closest(class string) *Element {
	for n := e; n != nil; n = n.Parent {
		if n.HasClass(class) {
			return n
		}
	}
	return nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.Parent {
		if n == e {
			return true
		}
	}
	return false
}

// Find returns the first element in depth-first order, e included, for
// which match returns true.
func (e *Element) Find(match func(*Element) bool) *Element {
	if match(e) {
		return e
	}
	for _, c := range e.children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element in depth-first order for which match
// returns true.
func (e *Element) FindAll(match func(*Element) bool) []*Element {
	var out []*Element
	e.walk(func(n *Element) {
		if match(n) {
			out = append(out, n)
		}
	})
	return out
}

// ByName returns the first element named name.
func (e *Element) ByName(name string) *Element {
	return e.Find(func(n *Element) bool { return n.Name == name })
}

// ByClass returns every element carrying class, in document order.
func (e *Element) ByClass(class string) []*Element {
	return e.FindAll(func(n *Element) bool { return n.HasClass(class) })
}

// FirstByClass returns the first element carrying class.
func (e *Element) FirstByClass(class string) *Element {
	return e.Find(func(n *Element) bool { return n.HasClass(class) })
}

func (e *Element) walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.walk(fn)
	}
}

// OnClick registers fn for clicks on e or any of its descendants.
func (e *Element) OnClick(fn func(ClickContext)) CallbackHandle {
	return e.clicks.add(fn)
}

// OnSubmit registers fn for submissions of the form e. fn receives the form.
func (e *Element) OnSubmit(fn func(*Element)) CallbackHandle {
	return e.submits.add(fn)
}

// dispatchClick runs click handlers from target up to the root.
func dispatchClick(target *Element, x, y float64, button MouseButton) {
	ctx := ClickContext{Target: target, X: x, Y: y, Button: button}
	for n := target; n != nil; n = n.Parent {
		if n.clicks.len() == 0 {
			continue
		}
		ctx.Current = n
		n.clicks.emit(ctx)
	}
}

// ClosestTag returns the nearest element, starting with e, whose Tag is tag.
func (e *Element) ClosestTag(tag string) *Element {
	for n := e; n != nil; n = n.Parent {
		if n.Tag == tag {
			return n
		}
	}
	return nil
}

// commonAncestor returns the deepest element containing both a and b.
func commonAncestor(a, b *Element) *Element {
	for n := a; n != nil; n = n.Parent {
		if n.Contains(b) {
			return n
		}
	}
	return nil
}

// offsetTotal sums OffsetY over e and its ancestors, stopping at the
// nearest fixed element, matching how Draw translates e.
func (e *Element) offsetTotal() float64 {
	var y float64
	for n := e; n != nil; n = n.Parent {
		y += n.OffsetY
		if n.Fixed {
			break
		}
	}
	return y
}

// Bounds returns the page-space box computed by the last layout. Fixed
// elements report screen-space boxes.
func (e *Element) Bounds() Rect {
	return e.bounds
}

// Shown reports whether the last layout found e and all its ancestors visible.
func (e *Element) Shown() bool {
	return e.shown
}

// InFixed reports whether e is, or is inside, a fixed element.
func (e *Element) InFixed() bool {
	return e.inFixed
}
