package truenetwork

import (
	"fmt"

	"github.com/tanema/gween/ease"
)

const (
	headerHeight = 64.0
	heroHeight   = 520.0
	linkHeight   = 40.0
)

var (
	brandColor    = RGB255(30, 64, 175, 1)
	inkColor      = RGB255(15, 23, 42, 1)
	surfaceColor  = RGB255(255, 255, 255, 1)
	mutedColor    = RGB255(241, 245, 249, 1)
	headerIdle    = RGB255(255, 255, 255, 0.6)
	headerOpaque  = RGB255(255, 255, 255, 0.97)
	borderColor   = RGB255(203, 213, 225, 1)
	heroTextColor = RGB255(15, 23, 42, 1)
)

// LandingOptions configures NewLanding.
type LandingOptions struct {
	Width, Height int
	Network       NetworkConfig
	Reveal        RevealConfig
	// NoCanvas builds the page without the hero canvas; the network
	// animation is then skipped, as it is for any page without one.
	NoCanvas bool
	// NewSurface creates the animation surface for the canvas element. The
	// default is an ImageSurface attached to the page for drawing.
	NewSurface func(p *Page, canvas *Element) Surface
}

// DefaultLandingOptions returns a 1280x800 page with the default network
// and reveal settings.
func DefaultLandingOptions() LandingOptions {
	return LandingOptions{
		Width:   1280,
		Height:  800,
		Network: DefaultNetworkConfig(),
		Reveal:  DefaultRevealConfig(),
	}
}

// Landing is the assembled marketing page: one instance of every widget,
// each bound to its own elements and held for the page's lifetime. Widgets
// whose elements are missing are nil.
type Landing struct {
	Page     *Page
	Network  *NetworkAnimation
	Header   *StickyHeader
	Tabs     *TabSystem
	FAQ      *FAQAccordion
	Dropdown *FeatureDropdown
	Menu     *MobileMenu
	Reveal   *ScrollReveal
	Form     *FormHandler
}

// NewLanding builds the page document and mounts every widget on it.
func NewLanding(opts LandingOptions) *Landing {
	p := NewPage(opts.Width, opts.Height)
	buildDocument(p.Root(), opts.NoCanvas)
	p.SetStyle(landingStyle)
	header := p.Root().ByName("header")
	arrangeHeader(header, p.Viewport())
	p.OnResize(func(vp Viewport) { arrangeHeader(header, vp) })
	p.Relayout()
	return Mount(p, opts)
}

// Mount looks up the page's elements once and constructs the widgets that
// drive them. Absent elements silently skip their widget.
func Mount(p *Page, opts LandingOptions) *Landing {
	root := p.Root()
	l := &Landing{Page: p}

	if canvas := root.ByName("networkCanvas"); canvas != nil {
		var s Surface
		if opts.NewSurface != nil {
			s = opts.NewSurface(p, canvas)
		} else {
			is := NewElementSurface(canvas)
			p.AttachCanvas(canvas, is)
			s = is
		}
		l.Network = NewNetworkAnimation(s, p, opts.Network)
		l.Network.Initialize()
		p.TrackAnimation(l.Network)
	}

	if header := root.ByName("header"); header != nil {
		l.Header = NewStickyHeader(p, header, DefaultHeaderThreshold)
		p.OnScroll(headerBackdrop(p, header))
	}

	if buttons := root.ByClass("tab-button"); len(buttons) > 0 {
		l.Tabs = NewTabSystem(buttons, root.ByClass("tab-content"))
	}

	var faq []AccordionItem
	for _, item := range root.ByClass("faq-item") {
		faq = append(faq, AccordionItem{Item: item, Question: item.FirstByClass("faq-question")})
	}
	if len(faq) > 0 {
		l.FAQ = NewFAQAccordion(faq)
	}

	var drops []DropdownItem
	for _, item := range root.ByClass("feature-dropdown-item") {
		drops = append(drops, DropdownItem{Item: item, Button: item.FirstByClass("feature-dropdown-button")})
	}
	if len(drops) > 0 {
		l.Dropdown = NewFeatureDropdown(drops)
	}

	l.Menu = NewMobileMenu(p, root.FirstByClass("mobile-menu-toggle"),
		root.FirstByClass("nav-list"), root.FirstByClass("nav-actions"))

	revealed := root.FindAll(func(e *Element) bool {
		return e.Tag == "section" || e.HasClass("feature-card") ||
			e.HasClass("solution-card") || e.HasClass("sdg-card")
	})
	if len(revealed) > 0 {
		l.Reveal = NewScrollReveal(p, revealed, opts.Reveal)
	}

	if form := root.FirstByClass("cta-form"); form != nil {
		input := form.Find(func(e *Element) bool {
			kind, _ := e.Attr("type")
			return e.Tag == "input" && kind == "email"
		})
		button := form.Find(func(e *Element) bool {
			kind, _ := e.Attr("type")
			return e.Tag == "button" && kind == "submit"
		})
		l.Form = NewFormHandler(p, form, input, button)
	}
	return l
}

// headerBackdrop fades the header background whenever the scrolled class
// flips.
func headerBackdrop(p *Page, header *Element) func(float64) {
	scrolled := header.HasClass("scrolled")
	return func(float64) {
		now := header.HasClass("scrolled")
		if now == scrolled {
			return
		}
		scrolled = now
		to := headerIdle
		if now {
			to = headerOpaque
		}
		p.AddTween(TweenColor(header, to, 0.3, ease.OutQuad))
	}
}

// landingStyle is the page's stylesheet: panels follow their "active"
// class and the navigation collapses behind the toggle on mobile widths.
func landingStyle(e *Element, vp Viewport) bool {
	mobile := vp.Width <= MobileBreakpoint
	switch {
	case e.HasClass("tab-content"):
		return e.HasClass("active")
	case e.HasClass("faq-answer"), e.HasClass("feature-dropdown-content"):
		return e.Parent != nil && e.Parent.HasClass("active")
	case e.HasClass("nav-list"), e.HasClass("nav-actions"):
		return !mobile
	case e.HasClass("mobile-menu-toggle"):
		return mobile
	}
	return true
}

// arrangeHeader places the header's children for the viewport width. On
// mobile the navigation drops down below the header bar as a column.
func arrangeHeader(header *Element, vp Viewport) {
	if header == nil {
		return
	}
	nav := header.FirstByClass("nav-list")
	actions := header.FirstByClass("nav-actions")
	toggle := header.FirstByClass("mobile-menu-toggle")

	if vp.Width <= MobileBreakpoint {
		if nav != nil {
			nav.X, nav.Y = 0, headerHeight
			nav.Width = vp.Width
			nav.Layout = LayoutColumn
			nav.AutoHeight = true
			nav.Background = surfaceColor
		}
		if actions != nil {
			actions.X, actions.Y = 0, headerHeight
			actions.Width = vp.Width
			actions.Background = surfaceColor
		}
		if toggle != nil {
			toggle.X, toggle.Y = vp.Width-68, 12
		}
		return
	}
	// The menu's inline display only applies below the breakpoint.
	if nav != nil {
		nav.Display = DisplayAuto
		nav.X, nav.Y = 220, 12
		nav.Width = 480
		nav.Height = linkHeight
		nav.Layout = LayoutRow
		nav.AutoHeight = false
		nav.Background = Color{}
	}
	if actions != nil {
		actions.Display = DisplayAuto
		actions.X, actions.Y = vp.Width-200, 12
		actions.Width = 176
		actions.Top = 0
		actions.Background = Color{}
	}
}

func newBox(tag, name string, w, h float64, classes ...string) *Element {
	e := NewElement(tag, name, classes...)
	e.Width, e.Height = w, h
	e.Foreground = inkColor
	return e
}

func newSection(name string) *Element {
	s := newBox("section", name, 0, 0)
	s.WidthFrac = 1
	s.Layout = LayoutColumn
	s.AutoHeight = true
	s.Padding = 48
	s.Gap = 16
	return s
}

func newHeading(text string) *Element {
	h := newBox("h2", "", 0, 40)
	h.WidthFrac = 1
	h.Text = text
	return h
}

func newRow(h float64) *Element {
	r := newBox("div", "", 0, h)
	r.WidthFrac = 1
	r.Layout = LayoutRow
	r.Gap = 16
	return r
}

func newCard(class, title string, n int) *Element {
	c := newBox("article", "", 0, 140, class)
	c.WidthFrac = 1 / float64(n)
	c.Background = surfaceColor
	c.Border = borderColor
	c.Text = title
	return c
}

// buildDocument creates the landing page element tree under root.
func buildDocument(root *Element, noCanvas bool) {
	root.Background = mutedColor

	header := newBox("header", "header", 0, headerHeight, "site-header")
	header.WidthFrac = 1
	header.Fixed = true
	header.ZIndex = 100
	header.Background = headerIdle
	logo := newBox("a", "logo", 160, 24)
	logo.X, logo.Y = 24, 20
	logo.Text = "TrueNetwork"
	logo.Foreground = brandColor
	header.AddChild(logo)

	nav := newBox("ul", "nav", 480, linkHeight, "nav-list")
	nav.Layout = LayoutRow
	nav.Gap = 8
	for _, label := range []string{"Features", "Solutions", "Impact", "FAQ"} {
		link := newBox("a", "nav-"+label, 110, linkHeight)
		link.Text = label
		nav.AddChild(link)
	}
	header.AddChild(nav)

	actions := newBox("div", "nav-actions", 176, 56, "nav-actions")
	cta := newBox("button", "nav-cta", 160, linkHeight)
	cta.X, cta.Y = 8, 8
	cta.Text = "Get started"
	cta.Background = brandColor
	cta.Foreground = ColorWhite
	actions.AddChild(cta)
	header.AddChild(actions)

	toggle := newBox("button", "menu-toggle", 44, linkHeight, "mobile-menu-toggle")
	toggle.Text = "="
	toggle.Border = borderColor
	toggle.SetAttr("aria-expanded", "false")
	header.AddChild(toggle)
	root.AddChild(header)

	spacer := newBox("div", "header-spacer", 0, headerHeight)
	spacer.WidthFrac = 1
	root.AddChild(spacer)

	hero := newBox("section", "hero", 0, heroHeight)
	hero.WidthFrac = 1
	hero.Background = surfaceColor
	if !noCanvas {
		canvas := newBox("canvas", "networkCanvas", 0, heroHeight)
		canvas.WidthFrac = 1
		hero.AddChild(canvas)
	}
	title := newBox("h1", "hero-title", 640, 48)
	title.X, title.Y = 48, 200
	title.Text = "Connected infrastructure for a sustainable network"
	title.Foreground = heroTextColor
	hero.AddChild(title)
	root.AddChild(hero)

	features := newSection("features")
	features.AddChild(newHeading("Features"))
	tabBar := newRow(linkHeight)
	tabs := []struct{ key, label, body string }{
		{"monitoring", "Monitoring", "Live topology and health for every node."},
		{"automation", "Automation", "Policy-driven provisioning across regions."},
		{"analytics", "Analytics", "Capacity trends and energy reporting."},
	}
	for i, t := range tabs {
		b := newBox("button", "tab-"+t.key, 160, linkHeight, "tab-button")
		b.Text = t.label
		b.Border = borderColor
		b.SetData("tab", t.key)
		b.SetAttr("aria-selected", "false")
		if i == 0 {
			b.AddClass("active")
			b.SetAttr("aria-selected", "true")
		}
		tabBar.AddChild(b)
	}
	features.AddChild(tabBar)
	for i, t := range tabs {
		c := newBox("div", "panel-"+t.key, 0, 96, "tab-content")
		c.WidthFrac = 1
		c.Text = t.body
		c.Background = surfaceColor
		c.SetData("content", t.key)
		if i == 0 {
			c.AddClass("active")
		}
		features.AddChild(c)
	}
	cards := newRow(140)
	for i := range 3 {
		cards.AddChild(newCard("feature-card", fmt.Sprintf("Feature %d", i+1), 3))
	}
	features.AddChild(cards)
	root.AddChild(features)

	solutions := newSection("solutions")
	solutions.AddChild(newHeading("Solutions"))
	for _, s := range []struct{ key, label, body string }{
		{"edge", "Edge networking", "Low-latency links for distributed sites."},
		{"core", "Core backbone", "Redundant transport between data centers."},
		{"cloud", "Cloud interconnect", "Private paths into every major provider."},
	} {
		item := newBox("div", "dropdown-"+s.key, 0, 0, "feature-dropdown-item")
		item.WidthFrac = 1
		item.Layout = LayoutColumn
		item.AutoHeight = true
		btn := newBox("button", "dropdown-button-"+s.key, 0, 48, "feature-dropdown-button")
		btn.WidthFrac = 1
		btn.Text = s.label
		btn.Background = surfaceColor
		btn.Border = borderColor
		btn.SetAttr("aria-expanded", "false")
		body := newBox("div", "dropdown-content-"+s.key, 0, 72, "feature-dropdown-content")
		body.WidthFrac = 1
		body.Text = s.body
		item.AddChild(btn)
		item.AddChild(body)
		solutions.AddChild(item)
	}
	solCards := newRow(140)
	for i := range 2 {
		solCards.AddChild(newCard("solution-card", fmt.Sprintf("Case study %d", i+1), 2))
	}
	solutions.AddChild(solCards)
	root.AddChild(solutions)

	impact := newSection("impact")
	impact.AddChild(newHeading("Sustainable development goals"))
	sdg := newRow(140)
	for _, goal := range []string{"7 Clean energy", "9 Infrastructure", "11 Cities", "13 Climate"} {
		sdg.AddChild(newCard("sdg-card", goal, 4))
	}
	impact.AddChild(sdg)
	root.AddChild(impact)

	faq := newSection("faq")
	faq.AddChild(newHeading("Frequently asked questions"))
	for i, qa := range [][2]string{
		{"How long does onboarding take?", "Most networks are mapped within a day."},
		{"Which vendors are supported?", "Any device that speaks SNMP, gNMI or NETCONF."},
		{"Can I self-host?", "Yes, the collector runs in your own environment."},
		{"How is energy measured?", "From device telemetry, calibrated per model."},
	} {
		item := newBox("div", fmt.Sprintf("faq-%d", i), 0, 0, "faq-item")
		item.WidthFrac = 1
		item.Layout = LayoutColumn
		item.AutoHeight = true
		q := newBox("button", fmt.Sprintf("faq-question-%d", i), 0, 48, "faq-question")
		q.WidthFrac = 1
		q.Text = qa[0]
		q.Background = surfaceColor
		q.Border = borderColor
		q.SetAttr("aria-expanded", "false")
		a := newBox("div", fmt.Sprintf("faq-answer-%d", i), 0, 64, "faq-answer")
		a.WidthFrac = 1
		a.Text = qa[1]
		item.AddChild(q)
		item.AddChild(a)
		faq.AddChild(item)
	}
	root.AddChild(faq)

	ctaSection := newSection("cta")
	ctaSection.AddChild(newHeading("Stay in the loop"))
	form := newBox("form", "cta-form", 0, 56, "cta-form")
	form.WidthFrac = 1
	form.Layout = LayoutRow
	form.Gap = 12
	input := newBox("input", "email", 0, 48)
	input.WidthFrac = 0.7
	input.Background = surfaceColor
	input.Border = borderColor
	input.SetAttr("type", "email")
	input.SetAttr("placeholder", "you@company.com")
	submit := newBox("button", "subscribe", 0, 48)
	submit.WidthFrac = 0.3
	submit.Text = "Subscribe"
	submit.Background = brandColor
	submit.Foreground = ColorWhite
	submit.SetAttr("type", "submit")
	form.AddChild(input)
	form.AddChild(submit)
	ctaSection.AddChild(form)
	root.AddChild(ctaSection)

	footer := newBox("footer", "footer", 0, 80)
	footer.WidthFrac = 1
	footer.Background = inkColor
	footer.Foreground = ColorWhite
	footer.Text = "TrueNetwork"
	root.AddChild(footer)
}
