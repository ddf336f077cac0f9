package truenetwork

import (
	"strconv"
	"time"
)

const (
	// MobileBreakpoint is the widest viewport treated as mobile.
	MobileBreakpoint = 768.0

	menuZIndex       = 999
	menuActionsDelay = 10 * time.Millisecond
)

// MobileMenu opens and closes the navigation on narrow viewports.
type MobileMenu struct {
	page       *Page
	toggle     *Element
	navList    *Element
	navActions *Element
	isOpen     bool

	timer   TimerHandle
	handles []CallbackHandle
}

// NewMobileMenu wires the toggle button, a document click listener that
// closes the menu on clicks outside the ".site-header", and a navList
// listener that closes it when a link is clicked. navList and navActions may
// be nil. Returns nil when toggle is nil.
func NewMobileMenu(p *Page, toggle, navList, navActions *Element) *MobileMenu {
	if toggle == nil {
		return nil
	}
	m := &MobileMenu{page: p, toggle: toggle, navList: navList, navActions: navActions}

	m.handles = append(m.handles, toggle.OnClick(func(ClickContext) {
		m.Toggle()
	}))
	m.handles = append(m.handles, p.OnDocumentClick(func(ctx ClickContext) {
		if m.isOpen && ctx.Target.Closest("site-header") == nil {
			m.CloseMenu()
		}
	}))
	if navList != nil {
		m.handles = append(m.handles, navList.OnClick(func(ctx ClickContext) {
			if ctx.Target.Tag == "a" {
				m.CloseMenu()
			}
		}))
	}
	return m
}

// IsOpen reports the menu state.
func (m *MobileMenu) IsOpen() bool {
	return m.isOpen
}

// Toggle flips the menu state and mirrors it into aria-expanded.
func (m *MobileMenu) Toggle() {
	m.isOpen = !m.isOpen
	m.toggle.SetAttr("aria-expanded", strconv.FormatBool(m.isOpen))

	if m.isOpen {
		m.openMenu()
	} else {
		m.CloseMenu()
	}
}

// openMenu shows both lists above the page. The actions are pushed below
// the list a moment later, once the list has been laid out.
func (m *MobileMenu) openMenu() {
	if m.navList != nil {
		m.navList.Display = DisplayShow
		m.navList.ZIndex = menuZIndex
	}
	if m.navActions != nil {
		m.navActions.Display = DisplayShow
		m.navActions.ZIndex = menuZIndex

		m.page.CancelTimer(m.timer)
		m.timer = m.page.AfterFunc(menuActionsDelay, func() {
			m.timer = 0
			listHeight := 0.0
			if m.navList != nil {
				listHeight = m.navList.Height
			}
			m.navActions.Top = listHeight
		})
	}
}

// CloseMenu marks the menu closed and resets aria-expanded. The lists are
// only hidden on mobile viewports; on wider screens they are part of the
// regular header.
func (m *MobileMenu) CloseMenu() {
	m.isOpen = false
	m.toggle.SetAttr("aria-expanded", "false")

	if m.page.Viewport().Width <= MobileBreakpoint {
		if m.navList != nil {
			m.navList.Display = DisplayNone
		}
		if m.navActions != nil {
			m.navActions.Display = DisplayNone
		}
	}
}

// Close removes every listener and pending timer.
func (m *MobileMenu) Close() {
	for _, h := range m.handles {
		h.Remove()
	}
	m.handles = nil
	m.page.CancelTimer(m.timer)
}
