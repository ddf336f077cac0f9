package truenetwork

import (
	"testing"
	"time"
)

type menuPage struct {
	*Page
	header, toggle, nav, link, actions, outside *Element
}

func newMenuPage(width int) *menuPage {
	mp := &menuPage{Page: NewPage(width, 600)}
	mp.header = NewElement("header", "header", "site-header")
	mp.toggle = NewElement("button", "toggle", "mobile-menu-toggle")
	mp.nav = NewElement("ul", "nav", "nav-list")
	mp.nav.Height = 160
	mp.link = NewElement("a", "link")
	mp.nav.AddChild(mp.link)
	mp.actions = NewElement("div", "actions", "nav-actions")
	mp.header.AddChild(mp.toggle)
	mp.header.AddChild(mp.nav)
	mp.header.AddChild(mp.actions)
	mp.outside = NewElement("section", "outside")
	mp.Root().AddChild(mp.header)
	mp.Root().AddChild(mp.outside)
	return mp
}

func (mp *menuPage) clickOn(el *Element) {
	mp.click(el, 0, 0, MouseButtonLeft)
}

func TestMobileMenuOpen(t *testing.T) {
	mp := newMenuPage(375)
	m := NewMobileMenu(mp.Page, mp.toggle, mp.nav, mp.actions)

	mp.clickOn(mp.toggle)
	if !m.IsOpen() || expanded(mp.toggle) != "true" {
		t.Fatal("menu not open")
	}
	if mp.nav.Display != DisplayShow || mp.nav.ZIndex != 999 {
		t.Errorf("nav display %v z %d", mp.nav.Display, mp.nav.ZIndex)
	}
	if mp.actions.Display != DisplayShow || mp.actions.ZIndex != 999 {
		t.Errorf("actions display %v z %d", mp.actions.Display, mp.actions.ZIndex)
	}
	if mp.actions.Top != 0 {
		t.Error("actions moved before the delay")
	}
	mp.tick(10 * time.Millisecond)
	if mp.actions.Top != 160 {
		t.Errorf("actions top = %v, want 160", mp.actions.Top)
	}
}

func TestMobileMenuToggleCloses(t *testing.T) {
	mp := newMenuPage(375)
	m := NewMobileMenu(mp.Page, mp.toggle, mp.nav, mp.actions)
	mp.clickOn(mp.toggle)
	mp.clickOn(mp.toggle)
	if m.IsOpen() || expanded(mp.toggle) != "false" {
		t.Fatal("menu still open")
	}
	if mp.nav.Display != DisplayNone || mp.actions.Display != DisplayNone {
		t.Error("lists not hidden on mobile")
	}
}

func TestMobileMenuCloseOnDesktopKeepsLists(t *testing.T) {
	mp := newMenuPage(1024)
	m := NewMobileMenu(mp.Page, mp.toggle, mp.nav, mp.actions)
	m.Toggle()
	m.CloseMenu()
	if m.IsOpen() {
		t.Fatal("menu still open")
	}
	if mp.nav.Display == DisplayNone || mp.actions.Display == DisplayNone {
		t.Error("lists hidden on a desktop viewport")
	}
}

func TestMobileMenuOutsideClick(t *testing.T) {
	mp := newMenuPage(375)
	m := NewMobileMenu(mp.Page, mp.toggle, mp.nav, mp.actions)
	m.Toggle()

	mp.clickOn(mp.actions)
	if !m.IsOpen() {
		t.Fatal("click inside the header closed the menu")
	}
	mp.clickOn(mp.outside)
	if m.IsOpen() || expanded(mp.toggle) != "false" {
		t.Error("outside click did not close the menu")
	}
}

func TestMobileMenuLinkClick(t *testing.T) {
	mp := newMenuPage(375)
	m := NewMobileMenu(mp.Page, mp.toggle, mp.nav, mp.actions)
	m.Toggle()
	mp.clickOn(mp.nav)
	if !m.IsOpen() {
		t.Fatal("click on the list itself closed the menu")
	}
	mp.clickOn(mp.link)
	if m.IsOpen() {
		t.Error("link click did not close the menu")
	}
}

func TestMobileMenuOptionalLists(t *testing.T) {
	mp := newMenuPage(375)
	if NewMobileMenu(mp.Page, nil, mp.nav, mp.actions) != nil {
		t.Error("expected nil without a toggle")
	}
	m := NewMobileMenu(mp.Page, mp.toggle, nil, nil)
	m.Toggle()
	mp.tick(time.Second)
	m.Toggle()
	if m.IsOpen() {
		t.Error("menu without lists did not toggle")
	}
}

func TestMobileMenuClose(t *testing.T) {
	mp := newMenuPage(375)
	m := NewMobileMenu(mp.Page, mp.toggle, mp.nav, mp.actions)
	m.Toggle()
	m.Close()
	mp.tick(time.Second)
	if mp.actions.Top != 0 {
		t.Error("pending timer ran after Close")
	}
	mp.clickOn(mp.outside)
	if !m.IsOpen() {
		t.Error("closed menu still listens for document clicks")
	}
}
