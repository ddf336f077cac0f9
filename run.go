package truenetwork

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	Debug   bool
	// Resizable lets the user resize the window; the page re-lays itself out
	// and the network animation regenerates on every size change.
	Resizable bool
}

// Run opens a window and drives page until the window is closed or Escape is
// pressed without a focused input. A clean quit returns nil.
func Run(page *Page, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 800
	}
	if cfg.Title == "" {
		cfg.Title = "TrueNetwork"
	}
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	page.SetDebugMode(cfg.Debug)
	if cfg.ShowFPS {
		page.ShowFPS(true)
	}
	if err := ebiten.RunGame(page); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
