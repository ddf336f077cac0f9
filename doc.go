// Package truenetwork renders the TrueNetwork landing page with
// [Ebitengine]: an animated particle network behind the hero section, plus
// the page's interactive widgets.
//
// # Quick start
//
//	l := truenetwork.NewLanding(truenetwork.DefaultLandingOptions())
//	err := truenetwork.Run(l.Page, truenetwork.RunConfig{
//		Title: "TrueNetwork", Width: 1280, Height: 800, Resizable: true,
//	})
//
// # Pages and elements
//
// A [Page] owns a tree of [Element] values, a viewport and a scroll offset.
// Elements carry classes, attributes and data values, and are stacked by a
// small flow layout ([LayoutColumn], [LayoutRow]). A [StyleFunc] decides
// which elements are shown for the current viewport, the way a stylesheet
// with media queries would.
//
// Widgets never search the page themselves. Each one receives the elements
// it drives when it is constructed, and [Mount] is the single place that
// looks them up:
//
//	tabs := truenetwork.NewTabSystem(buttons, panels)
//	faq := truenetwork.NewFAQAccordion(items)
//	menu := truenetwork.NewMobileMenu(page, toggle, navList, navActions)
//
// # Network animation
//
// [NetworkAnimation] keeps floor(width*height/density) points moving across
// a [Surface] and joins every pair closer than MaxDistance with a line
// whose opacity falls off linearly with distance. Frames are scheduled
// through a [FrameScheduler]; the page runs queued callbacks once per
// Update. [ComputeEdges] offers a brute-force sweep and a uniform grid that
// produce the same edge set.
//
//	anim := truenetwork.NewNetworkAnimation(surface, page, truenetwork.DefaultNetworkConfig())
//	anim.Initialize()
//	defer anim.Close()
//
// # Tweens and timers
//
// Transitions are driven by [gween] through [TweenGroup]; [Page.AfterFunc]
// runs delayed callbacks on page time, so tests can advance it
// deterministically.
//
// # Automation
//
// Input can be injected with [Page.InjectClick] and friends, and a JSON
// script loaded with [LoadTestScript] clicks, scrolls, types and captures
// screenshots frame by frame.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package truenetwork
