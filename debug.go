package truenetwork

import (
	"fmt"
	"os"
	"time"
)

// debugStats holds per-frame timing and draw metrics.
// Only populated when Page.debug is true.
type debugStats struct {
	drawTime time.Duration
	elements int
	frames   uint64
	scrollY  float64
}

// debugLog prints timing and draw stats to stderr, followed by the network
// counters of every attached animation.
func (p *Page) debugLog(stats debugStats) {
	if !p.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr,
		"[truenetwork] frame %d | draw: %v | elements: %d | scroll: %.0f/%.0f\n",
		stats.frames, stats.drawTime, stats.elements, stats.scrollY, p.MaxScroll())
	for _, a := range p.animations {
		s := a.Stats()
		_, _ = fmt.Fprintf(os.Stderr,
			"[truenetwork] network: points %d | edges %d | step %v\n",
			s.Points, s.Edges, s.StepTime)
	}
}

// TrackAnimation includes a's counters in the debug log.
func (p *Page) TrackAnimation(a *NetworkAnimation) {
	p.animations = append(p.animations, a)
}

// debugMaxPoints is the point count above which the brute-force edge sweep
// is reported as a candidate for the grid index.
const debugMaxPoints = 400

func debugCheckPointCount(a *NetworkAnimation) {
	if n := len(a.points); n > debugMaxPoints && a.config.Index == IndexBruteForce {
		_, _ = fmt.Fprintf(os.Stderr,
			"[truenetwork] warning: %d points with brute-force edges (threshold %d); consider IndexGrid\n",
			n, debugMaxPoints)
	}
}
