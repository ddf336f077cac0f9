package truenetwork

import (
	"math"
	"math/rand/v2"
	"time"
)

// Point is a moving node of the network animation.
type Point struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// NetworkConfig controls point generation and drawing.
type NetworkConfig struct {
	// Density is the surface area per point; count = floor(w*h/Density).
	Density float64
	// MaxDistance is the exclusive distance under which two points are joined.
	MaxDistance float64
	// Speed is the range of each velocity component, in units per frame.
	Speed Range
	// Radius is the range of point radii.
	Radius Range
	// LineColor is the base edge color; its alpha is replaced per edge.
	LineColor Color
	// LineAlpha scales each edge's opacity before it is drawn.
	LineAlpha float64
	// LineWidth is the stroke width of edges.
	LineWidth float64
	// PointColor fills every point.
	PointColor Color
	// Index selects the pair search used each frame.
	Index EdgeIndex
	// Rand, when set, replaces the global random source. Tests use it to get
	// reproducible layouts; the page leaves it nil.
	Rand *rand.Rand
}

// DefaultNetworkConfig returns the hero animation settings: one point per
// 25000 square units, joined under 150 units, in rgb(30, 64, 175).
func DefaultNetworkConfig() NetworkConfig {
	return NetworkConfig{
		Density:     25000,
		MaxDistance: 150,
		Speed:       Range{Min: -0.25, Max: 0.25},
		Radius:      Range{Min: 2, Max: 5},
		LineColor:   RGB255(30, 64, 175, 1),
		LineAlpha:   0.3,
		LineWidth:   1,
		PointColor:  RGB255(30, 64, 175, 0.6),
		Index:       IndexBruteForce,
	}
}

// NetworkStats reports the cost of the most recent Step.
type NetworkStats struct {
	Points   int
	Edges    int
	StepTime time.Duration
}

// AnimationHost schedules frames and reports viewport resizes. Page
// implements it.
type AnimationHost interface {
	FrameScheduler
	OnResize(fn func(Viewport)) CallbackHandle
}

// NetworkAnimation owns a set of moving points and the edges between nearby
// points. Each frame it advances the points, recomputes every edge from
// scratch and redraws the surface.
type NetworkAnimation struct {
	config  NetworkConfig
	surface Surface
	host    AnimationHost

	points []Point
	edges  []Edge
	width  float64
	height float64

	handle  FrameHandle
	running bool
	resize  CallbackHandle
	bound   bool
	stats   NetworkStats
}

// NewNetworkAnimation binds an animation to a surface and a host.
// Zero-valued Density or MaxDistance fall back to the defaults. Call
// Initialize to generate points and start the loop.
func NewNetworkAnimation(surface Surface, host AnimationHost, cfg NetworkConfig) *NetworkAnimation {
	def := DefaultNetworkConfig()
	if cfg.Density <= 0 {
		cfg.Density = def.Density
	}
	if cfg.MaxDistance <= 0 {
		cfg.MaxDistance = def.MaxDistance
	}
	return &NetworkAnimation{
		config:  cfg,
		surface: surface,
		host:    host,
	}
}

// Initialize measures the surface, generates points and edges, starts the
// per-frame loop and registers a resize handler that regenerates
// everything. Calling it again regenerates without adding a second handler.
func (a *NetworkAnimation) Initialize() {
	a.regenerate()
	a.Start()
	if !a.bound {
		a.bound = true
		a.resize = a.host.OnResize(func(Viewport) { a.Resize() })
	}
}

// Resize re-measures the surface and regenerates every point and edge. No
// position is carried over.
func (a *NetworkAnimation) Resize() {
	a.regenerate()
}

func (a *NetworkAnimation) regenerate() {
	w, h := a.surface.Measure()
	a.width, a.height = float64(w), float64(h)
	a.createPoints()
	a.edges = ComputeEdges(a.points, a.config.MaxDistance, a.config.Index, a.edges)
}

// PointCount returns floor(width*height/density), never negative.
func PointCount(width, height, density float64) int {
	if width <= 0 || height <= 0 || density <= 0 {
		return 0
	}
	return int(math.Floor(width * height / density))
}

func (a *NetworkAnimation) createPoints() {
	n := PointCount(a.width, a.height, a.config.Density)
	a.points = make([]Point, n)
	rng := a.config.Rand
	full := func(extent float64) Range { return Range{Min: 0, Max: extent} }
	for i := range a.points {
		a.points[i] = Point{
			X:      full(a.width).randomFrom(rng),
			Y:      full(a.height).randomFrom(rng),
			VX:     a.config.Speed.randomFrom(rng),
			VY:     a.config.Speed.randomFrom(rng),
			Radius: a.config.Radius.randomFrom(rng),
		}
	}
}

// Start schedules the frame loop. It is a no-op when already running.
func (a *NetworkAnimation) Start() {
	if a.running {
		return
	}
	a.running = true
	a.handle = a.host.RequestFrame(a.frame)
}

// frame is the scheduled callback: one Step, then re-request while running.
func (a *NetworkAnimation) frame() {
	a.handle = 0
	if !a.running {
		return
	}
	a.Step()
	if a.running {
		a.handle = a.host.RequestFrame(a.frame)
	}
}

// Stop cancels the pending frame request. Safe to call repeatedly and
// before Initialize.
func (a *NetworkAnimation) Stop() {
	a.running = false
	if a.handle != 0 {
		a.host.CancelFrame(a.handle)
		a.handle = 0
	}
}

// Close stops the loop and removes the resize handler.
func (a *NetworkAnimation) Close() {
	a.Stop()
	a.resize.Remove()
	a.bound = false
}

// Running reports whether a next frame is scheduled or executing.
func (a *NetworkAnimation) Running() bool {
	return a.running
}

// Step advances every point by its velocity, reflects velocities at the
// surface border, recomputes the edge set and redraws.
func (a *NetworkAnimation) Step() {
	t0 := time.Now()
	a.advance()
	a.edges = ComputeEdges(a.points, a.config.MaxDistance, a.config.Index, a.edges)
	a.draw()
	a.stats = NetworkStats{Points: len(a.points), Edges: len(a.edges), StepTime: time.Since(t0)}
}

// advance moves each point and flips the velocity component of any coordinate
// that left [0, extent]. Overshoot is not corrected, so a point can sit up to
// one frame's travel outside before it comes back.
func (a *NetworkAnimation) advance() {
	for i := range a.points {
		p := &a.points[i]
		p.X += p.VX
		p.Y += p.VY
		if p.X < 0 || p.X > a.width {
			p.VX = -p.VX
		}
		if p.Y < 0 || p.Y > a.height {
			p.VY = -p.VY
		}
	}
}

// draw clears the surface and paints edges first, then points on top.
func (a *NetworkAnimation) draw() {
	a.surface.Clear()
	for _, e := range a.edges {
		s, t := a.points[e.Start], a.points[e.End]
		c := a.config.LineColor.WithAlpha(e.Opacity * a.config.LineAlpha)
		a.surface.StrokeLine(s.X, s.Y, t.X, t.Y, a.config.LineWidth, c)
	}
	for _, p := range a.points {
		a.surface.FillCircle(p.X, p.Y, p.Radius, a.config.PointColor)
	}
}

// Points returns the current points. The slice MUST NOT be retained across
// frames; it is replaced on resize.
func (a *NetworkAnimation) Points() []Point {
	return a.points
}

// Edges returns the edge set computed by the latest Initialize, Resize or
// Step. The slice is reused every frame.
func (a *NetworkAnimation) Edges() []Edge {
	return a.edges
}

// Size returns the surface size measured at the last Initialize or Resize.
func (a *NetworkAnimation) Size() (width, height float64) {
	return a.width, a.height
}

// Config returns a pointer to the animation's config for live tuning.
// Density changes apply at the next Resize.
func (a *NetworkAnimation) Config() *NetworkConfig {
	return &a.config
}

// Stats returns the counters of the latest Step.
func (a *NetworkAnimation) Stats() NetworkStats {
	return a.stats
}
