package sims

import (
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/particle"
	"github.com/tmarkov/physviz/internal/phys"
)

type gasConfig struct {
	count     int
	hotTemp   float64
	ambient   float64
	diffusion float64
	jitter    float64
	cooling   float64
}

// Gas models a box of jittering particles. The left half starts hot and
// the right half cold; pairwise diffusion and Brownian-like jitter mix
// the two populations while ambient cooling pulls everything back down.
type Gas struct {
	frame.Lifecycle
	params  *frame.ParamSet
	cfg     gasConfig
	surface frame.Surface

	sys *particle.System
	pts []phys.Vec2
}

func NewGas() *Gas {
	return &Gas{params: frame.NewParamSet()}
}

func (g *Gas) resolve() {
	g.cfg = gasConfig{
		count:     g.params.GetCount("count", 80, particle.MaxCount),
		hotTemp:   g.params.GetClamped("temperature", 80, 0, 500),
		ambient:   g.params.GetClamped("ambient", 20, 0, 500),
		diffusion: g.params.GetClamped("diffusion", 0.3, 0, 5),
		jitter:    g.params.GetClamped("jitter", 6, 0, 100),
		cooling:   g.params.GetClamped("cooling", 0.05, 0, 10),
	}
}

func (g *Gas) Init(s frame.Surface) {
	g.BeginInit()
	g.surface = s
	g.resolve()
	g.populate()
}

// populate lays particles out on a deterministic grid, hot half on the
// left, so reset is idempotent for unchanged parameters.
func (g *Gas) populate() {
	bounds := particle.Bounds{MaxX: g.surface.Width, MaxY: g.surface.Height}
	g.sys = particle.NewSystem(g.cfg.count, bounds)

	cols := 10
	gapX := g.surface.Width / float64(cols+1)
	gapY := g.surface.Height / float64(g.cfg.count/cols+2)
	for i := range g.sys.Particles {
		p := &g.sys.Particles[i]
		col, row := i%cols, i/cols
		p.Pos = phys.Vec2{X: gapX * float64(col+1), Y: gapY * float64(row+1)}
		p.Radius = 2.5
		if col < cols/2 {
			p.Temp = g.cfg.hotTemp
		} else {
			p.Temp = g.cfg.ambient
		}
	}
}

func (g *Gas) Advance(dt float64, p frame.Params) {
	g.BeginAdvance()
	g.params.Update(p)
	prev := g.cfg
	g.resolve()
	if g.cfg.count != prev.count {
		g.populate()
	}

	st := &particle.Stepper{
		Substeps:    particle.DefaultSubsteps,
		Jitter:      g.cfg.jitter,
		Damping:     0.4,
		Restitution: 0.8,
		Forces: []particle.Force{
			particle.Diffusion{Cutoff: 18, Coeff: g.cfg.diffusion},
			particle.Cooling{Ambient: g.cfg.ambient, Rate: g.cfg.cooling},
		},
	}
	st.Step(g.sys, dt)
}

func (g *Gas) Reset() {
	g.BeginReset()
	g.resolve()
	g.populate()
}

func (g *Gas) Resize(w, h float64) {
	g.BeginResize()
	g.surface = frame.Surface{Width: w, Height: h}
	g.sys.Bounds = particle.Bounds{MaxX: w, MaxY: h}
	for i := range g.sys.Particles {
		g.sys.Bounds.Reflect(&g.sys.Particles[i], 0)
	}
}

func (g *Gas) Describe() []frame.Stat {
	n := len(g.sys.Particles)
	mean := 0.0
	if n > 0 {
		mean = g.sys.TotalTemp() / float64(n)
	}
	return []frame.Stat{
		{Label: "particles", Value: float64(n)},
		{Label: "mean temp", Value: mean, Unit: "°"},
		{Label: "total temp", Value: g.sys.TotalTemp(), Unit: "°"},
		{Label: "kinetic", Value: g.sys.KineticEnergy()},
		{Label: "max speed", Value: g.sys.MaxSpeed(), Unit: "px/s"},
	}
}

func (g *Gas) Destroy() {
	g.BeginDestroy()
	g.sys = nil
	g.pts = nil
}

func (g *Gas) Points() []phys.Vec2 {
	g.pts = g.pts[:0]
	for i := range g.sys.Particles {
		g.pts = append(g.pts, g.sys.Particles[i].Pos)
	}
	return g.pts
}

// Particles exposes the system for metric observers.
func (g *Gas) Particles() *particle.System { return g.sys }
