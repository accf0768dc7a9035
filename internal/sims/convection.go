package sims

import (
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/particle"
	"github.com/tmarkov/physviz/internal/phys"
)

type convectionConfig struct {
	count    int
	heatRate float64
	gravity  float64
	lift     float64
	ambient  float64
	cooling  float64
}

// Convection drives a convection cell: a heat source at the floor warms
// nearby particles, buoyancy lifts them, they cool near the top and sink
// back. Diffusion spreads heat between neighbors along the way.
type Convection struct {
	frame.Lifecycle
	params  *frame.ParamSet
	cfg     convectionConfig
	surface frame.Surface

	sys *particle.System
	pts []phys.Vec2
}

func NewConvection() *Convection {
	return &Convection{params: frame.NewParamSet()}
}

func (c *Convection) resolve() {
	c.cfg = convectionConfig{
		count:    c.params.GetCount("count", 60, particle.MaxCount),
		heatRate: c.params.GetClamped("heat", 120, 0, 1000),
		gravity:  c.params.GetClamped("gravity", 30, 0, 500),
		lift:     c.params.GetClamped("lift", 1.2, 0, 20),
		ambient:  c.params.GetClamped("ambient", 20, 0, 200),
		cooling:  c.params.GetClamped("cooling", 0.25, 0, 10),
	}
}

func (c *Convection) Init(s frame.Surface) {
	c.BeginInit()
	c.surface = s
	c.resolve()
	c.populate()
}

func (c *Convection) populate() {
	bounds := particle.Bounds{MaxX: c.surface.Width, MaxY: c.surface.Height}
	c.sys = particle.NewSystem(c.cfg.count, bounds)

	cols := 12
	gapX := c.surface.Width / float64(cols+1)
	gapY := c.surface.Height / float64(c.cfg.count/cols+2)
	for i := range c.sys.Particles {
		p := &c.sys.Particles[i]
		p.Pos = phys.Vec2{
			X: gapX * float64(i%cols+1),
			Y: gapY * float64(i/cols+1),
		}
		p.Radius = 3
		p.Temp = c.cfg.ambient
	}
}

func (c *Convection) heater() particle.HeatSource {
	return particle.HeatSource{
		Center: phys.Vec2{X: c.surface.Width / 2, Y: c.surface.Height},
		Radius: 0.4 * c.surface.Width,
		Rate:   c.cfg.heatRate,
	}
}

func (c *Convection) Advance(dt float64, p frame.Params) {
	c.BeginAdvance()
	c.params.Update(p)
	prev := c.cfg
	c.resolve()
	if c.cfg.count != prev.count {
		c.populate()
	}

	st := &particle.Stepper{
		Substeps:    particle.DefaultSubsteps,
		Jitter:      2,
		Damping:     0.9,
		Restitution: 0.5,
		Separate:    true,
		Forces: []particle.Force{
			c.heater(),
			particle.Buoyancy{Gravity: c.cfg.gravity, Lift: c.cfg.lift, Ambient: c.cfg.ambient},
			particle.Diffusion{Cutoff: 20, Coeff: 0.2},
			particle.Cooling{Ambient: c.cfg.ambient, Rate: c.cfg.cooling},
		},
	}
	st.Step(c.sys, dt)
}

func (c *Convection) Reset() {
	c.BeginReset()
	c.resolve()
	c.populate()
}

func (c *Convection) Resize(w, h float64) {
	c.BeginResize()
	c.surface = frame.Surface{Width: w, Height: h}
	c.sys.Bounds = particle.Bounds{MaxX: w, MaxY: h}
	for i := range c.sys.Particles {
		c.sys.Bounds.Reflect(&c.sys.Particles[i], 0)
	}
}

func (c *Convection) Describe() []frame.Stat {
	n := len(c.sys.Particles)
	mean, hottest := 0.0, 0.0
	for i := range c.sys.Particles {
		t := c.sys.Particles[i].Temp
		mean += t
		if t > hottest {
			hottest = t
		}
	}
	if n > 0 {
		mean /= float64(n)
	}
	return []frame.Stat{
		{Label: "particles", Value: float64(n)},
		{Label: "mean temp", Value: mean, Unit: "°"},
		{Label: "hottest", Value: hottest, Unit: "°"},
		{Label: "kinetic", Value: c.sys.KineticEnergy()},
	}
}

func (c *Convection) Destroy() {
	c.BeginDestroy()
	c.sys = nil
	c.pts = nil
}

func (c *Convection) Points() []phys.Vec2 {
	c.pts = c.pts[:0]
	for i := range c.sys.Particles {
		c.pts = append(c.pts, c.sys.Particles[i].Pos)
	}
	return c.pts
}

func (c *Convection) Particles() *particle.System { return c.sys }
