package sims

import (
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/particle"
	"github.com/tmarkov/physviz/internal/phys"
)

type electrostaticConfig struct {
	count    int
	strength float64
	centerX  float64
	centerY  float64
}

// Electrostatic holds a swarm of like-charged particles around a movable
// central charge: the center attracts or repels depending on its sign
// while the particles push each other apart, settling into a shell.
type Electrostatic struct {
	frame.Lifecycle
	params  *frame.ParamSet
	cfg     electrostaticConfig
	surface frame.Surface

	sys *particle.System
	pts []phys.Vec2
}

func NewElectrostatic() *Electrostatic {
	return &Electrostatic{params: frame.NewParamSet()}
}

func (e *Electrostatic) resolve() {
	e.cfg = electrostaticConfig{
		count:    e.params.GetCount("count", 30, particle.MaxCount),
		strength: e.params.GetClamped("charge", -300, -2000, 2000),
		centerX:  e.params.GetClamped("centerX", 0.5, 0, 1),
		centerY:  e.params.GetClamped("centerY", 0.5, 0, 1),
	}
}

func (e *Electrostatic) Init(s frame.Surface) {
	e.BeginInit()
	e.surface = s
	e.resolve()
	e.populate()
}

func (e *Electrostatic) populate() {
	bounds := particle.Bounds{MaxX: e.surface.Width, MaxY: e.surface.Height}
	e.sys = particle.NewSystem(e.cfg.count, bounds)

	cols := 6
	gapX := e.surface.Width / float64(cols+1)
	gapY := e.surface.Height / float64(e.cfg.count/cols+2)
	for i := range e.sys.Particles {
		p := &e.sys.Particles[i]
		p.Pos = phys.Vec2{
			X: gapX * float64(i%cols+1),
			Y: gapY * float64(i/cols+1),
		}
		p.Radius = 3
		p.Charge = 1
	}
}

func (e *Electrostatic) center() phys.Vec2 {
	return phys.Vec2{
		X: e.cfg.centerX * e.surface.Width,
		Y: e.cfg.centerY * e.surface.Height,
	}
}

func (e *Electrostatic) Advance(dt float64, p frame.Params) {
	e.BeginAdvance()
	e.params.Update(p)
	prev := e.cfg
	e.resolve()
	if e.cfg.count != prev.count {
		e.populate()
	}

	st := &particle.Stepper{
		Substeps:    particle.DefaultSubsteps,
		Damping:     1.2,
		Restitution: 0.6,
		Separate:    true,
		Forces: []particle.Force{
			particle.PointCharge{Center: e.center(), Strength: e.cfg.strength},
			particle.CoulombPairs{Strength: 80, Cutoff: 60},
		},
	}
	st.Step(e.sys, dt)
}

func (e *Electrostatic) Reset() {
	e.BeginReset()
	e.resolve()
	e.populate()
}

func (e *Electrostatic) Resize(w, h float64) {
	e.BeginResize()
	e.surface = frame.Surface{Width: w, Height: h}
	e.sys.Bounds = particle.Bounds{MaxX: w, MaxY: h}
	for i := range e.sys.Particles {
		e.sys.Bounds.Reflect(&e.sys.Particles[i], 0)
	}
}

func (e *Electrostatic) Describe() []frame.Stat {
	n := len(e.sys.Particles)
	meanDist := 0.0
	center := e.center()
	for i := range e.sys.Particles {
		meanDist += e.sys.Particles[i].Pos.Sub(center).Norm()
	}
	if n > 0 {
		meanDist /= float64(n)
	}
	return []frame.Stat{
		{Label: "particles", Value: float64(n)},
		{Label: "center charge", Value: e.cfg.strength},
		{Label: "mean distance", Value: meanDist, Unit: "px"},
		{Label: "kinetic", Value: e.sys.KineticEnergy()},
	}
}

func (e *Electrostatic) Destroy() {
	e.BeginDestroy()
	e.sys = nil
	e.pts = nil
}

func (e *Electrostatic) Points() []phys.Vec2 {
	e.pts = e.pts[:0]
	for i := range e.sys.Particles {
		e.pts = append(e.pts, e.sys.Particles[i].Pos)
	}
	return e.pts
}

func (e *Electrostatic) Particles() *particle.System { return e.sys }
