package sims

import (
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/particle"
	"github.com/tmarkov/physviz/internal/phys"
)

// borisSubsteps resolves the helix well below the cyclotron period at
// the field strengths the parameter range allows. Too few, too-large
// sub-steps would visibly distort the pitch even though the method
// stays stable.
const borisSubsteps = 20

type cyclotronConfig struct {
	charge float64
	mass   float64
	field  float64
	speed  float64
}

// Cyclotron traces a charged particle through a uniform magnetic field
// along the z axis using the Boris velocity rotation, so the speed is
// preserved exactly at every sub-step.
type Cyclotron struct {
	frame.Lifecycle
	params  *frame.ParamSet
	cfg     cyclotronConfig
	surface frame.Surface

	pos   phys.Vec3
	vel   phys.Vec3
	trail *frame.Trail
	pts   []phys.Vec2
}

func NewCyclotron() *Cyclotron {
	return &Cyclotron{params: frame.NewParamSet()}
}

func (c *Cyclotron) resolve() {
	c.cfg = cyclotronConfig{
		charge: c.params.GetClamped("charge", 1, -10, 10),
		mass:   c.params.GetClamped("mass", 1, 0.1, 100),
		field:  c.params.GetClamped("field", 1, -20, 20),
		speed:  c.params.GetClamped("speed", 40, 1, 400),
	}
}

func (c *Cyclotron) Init(s frame.Surface) {
	c.BeginInit()
	c.surface = s
	c.trail = frame.NewTrail(400)
	c.resolve()
	c.place()
}

// place positions the particle deterministically from current config.
func (c *Cyclotron) place() {
	c.pos = phys.Vec3{X: c.surface.Width / 2, Y: c.surface.Height / 2}
	c.vel = phys.Vec3{X: c.cfg.speed, Y: 0, Z: c.cfg.speed / 4}
}

func (c *Cyclotron) Advance(dt float64, p frame.Params) {
	c.BeginAdvance()
	c.params.Update(p)
	c.resolve()

	dt = particle.ClampDelta(dt)
	sub := dt / borisSubsteps
	qm := c.cfg.charge / c.cfg.mass
	b := phys.Vec3{Z: c.cfg.field}

	for i := 0; i < borisSubsteps; i++ {
		c.vel = phys.BorisRotate(c.vel, qm, b, sub)
		c.pos = c.pos.Add(c.vel.Scale(sub))
	}
	c.trail.Push(phys.Vec2{X: c.pos.X, Y: c.pos.Y})
}

func (c *Cyclotron) Reset() {
	c.BeginReset()
	c.resolve()
	c.place()
	c.trail.Clear()
}

func (c *Cyclotron) Resize(w, h float64) {
	c.BeginResize()
	dx := w - c.surface.Width
	dy := h - c.surface.Height
	c.surface = frame.Surface{Width: w, Height: h}
	// keep the orbit centered rather than resetting it
	c.pos.X += dx / 2
	c.pos.Y += dy / 2
}

func (c *Cyclotron) Describe() []frame.Stat {
	vPerp := phys.Vec2{X: c.vel.X, Y: c.vel.Y}.Norm()
	omega := phys.CyclotronFreq(c.cfg.mass, c.cfg.charge, c.cfg.field)
	return []frame.Stat{
		{Label: "speed", Value: c.vel.Norm(), Unit: "px/s"},
		{Label: "radius", Value: phys.CyclotronRadius(c.cfg.mass, c.cfg.charge, vPerp, c.cfg.field), Unit: "px"},
		{Label: "frequency", Value: omega, Unit: "rad/s"},
		{Label: "pitch", Value: phys.HelixPitch(c.vel.Z, omega), Unit: "px"},
	}
}

func (c *Cyclotron) Destroy() {
	c.BeginDestroy()
	c.trail = nil
	c.pts = nil
}

// Points returns the trail plus the current position for rendering.
func (c *Cyclotron) Points() []phys.Vec2 {
	c.pts = c.pts[:0]
	for i := 0; i < c.trail.Len(); i++ {
		c.pts = append(c.pts, c.trail.At(i))
	}
	c.pts = append(c.pts, phys.Vec2{X: c.pos.X, Y: c.pos.Y})
	return c.pts
}
