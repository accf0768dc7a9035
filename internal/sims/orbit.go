package sims

import (
	"math"

	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/particle"
	"github.com/tmarkov/physviz/internal/phys"
)

type orbitConfig struct {
	ecc    float64
	period float64
}

// Orbit animates a body on an elliptical orbit. The true anomaly is
// recomputed every frame from elapsed time through Kepler's equation,
// never integrated incrementally, so the position cannot drift over a
// long session.
type Orbit struct {
	frame.Lifecycle
	params  *frame.ParamSet
	cfg     orbitConfig
	surface frame.Surface

	semiMajor float64
	elapsed   float64
	pos       phys.Vec2
	trail     *frame.Trail
	pts       []phys.Vec2
}

func NewOrbit() *Orbit {
	return &Orbit{params: frame.NewParamSet()}
}

func (o *Orbit) resolve() {
	o.cfg = orbitConfig{
		// parabolic and hyperbolic eccentricities would break the
		// Newton iteration, clamp strictly below 1
		ecc:    o.params.GetClamped("eccentricity", 0.5, 0, 0.99),
		period: o.params.GetClamped("period", 8, 0.5, 120),
	}
}

func (o *Orbit) Init(s frame.Surface) {
	o.BeginInit()
	o.surface = s
	o.trail = frame.NewTrail(600)
	o.resolve()
	o.layout()
	o.elapsed = 0
	o.pos = o.positionAt(0)
}

// layout converts the orbit size to pixel space from the surface.
func (o *Orbit) layout() {
	o.semiMajor = 0.35 * math.Min(o.surface.Width, o.surface.Height)
}

// positionAt derives the body position at a given elapsed time.
func (o *Orbit) positionAt(elapsed float64) phys.Vec2 {
	m := phys.MeanAnomalyAt(elapsed, o.cfg.period)
	en := phys.SolveKepler(m, o.cfg.ecc)
	nu := phys.TrueAnomaly(en, o.cfg.ecc)

	r := o.semiMajor * (1 - o.cfg.ecc*o.cfg.ecc) / (1 + o.cfg.ecc*math.Cos(nu))
	focus := o.focus()
	return phys.Vec2{
		X: focus.X + r*math.Cos(nu),
		Y: focus.Y + r*math.Sin(nu),
	}
}

// focus places the occupied focus at the surface center.
func (o *Orbit) focus() phys.Vec2 {
	return phys.Vec2{X: o.surface.Width / 2, Y: o.surface.Height / 2}
}

func (o *Orbit) Advance(dt float64, p frame.Params) {
	o.BeginAdvance()
	o.params.Update(p)
	o.resolve()

	o.elapsed += particle.ClampDelta(dt)
	o.pos = o.positionAt(o.elapsed)
	o.trail.Push(o.pos)
}

func (o *Orbit) Reset() {
	o.BeginReset()
	o.resolve()
	o.layout()
	o.elapsed = 0
	o.pos = o.positionAt(0)
	o.trail.Clear()
}

func (o *Orbit) Resize(w, h float64) {
	o.BeginResize()
	o.surface = frame.Surface{Width: w, Height: h}
	o.layout()
	o.pos = o.positionAt(o.elapsed)
}

func (o *Orbit) Describe() []frame.Stat {
	m := phys.MeanAnomalyAt(o.elapsed, o.cfg.period)
	en := phys.SolveKepler(m, o.cfg.ecc)
	nu := phys.TrueAnomaly(en, o.cfg.ecc)

	a := o.semiMajor
	b := a * math.Sqrt(1-o.cfg.ecc*o.cfg.ecc)
	// Kepler's second law: area is swept at a constant rate.
	swept := math.Mod(o.elapsed, o.cfg.period) / o.cfg.period * math.Pi * a * b

	return []frame.Stat{
		{Label: "mean anomaly", Value: m, Unit: "rad"},
		{Label: "true anomaly", Value: phys.WrapAngle(nu), Unit: "rad"},
		{Label: "radius", Value: o.pos.Sub(o.focus()).Norm(), Unit: "px"},
		{Label: "swept area", Value: swept, Unit: "px²"},
		{Label: "period", Value: o.cfg.period, Unit: "s"},
	}
}

func (o *Orbit) Destroy() {
	o.BeginDestroy()
	o.trail = nil
	o.pts = nil
}

func (o *Orbit) Points() []phys.Vec2 {
	o.pts = o.pts[:0]
	for i := 0; i < o.trail.Len(); i++ {
		o.pts = append(o.pts, o.trail.At(i))
	}
	o.pts = append(o.pts, o.pos, o.focus())
	return o.pts
}
