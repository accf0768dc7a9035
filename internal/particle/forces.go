package particle

import (
	"github.com/tmarkov/physviz/internal/phys"
)

// minSeparation floors the divisor in every pairwise 1/r term so a
// coincident pair cannot produce NaN or Inf and corrupt later frames.
const minSeparation = 1e-3

// Force adjusts particle velocities (and scalar attributes) for one
// sub-step. Forces run in the order they are registered on the Stepper;
// the order is fixed for reproducibility.
type Force interface {
	Apply(sys *System, dt float64)
}

// PointCharge attracts or repels every particle relative to a fixed
// center. Positive Strength repels particles of positive charge.
type PointCharge struct {
	Center   phys.Vec2
	Strength float64
}

func (f PointCharge) Apply(sys *System, dt float64) {
	for i := range sys.Particles {
		p := &sys.Particles[i]
		d := p.Pos.Sub(f.Center)
		r := d.Norm()
		if r < minSeparation {
			r = minSeparation
		}
		a := f.Strength * p.Charge / (r * r)
		p.Vel = p.Vel.Add(d.Unit().Scale(a * dt))
	}
}

// CoulombPairs applies mutual repulsion between every particle pair
// within the cutoff radius. O(n²) over the population.
type CoulombPairs struct {
	Strength float64
	Cutoff   float64
}

func (f CoulombPairs) Apply(sys *System, dt float64) {
	ps := sys.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := ps[j].Pos.Sub(ps[i].Pos)
			r := d.Norm()
			if f.Cutoff > 0 && r > f.Cutoff {
				continue
			}
			if r < minSeparation {
				r = minSeparation
			}
			a := f.Strength * ps[i].Charge * ps[j].Charge / (r * r)
			dir := d.Unit()
			ps[i].Vel = ps[i].Vel.Sub(dir.Scale(a * dt))
			ps[j].Vel = ps[j].Vel.Add(dir.Scale(a * dt))
		}
	}
}

// Buoyancy pulls particles down with gravity and lifts them in proportion
// to how far their temperature sits above the ambient baseline. Y grows
// downward, matching the display coordinates the simulations use.
type Buoyancy struct {
	Gravity float64
	Lift    float64
	Ambient float64
}

func (f Buoyancy) Apply(sys *System, dt float64) {
	for i := range sys.Particles {
		p := &sys.Particles[i]
		p.Vel.Y += (f.Gravity - f.Lift*(p.Temp-f.Ambient)) * dt
	}
}

// HeatSource raises the temperature of particles near a point, with the
// heating rate falling off linearly to zero at the source radius.
type HeatSource struct {
	Center phys.Vec2
	Radius float64
	Rate   float64
}

func (f HeatSource) Apply(sys *System, dt float64) {
	if f.Radius <= 0 {
		return
	}
	for i := range sys.Particles {
		p := &sys.Particles[i]
		r := p.Pos.Sub(f.Center).Norm()
		if r >= f.Radius {
			continue
		}
		p.Temp += f.Rate * (1 - r/f.Radius) * dt
	}
}

// Gravity applies a uniform downward acceleration, for simulations
// without a thermal component.
type Gravity struct {
	Accel float64
}

func (f Gravity) Apply(sys *System, dt float64) {
	for i := range sys.Particles {
		sys.Particles[i].Vel.Y += f.Accel * dt
	}
}

// clampSpeed caps a velocity magnitude, preserving direction.
func clampSpeed(v phys.Vec2, max float64) phys.Vec2 {
	if max <= 0 {
		return v
	}
	n := v.Norm()
	if n <= max {
		return v
	}
	return v.Scale(max / n)
}
