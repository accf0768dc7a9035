package particle

import (
	"math"

	"github.com/tmarkov/physviz/internal/phys"
)

// MaxCount bounds the particle population. The pairwise passes are O(n²),
// which holds frame rate up to roughly this many particles.
const MaxCount = 200

// Particle carries the mutable per-particle state. It is owned exclusively
// by the simulation that created it and mutated only inside a sub-step.
type Particle struct {
	Pos    phys.Vec2
	Vel    phys.Vec2
	Radius float64
	Temp   float64
	Charge float64
}

// Bounds is the rectangular region particles are reflected into.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether the particle's disc lies inside the bounds.
func (b Bounds) Contains(p Particle) bool {
	return p.Pos.X-p.Radius >= b.MinX && p.Pos.X+p.Radius <= b.MaxX &&
		p.Pos.Y-p.Radius >= b.MinY && p.Pos.Y+p.Radius <= b.MaxY
}

// Reflect clamps the particle into the bounds and reverses the offending
// velocity component scaled by the restitution factor.
func (b Bounds) Reflect(p *Particle, restitution float64) {
	if p.Pos.X-p.Radius < b.MinX {
		p.Pos.X = b.MinX + p.Radius
		p.Vel.X = math.Abs(p.Vel.X) * restitution
	} else if p.Pos.X+p.Radius > b.MaxX {
		p.Pos.X = b.MaxX - p.Radius
		p.Vel.X = -math.Abs(p.Vel.X) * restitution
	}
	if p.Pos.Y-p.Radius < b.MinY {
		p.Pos.Y = b.MinY + p.Radius
		p.Vel.Y = math.Abs(p.Vel.Y) * restitution
	} else if p.Pos.Y+p.Radius > b.MaxY {
		p.Pos.Y = b.MaxY - p.Radius
		p.Vel.Y = -math.Abs(p.Vel.Y) * restitution
	}
}

// System is a collection of particles inside a bounded region.
type System struct {
	Particles []Particle
	Bounds    Bounds
}

func NewSystem(n int, bounds Bounds) *System {
	if n < 0 {
		n = 0
	}
	if n > MaxCount {
		n = MaxCount
	}
	return &System{
		Particles: make([]Particle, n),
		Bounds:    bounds,
	}
}

// TotalTemp returns the summed temperature attribute. The pairwise
// diffusion pass conserves this exactly.
func (s *System) TotalTemp() float64 {
	sum := 0.0
	for i := range s.Particles {
		sum += s.Particles[i].Temp
	}
	return sum
}

// KineticEnergy returns ½Σ|v|² with unit mass per particle.
func (s *System) KineticEnergy() float64 {
	sum := 0.0
	for i := range s.Particles {
		v := s.Particles[i].Vel
		sum += 0.5 * v.Dot(v)
	}
	return sum
}

// MaxSpeed returns the largest velocity magnitude in the system.
func (s *System) MaxSpeed() float64 {
	max := 0.0
	for i := range s.Particles {
		if sp := s.Particles[i].Vel.Norm(); sp > max {
			max = sp
		}
	}
	return max
}
