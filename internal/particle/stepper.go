package particle

import (
	"math"
	"math/rand"

	"github.com/tmarkov/physviz/internal/phys"
)

const (
	// MaxFrameDelta caps the wall-clock delta fed into a frame so a
	// stalled host can never cause one catastrophic integration step.
	MaxFrameDelta = 0.05

	// DefaultSubsteps splits each frame into equal sub-steps.
	DefaultSubsteps = 8

	// defaultMaxSpeed is the fallback speed clamp applied after every
	// sub-step for integrators that are not unconditionally stable.
	defaultMaxSpeed = 2000.0
)

// ClampDelta limits a frame delta to MaxFrameDelta and floors negatives.
func ClampDelta(dt float64) float64 {
	if dt < 0 {
		return 0
	}
	if dt > MaxFrameDelta {
		return MaxFrameDelta
	}
	return dt
}

// Stepper advances a System by one frame using fixed equal sub-steps.
//
// Per sub-step, in fixed order: registered forces (source-driven first,
// pairwise after, in registration order), thermal jitter, velocity
// damping, position integration, boundary reflection, and optional
// overlap separation. Jitter is the only non-deterministic stage; it
// draws from the process-wide random source and an amplitude of zero
// disables it entirely, leaving the pipeline deterministic.
type Stepper struct {
	Substeps    int
	Forces      []Force
	Jitter      float64 // random velocity kick amplitude, 0 disables
	Damping     float64 // fractional velocity decay per second
	Restitution float64 // boundary bounce factor, typically 0.5-0.8
	MaxSpeed    float64 // post-substep speed clamp, 0 uses the default
	Separate    bool    // resolve particle-particle overlap
}

// Step advances the system by one frame of the given wall-clock delta.
func (st *Stepper) Step(sys *System, dt float64) {
	dt = ClampDelta(dt)
	n := st.Substeps
	if n <= 0 {
		n = DefaultSubsteps
	}
	sub := dt / float64(n)
	if sub <= 0 {
		return
	}

	maxSpeed := st.MaxSpeed
	if maxSpeed <= 0 {
		maxSpeed = defaultMaxSpeed
	}

	for s := 0; s < n; s++ {
		for _, f := range st.Forces {
			f.Apply(sys, sub)
		}

		if st.Jitter > 0 {
			st.applyJitter(sys, sub)
		}

		if st.Damping > 0 {
			decay := 1 - st.Damping*sub
			if decay < 0 {
				decay = 0
			}
			for i := range sys.Particles {
				sys.Particles[i].Vel = sys.Particles[i].Vel.Scale(decay)
			}
		}

		for i := range sys.Particles {
			p := &sys.Particles[i]
			p.Vel = clampSpeed(p.Vel, maxSpeed)
			p.Pos = p.Pos.Add(p.Vel.Scale(sub))
			sys.Bounds.Reflect(p, st.Restitution)
		}

		if st.Separate {
			separateOverlaps(sys)
		}
	}
}

// applyJitter adds a small random velocity perturbation scaled by each
// particle's temperature, modelling Brownian-like motion. Intentionally
// seeded from the process-wide source, never replayed deterministically.
func (st *Stepper) applyJitter(sys *System, dt float64) {
	for i := range sys.Particles {
		p := &sys.Particles[i]
		scale := st.Jitter * math.Sqrt(math.Max(p.Temp, 0)) * dt
		p.Vel.X += (rand.Float64()*2 - 1) * scale
		p.Vel.Y += (rand.Float64()*2 - 1) * scale
	}
}

// separateOverlaps pushes overlapping pairs apart by an impulse
// proportional to penetration depth. Positional correction only, not a
// constraint solver.
func separateOverlaps(sys *System) {
	ps := sys.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := ps[j].Pos.Sub(ps[i].Pos)
			r := d.Norm()
			minDist := ps[i].Radius + ps[j].Radius
			if r >= minDist || minDist <= 0 {
				continue
			}
			if r < minSeparation {
				r = minSeparation
				d = phys.Vec2{X: minSeparation, Y: 0}
			}
			push := d.Unit().Scale((minDist - r) / 2)
			ps[i].Pos = ps[i].Pos.Sub(push)
			ps[j].Pos = ps[j].Pos.Add(push)
		}
	}
}
