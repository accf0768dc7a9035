package particle

// Diffusion exchanges temperature between particle pairs within a cutoff
// radius, a discrete nearest-neighbor approximation of the diffusion PDE.
// Each transfer is antisymmetric: what one particle gains its neighbor
// loses, so the summed temperature is conserved to floating-point
// rounding. The exchanged fraction falls off with separation distance.
type Diffusion struct {
	Cutoff float64
	Coeff  float64
}

// Exchange runs one pairwise pass over the system.
func (d Diffusion) Exchange(sys *System, dt float64) {
	if d.Cutoff <= 0 || d.Coeff <= 0 {
		return
	}
	ps := sys.Particles
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			r := ps[j].Pos.Sub(ps[i].Pos).Norm()
			if r > d.Cutoff {
				continue
			}
			if r < minSeparation {
				r = minSeparation
			}
			frac := d.Coeff * dt * (1 - r/d.Cutoff)
			if frac > 0.5 {
				frac = 0.5
			}
			flux := frac * (ps[j].Temp - ps[i].Temp)
			ps[i].Temp += flux
			ps[j].Temp -= flux
		}
	}
}

// Apply lets a Diffusion run inside a Stepper's force list, covering the
// pairwise stage of the sub-step order.
func (d Diffusion) Apply(sys *System, dt float64) {
	d.Exchange(sys, dt)
}

// Cooling relaxes every particle toward an ambient baseline at a fixed
// exponential rate, Newton's law of cooling. Runs separately from the
// conserving pairwise exchange.
type Cooling struct {
	Ambient float64
	Rate    float64
}

func (c Cooling) Apply(sys *System, dt float64) {
	for i := range sys.Particles {
		p := &sys.Particles[i]
		p.Temp += (c.Ambient - p.Temp) * c.Rate * dt
	}
}
