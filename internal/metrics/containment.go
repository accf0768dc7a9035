package metrics

import "github.com/tmarkov/physviz/internal/particle"

// Containment reports the fraction of observed frames on which every
// particle sat inside the bounds.
type Containment struct {
	name       string
	violations int
	samples    int
}

func NewContainment() *Containment {
	return &Containment{name: "containment"}
}

func (c *Containment) Name() string {
	return c.name
}

func (c *Containment) Observe(sys *particle.System, t float64) {
	c.samples++
	for i := range sys.Particles {
		if !sys.Bounds.Contains(sys.Particles[i]) {
			c.violations++
			break
		}
	}
}

func (c *Containment) Value() float64 {
	if c.samples == 0 {
		return 1.0
	}
	return 1.0 - float64(c.violations)/float64(c.samples)
}

func (c *Containment) Reset() {
	c.violations = 0
	c.samples = 0
}
