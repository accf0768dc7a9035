package metrics

import "github.com/tmarkov/physviz/internal/particle"

// Metric accumulates a scalar over the frames of a run.
type Metric interface {
	Name() string
	Observe(sys *particle.System, t float64)
	Value() float64
	Reset()
}

// Standard returns the metric set recorded by headless runs.
func Standard() []Metric {
	return []Metric{
		NewHeatDrift(),
		NewMeanTemp(),
		NewKineticEnergy(),
		NewPeakSpeed(),
		NewContainment(),
	}
}
