package metrics

import (
	"math"

	"github.com/tmarkov/physviz/internal/particle"
)

// HeatDrift tracks the worst relative deviation of the total temperature
// from its value on the first observed frame. For a closed system with
// conserving exchange it should stay at zero.
type HeatDrift struct {
	name     string
	initial  float64
	maxDrift float64
	samples  int
}

func NewHeatDrift() *HeatDrift {
	return &HeatDrift{name: "heat_drift"}
}

func (h *HeatDrift) Name() string { return h.name }

func (h *HeatDrift) Observe(sys *particle.System, t float64) {
	total := sys.TotalTemp()

	if h.samples == 0 {
		h.initial = total
	}
	h.samples++

	if h.initial != 0 {
		drift := math.Abs(total-h.initial) / math.Abs(h.initial)
		h.maxDrift = math.Max(h.maxDrift, drift)
	}
}

func (h *HeatDrift) Value() float64 {
	return h.maxDrift
}

func (h *HeatDrift) Reset() {
	h.initial = 0
	h.maxDrift = 0
	h.samples = 0
}

type MeanTemp struct {
	name    string
	sum     float64
	samples int
}

func NewMeanTemp() *MeanTemp {
	return &MeanTemp{name: "mean_temp"}
}

func (m *MeanTemp) Name() string { return m.name }

func (m *MeanTemp) Observe(sys *particle.System, t float64) {
	n := len(sys.Particles)
	if n == 0 {
		return
	}
	m.sum += sys.TotalTemp() / float64(n)
	m.samples++
}

func (m *MeanTemp) Value() float64 {
	if m.samples == 0 {
		return 0
	}
	return m.sum / float64(m.samples)
}

func (m *MeanTemp) Reset() {
	m.sum = 0
	m.samples = 0
}
