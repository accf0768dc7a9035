package metrics

import (
	"math"
	"testing"

	"github.com/tmarkov/physviz/internal/particle"
	"github.com/tmarkov/physviz/internal/phys"
)

func testSystem() *particle.System {
	sys := particle.NewSystem(2, particle.Bounds{MaxX: 100, MaxY: 100})
	sys.Particles[0] = particle.Particle{Pos: phys.Vec2{X: 20, Y: 20}, Vel: phys.Vec2{X: 3, Y: 4}, Radius: 2, Temp: 80}
	sys.Particles[1] = particle.Particle{Pos: phys.Vec2{X: 60, Y: 60}, Vel: phys.Vec2{X: 0, Y: 1}, Radius: 2, Temp: 20}
	return sys
}

func TestHeatDriftConservation(t *testing.T) {
	m := NewHeatDrift()
	sys := testSystem()

	m.Observe(sys, 0)
	m.Observe(sys, 1)
	if m.Value() != 0 {
		t.Errorf("expected zero drift on unchanged system, got %f", m.Value())
	}

	// move a quarter of the heat away and expect a 25% drift
	sys.Particles[0].Temp -= 25
	m.Observe(sys, 2)
	if math.Abs(m.Value()-0.25) > 1e-9 {
		t.Errorf("expected drift 0.25, got %f", m.Value())
	}
}

func TestHeatDriftReset(t *testing.T) {
	m := NewHeatDrift()
	sys := testSystem()

	m.Observe(sys, 0)
	sys.Particles[0].Temp = 0
	m.Observe(sys, 1)
	if m.Value() == 0 {
		t.Error("expected non-zero drift")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestMeanTemp(t *testing.T) {
	m := NewMeanTemp()
	sys := testSystem()

	m.Observe(sys, 0)
	if math.Abs(m.Value()-50) > 1e-9 {
		t.Errorf("expected mean temperature 50, got %f", m.Value())
	}
}

func TestKineticEnergyAverage(t *testing.T) {
	m := NewKineticEnergy()
	sys := testSystem()

	expected := sys.KineticEnergy()
	m.Observe(sys, 0)
	m.Observe(sys, 1)
	if math.Abs(m.Value()-expected) > 1e-9 {
		t.Errorf("expected kinetic energy %f, got %f", expected, m.Value())
	}
}

func TestPeakSpeedHoldsMaximum(t *testing.T) {
	m := NewPeakSpeed()
	sys := testSystem()

	m.Observe(sys, 0)
	sys.Particles[0].Vel = phys.Vec2{}
	sys.Particles[1].Vel = phys.Vec2{}
	m.Observe(sys, 1)

	if math.Abs(m.Value()-5) > 1e-9 {
		t.Errorf("expected peak speed 5, got %f", m.Value())
	}
}

func TestContainment(t *testing.T) {
	m := NewContainment()
	sys := testSystem()

	m.Observe(sys, 0)
	if m.Value() != 1 {
		t.Errorf("expected containment 1, got %f", m.Value())
	}

	sys.Particles[0].Pos = phys.Vec2{X: -50, Y: 20}
	m.Observe(sys, 1)
	if math.Abs(m.Value()-0.5) > 1e-9 {
		t.Errorf("expected containment 0.5, got %f", m.Value())
	}
}
