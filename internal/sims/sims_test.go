package sims_test

import (
	"math"
	"testing"

	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/sims"
)

func statValue(t *testing.T, stats []frame.Stat, label string) float64 {
	t.Helper()
	for _, s := range stats {
		if s.Label == label {
			return s.Value
		}
	}
	t.Fatalf("stat %q not found in %v", label, stats)
	return 0
}

func TestOrbitCircularRadiusConstant(t *testing.T) {
	o := sims.NewOrbit()
	o.Init(frame.Surface{Width: 200, Height: 120})

	want := 0.35 * 120.0
	params := frame.Params{"eccentricity": 0}
	for i := 0; i < 200; i++ {
		o.Advance(0.016, params)
		r := statValue(t, o.Describe(), "radius")
		if math.Abs(r-want) > 1e-6 {
			t.Fatalf("step %d: radius = %v, want %v", i, r, want)
		}
	}
}

func TestOrbitSweptAreaHalfPeriod(t *testing.T) {
	o := sims.NewOrbit()
	o.Init(frame.Surface{Width: 200, Height: 120})

	params := frame.Params{"eccentricity": 0.5, "period": 8}
	// 80 frames at the clamp ceiling cover exactly half a period
	for i := 0; i < 80; i++ {
		o.Advance(0.05, params)
	}

	a := 0.35 * 120.0
	b := a * math.Sqrt(1-0.5*0.5)
	want := math.Pi * a * b / 2
	got := statValue(t, o.Describe(), "swept area")
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("swept area = %v, want %v", got, want)
	}
}

func TestCyclotronSpeedPreserved(t *testing.T) {
	c := sims.NewCyclotron()
	c.Init(frame.Surface{Width: 200, Height: 120})

	c.Advance(0.016, nil)
	initial := statValue(t, c.Describe(), "speed")
	for i := 0; i < 500; i++ {
		c.Advance(0.016, nil)
	}
	final := statValue(t, c.Describe(), "speed")
	if math.Abs(final-initial) > 1e-9 {
		t.Errorf("speed drifted from %v to %v", initial, final)
	}
}

func TestGasTotalTempConservedWithoutCooling(t *testing.T) {
	g := sims.NewGas()
	g.Init(frame.Surface{Width: 200, Height: 120})

	params := frame.Params{"cooling": 0}
	g.Advance(0.016, params)
	initial := statValue(t, g.Describe(), "total temp")
	for i := 0; i < 100; i++ {
		g.Advance(0.016, nil)
	}
	final := statValue(t, g.Describe(), "total temp")
	if math.Abs(final-initial) > 1e-9 {
		t.Errorf("total temperature drifted from %v to %v", initial, final)
	}
}
