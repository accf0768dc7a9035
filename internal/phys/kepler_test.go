package phys

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func keplerResidual(m, e, en float64) float64 {
	return math.Abs(WrapAngle(m) - (en - e*math.Sin(en)))
}

func TestSolveKeplerResidual(t *testing.T) {
	for e := 0.0; e <= 0.99; e += 0.09 {
		for i := 0; i < 32; i++ {
			m := 2 * math.Pi * float64(i) / 32
			en := SolveKepler(m, e)
			require.Lessf(t, keplerResidual(m, e, en), 1e-6,
				"residual too large at e=%.2f M=%.4f", e, m)
		}
	}
}

func TestSolveKeplerCircular(t *testing.T) {
	// e = 0 degenerates to E = M.
	for _, m := range []float64{0, 0.5, math.Pi, 5.0} {
		assert.InDelta(t, m, SolveKepler(m, 0), 1e-12)
	}
}

func TestSolveKeplerHalfOrbit(t *testing.T) {
	// sin(π) = 0, so E = π solves the equation exactly for any e.
	en := SolveKepler(math.Pi, 0.5)
	assert.InDelta(t, math.Pi, en, 1e-6)
	assert.InDelta(t, math.Pi, en-0.5*math.Sin(en), 1e-6)
}

func TestSolveKeplerWrappedMeanAnomaly(t *testing.T) {
	// The result must be invariant to normalization of M.
	e := 0.7
	for _, m := range []float64{0.3, 1.9, 4.4} {
		want := SolveKepler(m, e)
		assert.InDelta(t, want, SolveKepler(m+2*math.Pi, e), 1e-9)
		assert.InDelta(t, want, SolveKepler(m-6*math.Pi, e), 1e-9)
	}
}

func TestTrueAnomaly(t *testing.T) {
	// At periapsis and apoapsis the true anomaly matches the eccentric one.
	assert.InDelta(t, 0.0, TrueAnomaly(0, 0.5), 1e-12)
	assert.InDelta(t, math.Pi, math.Abs(TrueAnomaly(math.Pi, 0.5)), 1e-9)

	// For a circular orbit the anomalies coincide everywhere.
	for _, en := range []float64{0.3, 1.2, 2.9} {
		assert.InDelta(t, en, TrueAnomaly(en, 0), 1e-12)
	}

	// Eccentricity pushes the true anomaly ahead of E in the first half.
	assert.Greater(t, TrueAnomaly(1.0, 0.6), 1.0)
}

func TestMeanAnomalyAt(t *testing.T) {
	assert.InDelta(t, math.Pi, MeanAnomalyAt(5, 10), 1e-12)
	assert.InDelta(t, 0.0, MeanAnomalyAt(10, 10), 1e-12)
	// Degenerate period must not divide by zero.
	assert.Equal(t, 0.0, MeanAnomalyAt(3, 0))
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{2 * math.Pi, 0},
		{-math.Pi / 2, 3 * math.Pi / 2},
		{5 * math.Pi, math.Pi},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, WrapAngle(tt.in), 1e-12)
	}
}
