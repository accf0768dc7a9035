package phys

import "math"

// keplerIterations bounds the Newton iteration. For e < 1 the iteration
// converges geometrically, so a fixed count replaces a convergence check.
const keplerIterations = 20

// WrapAngle normalizes an angle into [0, 2π).
func WrapAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// SolveKepler returns the eccentric anomaly E satisfying M = E - e*sin(E),
// for mean anomaly M (any real value) and eccentricity e in [0, 1).
// Callers must clamp e below 1 before calling; the Newton iteration is not
// guaranteed to converge for parabolic or hyperbolic eccentricities.
func SolveKepler(m, e float64) float64 {
	m = WrapAngle(m)
	en := m
	for i := 0; i < keplerIterations; i++ {
		sinE, cosE := math.Sincos(en)
		en -= (en - e*sinE - m) / (1 - e*cosE)
	}
	return en
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly using the
// half-angle form, which is quadrant-safe for all E.
func TrueAnomaly(eccAnomaly, e float64) float64 {
	sinHalf := math.Sqrt(1+e) * math.Sin(eccAnomaly/2)
	cosHalf := math.Sqrt(1-e) * math.Cos(eccAnomaly/2)
	return 2 * math.Atan2(sinHalf, cosHalf)
}

// MeanAnomalyAt returns the mean anomaly after elapsed seconds on an orbit
// with the given period. The result is always recomputed from elapsed time,
// never integrated incrementally, so it cannot drift.
func MeanAnomalyAt(elapsed, period float64) float64 {
	if period <= 0 {
		return 0
	}
	return WrapAngle(2 * math.Pi * elapsed / period)
}
