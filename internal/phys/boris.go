package phys

import "math"

// minField guards divisions by the field magnitude in the derived
// cyclotron quantities. The rotation itself needs no guard.
const minField = 1e-12

// BorisRotate advances a velocity through one sub-step of magnetic rotation
// using the Boris scheme: the velocity is rotated about the field axis by
// the cyclotron angle rather than linearly extrapolated, so its magnitude
// is preserved exactly (the magnetic force does no work).
//
// qm is the charge-to-mass ratio and b the uniform field vector. There is
// no electric field here, so the half electric push reduces to identity.
// The position update x += v*dt is left to the caller.
func BorisRotate(v Vec3, qm float64, b Vec3, dt float64) Vec3 {
	t := b.Scale(qm * dt / 2)
	s := t.Scale(2 / (1 + t.Dot(t)))
	vPrime := v.Add(v.Cross(t))
	return v.Add(vPrime.Cross(s))
}

// CyclotronRadius returns the radius of the circular motion component
// transverse to the field: r = m*v_perp / (|q|*B).
func CyclotronRadius(mass, charge, vPerp, field float64) float64 {
	d := math.Abs(charge) * math.Abs(field)
	if d < minField {
		d = minField
	}
	return mass * vPerp / d
}

// CyclotronFreq returns the angular frequency ω = |q|*B / m.
func CyclotronFreq(mass, charge, field float64) float64 {
	if mass < minField {
		mass = minField
	}
	return math.Abs(charge) * math.Abs(field) / mass
}

// HelixPitch returns the axial distance covered per revolution,
// 2π*v_parallel/ω.
func HelixPitch(vParallel, omega float64) float64 {
	if math.Abs(omega) < minField {
		return 0
	}
	return 2 * math.Pi * vParallel / omega
}
