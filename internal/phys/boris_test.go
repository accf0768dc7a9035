package phys

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBorisRotatePreservesSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		v := Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		b := Vec3{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		qm := rng.Float64()*10 - 5
		dt := rng.Float64() * 0.05

		got := BorisRotate(v, qm, b, dt)
		require.InDeltaf(t, v.Norm(), got.Norm(), 1e-12,
			"speed not preserved for v=%v b=%v qm=%f dt=%f", v, b, qm, dt)
	}
}

func TestBorisRotateParallelVelocityUnchanged(t *testing.T) {
	// Velocity along the field axis feels no force.
	v := Vec3{0, 0, 2.5}
	b := Vec3{0, 0, 3.0}
	got := BorisRotate(v, 1.5, b, 0.01)
	assert.InDelta(t, v.X, got.X, 1e-15)
	assert.InDelta(t, v.Y, got.Y, 1e-15)
	assert.InDelta(t, v.Z, got.Z, 1e-15)
}

func TestBorisRotateAngle(t *testing.T) {
	// One sub-step rotates the transverse velocity by 2*atan(qm*B*dt/2).
	v := Vec3{1, 0, 0}
	b := Vec3{0, 0, 1}
	dt := 0.01
	got := BorisRotate(v, 1, b, dt)

	want := 2 * math.Atan(dt/2)
	angle := math.Atan2(got.Y, got.X)
	assert.InDelta(t, want, math.Abs(angle), 1e-12)
}

func TestBorisFullCyclotronPeriod(t *testing.T) {
	// A particle with q=1, m=1 in B=(0,0,1) completes one transverse circle
	// in T = 2π while the axial coordinate advances by v_parallel * T.
	v := Vec3{1, 1, 0.5}
	b := Vec3{0, 0, 1}
	pos := Vec3{}
	dt := 0.001
	period := 2 * math.Pi
	steps := int(math.Round(period / dt))

	for i := 0; i < steps; i++ {
		v = BorisRotate(v, 1, b, dt)
		pos = pos.Add(v.Scale(dt))
	}

	assert.InDelta(t, 1.0, v.X, 1e-2)
	assert.InDelta(t, 1.0, v.Y, 1e-2)
	assert.InDelta(t, 0.5, v.Z, 1e-12)
	assert.InDelta(t, 0.5*period, pos.Z, 1e-2)
}

func TestCyclotronQuantities(t *testing.T) {
	assert.InDelta(t, 2.0, CyclotronRadius(1, 1, 2, 1), 1e-12)
	assert.InDelta(t, 3.0, CyclotronFreq(1, 1.5, 2), 1e-12)
	assert.InDelta(t, math.Pi, HelixPitch(1, 2), 1e-12)

	// Zero field must stay finite thanks to the divisor floor.
	assert.False(t, math.IsInf(CyclotronRadius(1, 1, 2, 0), 0))
	assert.False(t, math.IsNaN(CyclotronFreq(0, 1, 1)))
	assert.Equal(t, 0.0, HelixPitch(1, 0))
}
