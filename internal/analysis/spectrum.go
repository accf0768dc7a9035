package analysis

import (
	"math"
	"math/cmplx"
)

// truncPow2 cuts a series down to the largest power-of-two prefix so it
// can go through the radix-2 transform.
func truncPow2(data []float64) []float64 {
	n := 1
	for n*2 <= len(data) {
		n *= 2
	}
	return data[:n]
}

// fft is a recursive radix-2 Cooley-Tukey transform. Callers guarantee
// a power-of-two length.
func fft(x []complex128) []complex128 {
	n := len(x)
	if n == 1 {
		return []complex128{x[0]}
	}

	even := make([]complex128, n/2)
	odd := make([]complex128, n/2)
	for i := 0; i < n/2; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	fe := fft(even)
	fo := fft(odd)

	out := make([]complex128, n)
	for k := 0; k < n/2; k++ {
		w := cmplx.Exp(complex(0, -2*math.Pi*float64(k)/float64(n)))
		out[k] = fe[k] + w*fo[k]
		out[k+n/2] = fe[k] - w*fo[k]
	}
	return out
}

// Spectrum returns the power spectrum of a recorded stat series. The
// series is truncated to a power-of-two prefix and mean-removed so the
// DC bin does not drown out the oscillation. Bin k covers frequency
// k/(n*dt) for a series sampled at interval dt.
func Spectrum(data []float64) []float64 {
	data = truncPow2(data)
	if len(data) < 2 {
		return nil
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	x := make([]complex128, len(data))
	for i, v := range data {
		x[i] = complex(v-mean, 0)
	}

	out := fft(x)
	ps := make([]float64, len(out)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(out[i])
	}
	return ps
}

// DominantFrequency estimates the strongest oscillation in a sampled
// series, in Hz. Returns 0 when the series is too short or flat.
func DominantFrequency(data []float64, dt float64) float64 {
	if dt <= 0 {
		return 0
	}

	data = truncPow2(data)
	ps := Spectrum(data)
	if len(ps) < 2 {
		return 0
	}

	best, bestVal := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestVal {
			best, bestVal = k, ps[k]
		}
	}
	if bestVal == 0 {
		return 0
	}

	return float64(best) / (float64(len(data)) * dt)
}
