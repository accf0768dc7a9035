// Package analysis inspects recorded stat series: power spectra and
// dominant frequencies via a radix-2 FFT, and phase portraits pairing
// two series into a joint trajectory.
package analysis
