// Package particle implements the shared sub-stepped force integrator
// used by every particle-based simulation: a population of particles in
// a bounded region, advanced each frame by a fixed number of equal
// sub-steps under a registered list of force rules, with boundary
// reflection, an explicit speed clamp, and conserving pairwise
// temperature diffusion.
package particle
