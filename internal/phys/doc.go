// Package phys holds the numeric primitives shared by every simulation:
// small vector types, the Newton solver for Kepler's equation, and the
// Boris velocity rotation for charged-particle motion in a magnetic field.
//
// Everything here is a pure function of its inputs. State, sub-stepping
// and boundary handling live in the particle and sims packages.
package phys
