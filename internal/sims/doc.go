// Package sims contains the simulation drivers: each one owns its state,
// resolves its parameters from a ParamSet, and advances through the
// shared frame lifecycle. Drivers are registered by name so commands can
// construct them without knowing the concrete types.
package sims
