// Package frame defines the contract between a host and a simulation:
// the Driver lifecycle (Init, Advance, Reset, Resize, Describe,
// Destroy), the parameter snapshot semantics, and the bounded position
// trail used for visualization history.
package frame
