package frame

import "github.com/tmarkov/physviz/internal/phys"

// Surface describes the display region a simulation lays itself out in.
type Surface struct {
	Width, Height float64
}

// Stat is one derived read-only quantity for display.
type Stat struct {
	Label string
	Value float64
	Unit  string
}

// Driver is the lifecycle every simulation implements. The host calls
// Init once, Advance every frame with the wall-clock delta and current
// parameter snapshot, Resize on viewport change, Reset on user request
// and Destroy on teardown. All calls run to completion synchronously;
// there is no concurrency in the core.
//
// Advance before Init or after Destroy is a programmer error in the host
// and panics. Out-of-range parameter values are clamped, never rejected.
type Driver interface {
	// Init allocates particle and body state from current parameters.
	Init(s Surface)

	// Advance clamps dt, merges the parameter snapshot and runs one
	// frame of sub-stepped integration.
	Advance(dt float64, p Params)

	// Reset reinitializes state from current parameters without
	// reallocating the driver. Calling it twice in a row with unchanged
	// parameters yields the same state as calling it once.
	Reset()

	// Resize recomputes display-scale-dependent quantities without
	// resetting particle state, re-clamping positions where the new
	// bounds require it.
	Resize(w, h float64)

	// Describe reads current derived quantities. Pure: never mutates.
	Describe() []Stat

	// Destroy releases particle and history buffers. Any further
	// Advance is an error.
	Destroy()
}

// PointSource is implemented by simulations that can expose renderable
// positions. Consumers read the slice after Advance returns and never
// observe a partially updated sub-step.
type PointSource interface {
	Points() []phys.Vec2
}
