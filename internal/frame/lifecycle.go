package frame

import "fmt"

// Phase is the lifecycle state of a driver.
type Phase int

const (
	PhaseNew Phase = iota
	PhaseReady
	PhaseRunning
	PhaseDestroyed
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseReady:
		return "ready"
	case PhaseRunning:
		return "running"
	case PhaseDestroyed:
		return "destroyed"
	}
	return "unknown"
}

// Lifecycle tracks the driver state machine. Simulations embed it and
// call the guard methods at the top of each lifecycle entry point.
// Misuse panics: a wrong-phase call indicates a bug in the host, not a
// data problem, and must fail loudly rather than be silently ignored.
type Lifecycle struct {
	phase Phase
}

func (l *Lifecycle) Phase() Phase { return l.phase }

// BeginInit transitions New -> Ready.
func (l *Lifecycle) BeginInit() {
	if l.phase != PhaseNew {
		panic(fmt.Sprintf("frame: Init in phase %s", l.phase))
	}
	l.phase = PhaseReady
}

// BeginAdvance checks Ready/Running and moves to Running.
func (l *Lifecycle) BeginAdvance() {
	if l.phase != PhaseReady && l.phase != PhaseRunning {
		panic(fmt.Sprintf("frame: Advance in phase %s", l.phase))
	}
	l.phase = PhaseRunning
}

// BeginReset checks the driver is initialized and live. Reset returns to
// a fresh Ready-equivalent state without leaving Running.
func (l *Lifecycle) BeginReset() {
	if l.phase == PhaseNew || l.phase == PhaseDestroyed {
		panic(fmt.Sprintf("frame: Reset in phase %s", l.phase))
	}
}

// BeginResize checks the driver is live; resizing a destroyed driver is
// as much a host bug as advancing one.
func (l *Lifecycle) BeginResize() {
	if l.phase == PhaseNew || l.phase == PhaseDestroyed {
		panic(fmt.Sprintf("frame: Resize in phase %s", l.phase))
	}
}

// BeginDestroy transitions to Destroyed. Safe to call in any phase.
func (l *Lifecycle) BeginDestroy() {
	l.phase = PhaseDestroyed
}
