package sims

import (
	"fmt"
	"sort"

	"github.com/tmarkov/physviz/internal/frame"
)

var registry = map[string]func() frame.Driver{
	"orbit":         func() frame.Driver { return NewOrbit() },
	"cyclotron":     func() frame.Driver { return NewCyclotron() },
	"gas":           func() frame.Driver { return NewGas() },
	"convection":    func() frame.Driver { return NewConvection() },
	"electrostatic": func() frame.Driver { return NewElectrostatic() },
}

// New builds a fresh driver by name.
func New(name string) (frame.Driver, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown simulation %q (available: %v)", name, Names())
	}
	return build(), nil
}

// Names lists the registered simulations in stable order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
