package frame

// Params is the per-frame snapshot of named knobs supplied by the host.
type Params map[string]float64

// ParamSet caches parameter values across frames: a key missing from a
// frame's snapshot keeps its previous value. Range validation is the
// reader's job, done once per frame when the values are resolved into a
// simulation's typed config, never scattered through the update body.
type ParamSet struct {
	values map[string]float64
}

func NewParamSet() *ParamSet {
	return &ParamSet{values: make(map[string]float64)}
}

// Update merges a snapshot into the cached values.
func (s *ParamSet) Update(p Params) {
	for k, v := range p {
		s.values[k] = v
	}
}

// Get returns the cached value for name, or fallback if the key has
// never been supplied.
func (s *ParamSet) Get(name string, fallback float64) float64 {
	if v, ok := s.values[name]; ok {
		return v
	}
	return fallback
}

// GetClamped resolves a value and clamps it into [lo, hi].
func (s *ParamSet) GetClamped(name string, fallback, lo, hi float64) float64 {
	v := s.Get(name, fallback)
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetCount resolves a non-negative integer knob such as a particle count.
func (s *ParamSet) GetCount(name string, fallback, max int) int {
	v := int(s.Get(name, float64(fallback)))
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
