package run

import (
	"context"
	"fmt"

	"github.com/tmarkov/physviz/internal/config"
	"github.com/tmarkov/physviz/internal/frame"
	"github.com/tmarkov/physviz/internal/metrics"
	"github.com/tmarkov/physviz/internal/particle"
)

// Observer receives every frame of a headless run as it happens.
type Observer interface {
	OnFrame(stats []frame.Stat, t float64)
}

// ObserverFunc adapts a plain function into an Observer.
type ObserverFunc func(stats []frame.Stat, t float64)

func (f ObserverFunc) OnFrame(stats []frame.Stat, t float64) { f(stats, t) }

// Runner drives a simulation headlessly for a fixed duration, sampling
// its stats each frame and feeding metrics along the way.
type Runner struct {
	driver    frame.Driver
	metrics   []metrics.Metric
	observers []Observer
}

func New(driver frame.Driver) *Runner {
	return &Runner{driver: driver}
}

func (r *Runner) AddMetric(m metrics.Metric) { r.metrics = append(r.metrics, m) }
func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }

// particleSource is implemented by drivers that expose their particle
// system, which is what the standard metrics observe. Drivers without
// one simply record no metrics.
type particleSource interface {
	Particles() *particle.System
}

func (r *Runner) Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = config.DefaultWidth
	}
	if height <= 0 {
		height = config.DefaultHeight
	}

	frames := cfg.Frames()
	result := &Result{
		Times:   make([]float64, 0, frames),
		Rows:    make([][]float64, 0, frames),
		Metrics: make(map[string]float64),
	}

	for _, m := range r.metrics {
		m.Reset()
	}

	r.driver.Init(frame.Surface{Width: width, Height: height})
	defer r.driver.Destroy()

	// parameters apply on the first frame and persist from there
	params := frame.Params(cfg.Params)
	t := 0.0

	for i := 0; i < frames; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		r.driver.Advance(cfg.Dt, params)
		params = nil
		t += cfg.Dt

		stats := r.driver.Describe()
		if i == 0 {
			result.Labels = make([]string, len(stats))
			for j, s := range stats {
				result.Labels[j] = s.Label
			}
		}

		row := make([]float64, len(stats))
		for j, s := range stats {
			row[j] = s.Value
		}
		result.Times = append(result.Times, t)
		result.Rows = append(result.Rows, row)

		if src, ok := r.driver.(particleSource); ok {
			for _, m := range r.metrics {
				m.Observe(src.Particles(), t)
			}
		}
		for _, obs := range r.observers {
			obs.OnFrame(stats, t)
		}
	}

	for _, m := range r.metrics {
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func validateConfig(cfg *config.Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("dt must be positive, got %f", cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("duration must be positive, got %f", cfg.Duration)
	}
	return nil
}
