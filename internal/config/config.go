package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultDt        = 1.0 / 60.0
	DefaultDuration  = 20.0
	DefaultFrameRate = 60.0
	DefaultWidth     = 200.0
	DefaultHeight    = 120.0
)

type Config struct {
	Sim       string             `yaml:"sim"`
	Dt        float64            `yaml:"dt"`
	Duration  float64            `yaml:"duration"`
	FrameRate float64            `yaml:"frame_rate"`
	Width     float64            `yaml:"width"`
	Height    float64            `yaml:"height"`
	Params    map[string]float64 `yaml:"params"`
}

func DefaultConfig() *Config {
	return &Config{
		Sim:       "orbit",
		Dt:        DefaultDt,
		Duration:  DefaultDuration,
		FrameRate: DefaultFrameRate,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Frames derives the whole-frame count of a run from its duration.
func (c *Config) Frames() int {
	if c.Dt <= 0 {
		return 0
	}
	return int(c.Duration / c.Dt)
}
