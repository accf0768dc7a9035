package config

var Presets = map[string]map[string]*Config{
	"orbit": {
		"circular": {
			Sim: "orbit", Dt: DefaultDt, Duration: 30.0,
			Params: map[string]float64{"eccentricity": 0.0, "period": 8},
		},
		"comet": {
			Sim: "orbit", Dt: DefaultDt, Duration: 60.0,
			Params: map[string]float64{"eccentricity": 0.9, "period": 20},
		},
		"gentle": {
			Sim: "orbit", Dt: DefaultDt, Duration: 30.0,
			Params: map[string]float64{"eccentricity": 0.3, "period": 6},
		},
	},
	"cyclotron": {
		"tight": {
			Sim: "cyclotron", Dt: DefaultDt, Duration: 20.0,
			Params: map[string]float64{"field": 8, "speed": 60},
		},
		"wide": {
			Sim: "cyclotron", Dt: DefaultDt, Duration: 20.0,
			Params: map[string]float64{"field": 0.5, "speed": 120},
		},
		"heavy": {
			Sim: "cyclotron", Dt: DefaultDt, Duration: 30.0,
			Params: map[string]float64{"mass": 10, "field": 2, "speed": 80},
		},
	},
	"gas": {
		"mixing": {
			Sim: "gas", Dt: DefaultDt, Duration: 30.0,
			Params: map[string]float64{"count": 120, "temperature": 100, "diffusion": 0.5},
		},
		"calm": {
			Sim: "gas", Dt: DefaultDt, Duration: 20.0,
			Params: map[string]float64{"count": 40, "temperature": 40, "jitter": 2},
		},
	},
	"convection": {
		"rolling": {
			Sim: "convection", Dt: DefaultDt, Duration: 60.0,
			Params: map[string]float64{"count": 80, "heat": 200, "lift": 2},
		},
		"simmer": {
			Sim: "convection", Dt: DefaultDt, Duration: 40.0,
			Params: map[string]float64{"count": 50, "heat": 60, "lift": 0.8},
		},
	},
	"electrostatic": {
		"shell": {
			Sim: "electrostatic", Dt: DefaultDt, Duration: 30.0,
			Params: map[string]float64{"count": 40, "charge": -500},
		},
		"scatter": {
			Sim: "electrostatic", Dt: DefaultDt, Duration: 20.0,
			Params: map[string]float64{"count": 25, "charge": 800},
		},
	},
}

func GetPreset(sim, name string) *Config {
	group, ok := Presets[sim]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(sim string) []string {
	group, ok := Presets[sim]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
