package config

import "sort"

var Presets = map[string]map[string]*Config{
	"chain_of_integrators": {
		"nominal": {System: "chain_of_integrators", Mode: "standard", Horizon: 10},
		"box":     {System: "chain_of_integrators", Mode: "diag", Seed: 1, Horizon: 10},
		"long":    {System: "chain_of_integrators", Mode: "standard", Horizon: 100},
	},
	"pedestrian": {
		"nominal": {System: "pedestrian", Mode: "standard", Horizon: 50},
		"dense":   {System: "pedestrian", Mode: "rand", Horizon: 50},
	},
	"lorenz": {
		"classic": {System: "lorenz", Mode: "standard", Horizon: 20, Params: []float64{10, 28, 8.0 / 3.0}},
		"stable":  {System: "lorenz", Mode: "standard", Horizon: 20, Params: []float64{10, 0.5, 8.0 / 3.0}},
		"random":  {System: "lorenz", Mode: "rand", Seed: 7, Horizon: 20},
	},
	"bicycle": {
		"compact": {System: "bicycle", Mode: "standard", Horizon: 20, Params: []float64{1.0, 1.0}},
		"sedan":   {System: "bicycle", Mode: "standard", Horizon: 20, Params: []float64{1.2, 1.5}},
	},
	"tank": {
		"short": {System: "tank", Mode: "standard", Horizon: 10},
		"long":  {System: "tank", Mode: "standard", Horizon: 200},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(system, preset string) *Config {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	cfg, ok := systemPresets[preset]
	if !ok {
		return nil
	}
	c := *cfg
	c.Params = append([]float64(nil), cfg.Params...)
	return &c
}

func ListPresets(system string) []string {
	systemPresets, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(systemPresets))
	for name := range systemPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Systems lists the systems that have presets.
func Systems() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
