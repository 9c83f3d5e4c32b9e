package config

import "sort"

const (
	radiusC = 0.17
	radiusO = 0.152
	radiusH = 0.11

	gammaC = 0.98
	gammaO = -2.51
)

func heavy(radius, gamma float64, x, y, z float64) ParticleConfig {
	return ParticleConfig{Radius: radius, Gamma: gamma, Position: []float64{x, y, z}}
}

func hydrogen(x, y, z float64) ParticleConfig {
	return ParticleConfig{Radius: radiusH, Hydrogen: true, Position: []float64{x, y, z}}
}

var Presets = map[string]*Config{
	"water": {
		Name: "water", NonbondedMethod: "NoCutoff", Box: []float64{3, 3, 3},
		Particles: []ParticleConfig{
			heavy(radiusO, gammaO, 0, 0, 0),
			hydrogen(0.09572, 0, 0),
			hydrogen(-0.02399, 0.09267, 0),
		},
	},
	"methane": {
		Name: "methane", NonbondedMethod: "CutoffNonPeriodic", CutoffDistance: 1.0, Box: []float64{3, 3, 3},
		Particles: []ParticleConfig{
			heavy(radiusC, gammaC, 0, 0, 0),
			hydrogen(0.0629, 0.0629, 0.0629),
			hydrogen(-0.0629, -0.0629, 0.0629),
			hydrogen(-0.0629, 0.0629, -0.0629),
			hydrogen(0.0629, -0.0629, -0.0629),
		},
	},
	"ethanol": {
		Name: "ethanol", NonbondedMethod: "CutoffPeriodic", CutoffDistance: 1.0, Box: []float64{2.5, 2.5, 2.5},
		Particles: []ParticleConfig{
			heavy(radiusC, gammaC, 0, 0, 0),
			heavy(radiusC, gammaC, 0.1512, 0, 0),
			heavy(radiusO, gammaO, 0.1956, 0.1335, 0),
			hydrogen(-0.0364, -0.1023, 0),
			hydrogen(-0.0364, 0.0512, 0.0886),
			hydrogen(-0.0364, 0.0512, -0.0886),
			hydrogen(0.1876, -0.0512, 0.0886),
			hydrogen(0.1876, -0.0512, -0.0886),
			hydrogen(0.2926, 0.1335, 0),
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
