package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gvolsim/internal/engine"
	"github.com/san-kum/gvolsim/internal/gvol"
)

const (
	DefaultName   = "untitled"
	DefaultMethod = "NoCutoff"
	DefaultBox    = 3.0
)

type Config struct {
	Name            string           `yaml:"name"`
	NonbondedMethod string           `yaml:"nonbonded_method"`
	CutoffDistance  float64          `yaml:"cutoff_distance"`
	Box             []float64        `yaml:"box,flow"`
	Particles       []ParticleConfig `yaml:"particles"`
}

type ParticleConfig struct {
	Radius   float64   `yaml:"radius"`
	Gamma    float64   `yaml:"gamma"`
	Hydrogen bool      `yaml:"hydrogen"`
	Position []float64 `yaml:"position,flow,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:            DefaultName,
		NonbondedMethod: DefaultMethod,
		Box:             []float64{DefaultBox, DefaultBox, DefaultBox},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

func Parse(data []byte) (*Config, error) {
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

// Method resolves the configured nonbonded method; empty means NoCutoff.
func (c *Config) Method() (gvol.NonbondedMethod, error) {
	if c.NonbondedMethod == "" {
		return gvol.NoCutoff, nil
	}
	return gvol.ParseNonbondedMethod(c.NonbondedMethod)
}

// Force builds a force with particles in file order. Parameter values are
// passed through unchecked.
func (c *Config) Force() (*gvol.Force, error) {
	m, err := c.Method()
	if err != nil {
		return nil, err
	}
	f := gvol.NewForce()
	f.SetNonbondedMethod(m)
	f.SetCutoffDistance(c.CutoffDistance)
	for _, p := range c.Particles {
		f.AddParticle(p.Radius, p.Gamma, p.Hydrogen)
	}
	return f, nil
}

// Positions returns particle positions in file order. A particle without a
// position sits at the origin.
func (c *Config) Positions() ([]engine.Vec3, error) {
	out := make([]engine.Vec3, len(c.Particles))
	for i, p := range c.Particles {
		v, err := vec3(p.Position)
		if err != nil {
			return nil, fmt.Errorf("particle %d position: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}

func (c *Config) BoxVectors() (engine.Vec3, error) {
	v, err := vec3(c.Box)
	if err != nil {
		return engine.Vec3{}, fmt.Errorf("box: %w", err)
	}
	return v, nil
}

// Context creates an engine context holding this configuration's geometry.
func (c *Config) Context(opts ...engine.Option) (*engine.Context, error) {
	pos, err := c.Positions()
	if err != nil {
		return nil, err
	}
	box, err := c.BoxVectors()
	if err != nil {
		return nil, err
	}
	return engine.NewContext(pos, box, opts...), nil
}

// FromForce is the inverse of Force. positions may be nil.
func FromForce(name string, f *gvol.Force, positions []engine.Vec3, box engine.Vec3) *Config {
	cfg := &Config{
		Name:            name,
		NonbondedMethod: f.NonbondedMethod().String(),
		CutoffDistance:  f.CutoffDistance(),
		Box:             []float64{box[0], box[1], box[2]},
	}
	for i, p := range f.Particles() {
		pc := ParticleConfig{Radius: p.Radius, Gamma: p.Gamma, Hydrogen: p.IsHydrogen}
		if i < len(positions) {
			pc.Position = []float64{positions[i][0], positions[i][1], positions[i][2]}
		}
		cfg.Particles = append(cfg.Particles, pc)
	}
	return cfg
}

func (c *Config) Clone() *Config {
	out := *c
	out.Box = append([]float64(nil), c.Box...)
	out.Particles = make([]ParticleConfig, len(c.Particles))
	for i, p := range c.Particles {
		p.Position = append([]float64(nil), p.Position...)
		out.Particles[i] = p
	}
	return &out
}

func vec3(v []float64) (engine.Vec3, error) {
	switch len(v) {
	case 0:
		return engine.Vec3{}, nil
	case 3:
		return engine.Vec3{v[0], v[1], v[2]}, nil
	default:
		return engine.Vec3{}, fmt.Errorf("want 3 components, got %d", len(v))
	}
}
