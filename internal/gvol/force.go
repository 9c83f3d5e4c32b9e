package gvol

import "fmt"

// Force configures the GVol implicit solvation model.
// The zero value is an empty force using NoCutoff.
type Force struct {
	particles Registry
	method    NonbondedMethod
	cutoff    float64
}

func NewForce() *Force {
	return &Force{}
}

// AddParticle should be called once per particle in the system; the i'th call
// defines particle i. It returns the new particle's index.
func (f *Force) AddParticle(radius, gamma float64, isHydrogen bool) int {
	return f.particles.Add(Particle{Radius: radius, Gamma: gamma, IsHydrogen: isHydrogen})
}

func (f *Force) ParticleParameters(index int) (radius, gamma float64, isHydrogen bool, err error) {
	p, err := f.particles.Get(index)
	if err != nil {
		return 0, 0, false, err
	}
	return p.Radius, p.Gamma, p.IsHydrogen, nil
}

// Particle returns the record at index.
func (f *Force) Particle(index int) (Particle, error) {
	return f.particles.Get(index)
}

// SetParticleParameters overwrites particle index. A built instance does not
// see the change until UpdateParametersInContext is called.
func (f *Force) SetParticleParameters(index int, radius, gamma float64, isHydrogen bool) error {
	return f.particles.Set(index, Particle{Radius: radius, Gamma: gamma, IsHydrogen: isHydrogen})
}

func (f *Force) NumParticles() int { return f.particles.Len() }

// Particles returns a copy of all particle records in index order.
func (f *Force) Particles() []Particle { return f.particles.Particles() }

func (f *Force) NonbondedMethod() NonbondedMethod     { return f.method }
func (f *Force) SetNonbondedMethod(m NonbondedMethod) { f.method = m }

// CutoffDistance is in nm. It has no effect under NoCutoff.
func (f *Force) CutoffDistance() float64     { return f.cutoff }
func (f *Force) SetCutoffDistance(d float64) { f.cutoff = d }

// Snapshot is an immutable copy of a force taken at build time.
type Snapshot struct {
	Particles      []Particle
	Method         NonbondedMethod
	CutoffDistance float64
}

func (s Snapshot) NumParticles() int { return len(s.Particles) }

func (f *Force) Snapshot() Snapshot {
	return Snapshot{
		Particles:      f.particles.Particles(),
		Method:         f.method,
		CutoffDistance: f.cutoff,
	}
}

// Builder is implemented by engines that can turn a snapshot into a running
// instance for exactly snapshot.NumParticles() particles.
type Builder interface {
	Build(s Snapshot) (Instance, error)
}

// Instance is a built force owned by an engine.
type Instance interface {
	NumParticles() int
	// CopyParameters overwrites the instance's cached radius and gamma for
	// every particle. It must either apply all values or none.
	CopyParameters(radii, gammas []float64) error
}

// CreateImpl hands a snapshot of f to b and returns the built instance.
func (f *Force) CreateImpl(b Builder) (Instance, error) {
	if isNil(b) {
		return nil, fmt.Errorf("gvol: create impl: nil builder")
	}
	inst, err := b.Build(f.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("gvol: create impl: %w", err)
	}
	return inst, nil
}
