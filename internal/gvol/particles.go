package gvol

// Particle is the GVol parameter record for one particle.
type Particle struct {
	Radius     float64 // van der Waals radius, nm
	Gamma      float64 // surface tension, kJ/mol/nm^2
	IsHydrogen bool    // hydrogens do not contribute to volume
}

// Registry is an append-only, index-stable sequence of particles.
// Index i always refers to the i'th particle added.
type Registry struct {
	particles []Particle
}

// Add appends p and returns its index.
func (r *Registry) Add(p Particle) int {
	r.particles = append(r.particles, p)
	return len(r.particles) - 1
}

// Get returns the particle at index.
func (r *Registry) Get(index int) (Particle, error) {
	if err := r.check(index); err != nil {
		return Particle{}, err
	}
	return r.particles[index], nil
}

// Set overwrites the particle at index in place.
func (r *Registry) Set(index int, p Particle) error {
	if err := r.check(index); err != nil {
		return err
	}
	r.particles[index] = p
	return nil
}

func (r *Registry) Len() int { return len(r.particles) }

// Particles returns a copy of every record in index order.
func (r *Registry) Particles() []Particle {
	out := make([]Particle, len(r.particles))
	copy(out, r.particles)
	return out
}

func (r *Registry) check(index int) error {
	if index < 0 || index >= len(r.particles) {
		return &IndexError{Index: index, Count: len(r.particles)}
	}
	return nil
}
