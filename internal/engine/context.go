package engine

import (
	"fmt"

	"github.com/go-logr/logr"

	"github.com/san-kum/gvolsim/internal/gvol"
)

type Vec3 [3]float64

// Context is the simulation state a force is built against.
type Context struct {
	positions []Vec3
	box       Vec3
	log       logr.Logger
}

type Option func(*Context)

func WithLogger(l logr.Logger) Option {
	return func(c *Context) { c.log = l }
}

// NewContext copies positions (nm) and box edge lengths (nm).
func NewContext(positions []Vec3, box Vec3, opts ...Option) *Context {
	c := &Context{
		positions: make([]Vec3, len(positions)),
		box:       box,
		log:       logr.Discard(),
	}
	copy(c.positions, positions)
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Context) NumParticles() int { return len(c.positions) }
func (c *Context) Box() Vec3         { return c.box }

// Positions returns a copy of the particle positions.
func (c *Context) Positions() []Vec3 {
	out := make([]Vec3, len(c.positions))
	copy(out, c.positions)
	return out
}

// Build implements gvol.Builder.
func (c *Context) Build(s gvol.Snapshot) (gvol.Instance, error) {
	inst, err := c.BuildInstance(s)
	if err != nil {
		return nil, err
	}
	return inst, nil
}

// BuildInstance validates s against the context and returns a concrete instance.
func (c *Context) BuildInstance(s gvol.Snapshot) (*Instance, error) {
	if err := c.validate(s); err != nil {
		c.log.V(1).Info("build rejected", "particles", s.NumParticles(), "error", err.Error())
		return nil, err
	}

	n := s.NumParticles()
	inst := &Instance{
		ctx:      c,
		radii:    make([]float64, n),
		gammas:   make([]float64, n),
		hydrogen: make([]bool, n),
		method:   s.Method,
		cutoff:   s.CutoffDistance,
	}
	for i, p := range s.Particles {
		inst.radii[i] = p.Radius
		inst.gammas[i] = p.Gamma
		inst.hydrogen[i] = p.IsHydrogen
	}

	c.log.V(1).Info("built gvol instance", "particles", n, "method", s.Method.String(), "cutoff", s.CutoffDistance)
	return inst, nil
}

func (c *Context) validate(s gvol.Snapshot) error {
	if s.NumParticles() != len(c.positions) {
		return fmt.Errorf("%w: force has %d, context has %d", ErrParticleCount, s.NumParticles(), len(c.positions))
	}
	if !s.Method.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMethod, int(s.Method))
	}
	if !s.Method.UsesCutoff() {
		return nil
	}
	if !(s.CutoffDistance > 0) {
		return fmt.Errorf("%w: got %g", ErrInvalidCutoff, s.CutoffDistance)
	}
	if !s.Method.UsesPeriodic() {
		return nil
	}

	minEdge := c.box[0]
	for _, e := range c.box[1:] {
		if e < minEdge {
			minEdge = e
		}
	}
	if !(minEdge > 0) {
		return fmt.Errorf("%w: box %v", ErrInvalidBox, c.box)
	}
	if s.CutoffDistance > minEdge/2 {
		return fmt.Errorf("%w: cutoff %g, half box %g", ErrCutoffTooLarge, s.CutoffDistance, minEdge/2)
	}
	return nil
}
