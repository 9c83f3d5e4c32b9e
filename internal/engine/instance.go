package engine

import (
	"fmt"

	"github.com/san-kum/gvolsim/internal/gvol"
)

// Instance is a built GVol force. Its parameters are a private copy of the
// snapshot it was built from.
type Instance struct {
	ctx      *Context
	radii    []float64
	gammas   []float64
	hydrogen []bool
	method   gvol.NonbondedMethod
	cutoff   float64
	revision int
}

var _ gvol.Instance = (*Instance)(nil)

func (in *Instance) NumParticles() int {
	if in == nil {
		return 0
	}
	return len(in.radii)
}

// CopyParameters implements gvol.Instance. Lengths are checked before any
// value is written.
func (in *Instance) CopyParameters(radii, gammas []float64) error {
	if in == nil {
		return gvol.ErrNilInstance
	}
	n := len(in.radii)
	if len(radii) != n || len(gammas) != n {
		return fmt.Errorf("%w: want %d, got %d radii and %d gammas", ErrParameterLength, n, len(radii), len(gammas))
	}
	copy(in.radii, radii)
	copy(in.gammas, gammas)
	in.revision++
	in.ctx.log.V(1).Info("updated gvol parameters", "particles", n, "revision", in.revision)
	return nil
}

// Parameters returns the cached radius and gamma of particle i.
func (in *Instance) Parameters(i int) (radius, gamma float64, err error) {
	if i < 0 || i >= len(in.radii) {
		return 0, 0, &gvol.IndexError{Index: i, Count: len(in.radii)}
	}
	return in.radii[i], in.gammas[i], nil
}

// IsHydrogen returns the classification fixed at build time.
func (in *Instance) IsHydrogen(i int) (bool, error) {
	if i < 0 || i >= len(in.hydrogen) {
		return false, &gvol.IndexError{Index: i, Count: len(in.hydrogen)}
	}
	return in.hydrogen[i], nil
}

func (in *Instance) NonbondedMethod() gvol.NonbondedMethod { return in.method }
func (in *Instance) CutoffDistance() float64               { return in.cutoff }

// Revision counts successful parameter pushes since build.
func (in *Instance) Revision() int { return in.revision }

func (in *Instance) Context() *Context { return in.ctx }

// Positions returns the owning context's positions.
func (in *Instance) Positions() []Vec3 { return in.ctx.Positions() }
