package gvol

import (
	"fmt"
	"reflect"
)

// UpdateParametersInContext pushes the current radius and gamma of every
// particle into inst. Nothing else on the instance is touched.
//
// The particle count must match the count inst was built with. IsHydrogen,
// the nonbonded method and the cutoff are not pushed; changing them after
// build requires a new instance.
func (f *Force) UpdateParametersInContext(inst Instance) error {
	if isNil(inst) {
		return ErrNilInstance
	}
	n := f.NumParticles()
	if got := inst.NumParticles(); got != n {
		return &MismatchError{Force: n, Instance: got}
	}

	radii := make([]float64, n)
	gammas := make([]float64, n)
	for i, p := range f.particles.particles {
		radii[i] = p.Radius
		gammas[i] = p.Gamma
	}

	if err := inst.CopyParameters(radii, gammas); err != nil {
		return fmt.Errorf("gvol: update parameters: %w", err)
	}
	return nil
}

// isNil also catches a nil pointer stored in a non-nil interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
