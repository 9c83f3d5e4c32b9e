package engine

import "errors"

var (
	// ErrParticleCount indicates a force whose particle count differs from the
	// number of positions in the context.
	ErrParticleCount = errors.New("engine: particle count does not match context")

	// ErrInvalidMethod indicates a nonbonded method outside the defined enum.
	ErrInvalidMethod = errors.New("engine: unknown nonbonded method")

	// ErrInvalidCutoff indicates a non-positive cutoff with a cutoff method.
	ErrInvalidCutoff = errors.New("engine: cutoff distance must be positive")

	// ErrCutoffTooLarge indicates a periodic cutoff larger than half the box.
	ErrCutoffTooLarge = errors.New("engine: cutoff exceeds half the periodic box")

	// ErrInvalidBox indicates a periodic method with a non-positive box edge.
	ErrInvalidBox = errors.New("engine: periodic box edges must be positive")

	// ErrParameterLength indicates a parameter push of the wrong length.
	ErrParameterLength = errors.New("engine: parameter arrays do not match particle count")
)
