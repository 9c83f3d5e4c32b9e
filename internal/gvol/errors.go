package gvol

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a particle index outside [0, NumParticles).
	ErrOutOfRange = errors.New("gvol: particle index out of range")

	// ErrMismatch indicates a built instance whose particle count no longer
	// agrees with the force.
	ErrMismatch = errors.New("gvol: particle count changed since instance was built")

	// ErrNilInstance indicates an update or build against a nil collaborator.
	ErrNilInstance = errors.New("gvol: nil instance")
)

// IndexError reports the offending index for an ErrOutOfRange failure.
type IndexError struct {
	Index int
	Count int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%v: index %d, have %d particles", ErrOutOfRange, e.Index, e.Count)
}

func (e *IndexError) Unwrap() error {
	return ErrOutOfRange
}

// MismatchError reports both counts for an ErrMismatch failure.
type MismatchError struct {
	Force    int
	Instance int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: force has %d particles, instance has %d", ErrMismatch, e.Force, e.Instance)
}

func (e *MismatchError) Unwrap() error {
	return ErrMismatch
}
