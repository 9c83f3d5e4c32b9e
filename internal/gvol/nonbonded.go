package gvol

import (
	"fmt"
	"strconv"
	"strings"
)

// NonbondedMethod selects how long range interactions are truncated.
type NonbondedMethod int

const (
	// NoCutoff computes all N^2 interactions. Periodic boundaries cannot be used.
	NoCutoff NonbondedMethod = iota
	// CutoffNonPeriodic ignores interactions beyond the cutoff distance.
	CutoffNonPeriodic
	// CutoffPeriodic uses the nearest periodic image and ignores interactions
	// beyond the cutoff distance.
	CutoffPeriodic
)

var methodNames = map[NonbondedMethod]string{
	NoCutoff:          "NoCutoff",
	CutoffNonPeriodic: "CutoffNonPeriodic",
	CutoffPeriodic:    "CutoffPeriodic",
}

var methodAliases = map[string]NonbondedMethod{
	"nocutoff":            NoCutoff,
	"no_cutoff":           NoCutoff,
	"none":                NoCutoff,
	"cutoffnonperiodic":   CutoffNonPeriodic,
	"cutoff_non_periodic": CutoffNonPeriodic,
	"cutoffperiodic":      CutoffPeriodic,
	"cutoff_periodic":     CutoffPeriodic,
}

func (m NonbondedMethod) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("NonbondedMethod(%d)", int(m))
}

// Valid reports whether m is one of the three defined methods.
func (m NonbondedMethod) Valid() bool {
	_, ok := methodNames[m]
	return ok
}

func (m NonbondedMethod) UsesCutoff() bool   { return m == CutoffNonPeriodic || m == CutoffPeriodic }
func (m NonbondedMethod) UsesPeriodic() bool { return m == CutoffPeriodic }

// Methods lists the defined methods in enum order.
func Methods() []NonbondedMethod {
	return []NonbondedMethod{NoCutoff, CutoffNonPeriodic, CutoffPeriodic}
}

// ParseNonbondedMethod accepts a case name ("CutoffPeriodic"), a snake_case
// alias ("cutoff_periodic") or the integer value ("2").
func ParseNonbondedMethod(s string) (NonbondedMethod, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if m, ok := methodAliases[key]; ok {
		return m, nil
	}
	if n, err := strconv.Atoi(key); err == nil {
		if m := NonbondedMethod(n); m.Valid() {
			return m, nil
		}
	}
	return NoCutoff, fmt.Errorf("gvol: unknown nonbonded method %q", s)
}
