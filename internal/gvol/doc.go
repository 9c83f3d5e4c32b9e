// Package gvol holds the configuration of the GVol implicit solvation force:
// per-particle parameters and the nonbonded truncation policy.
//
// A [Force] is a passive value holder:
//
//   - particles are appended with [Force.AddParticle]; the returned index is
//     permanent and matches the particle's index in the host topology
//   - [Force.SetNonbondedMethod] and [Force.SetCutoffDistance] accept any value
//   - radius, gamma and cutoff are never checked for physical plausibility;
//     the engine that builds the force is responsible for that
//
// # Build and update
//
// An engine turns a force into a running [Instance] through [Force.CreateImpl].
// The instance keeps its own copy of the parameters. Later writes to the force
// reach the instance only through [Force.UpdateParametersInContext]:
//
//	f.SetParticleParameters(1, 0.20, 0.2, false)
//	if err := f.UpdateParametersInContext(inst); err != nil {
//		return err
//	}
//
// Only radius and gamma are pushed. Changing IsHydrogen, the method or the
// cutoff after build is unsupported and requires building a new instance.
//
// # Thread Safety
//
// Force is NOT thread-safe. Callers serialize access.
package gvol
