// Package engine is a reference host for GVol forces.
//
// A [Context] owns particle positions and the periodic box. It builds
// [Instance] values from a [gvol.Snapshot], performing the geometry checks the
// force itself leaves out:
//
//	ctx := engine.NewContext(positions, box)
//	inst, err := force.CreateImpl(ctx)
//
// Instances keep a private copy of the parameters and accept updates only
// through CopyParameters, which [gvol.Force.UpdateParametersInContext] calls.
// No energy or forces are evaluated here.
package engine
