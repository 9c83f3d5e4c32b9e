// Package viz renders GVol forces for the terminal: a summary of the nonbonded
// settings, a particle table and asciigraph plots of per-particle parameters.
//
//	fmt.Println(viz.Summary("water", f))
//	fmt.Print(viz.ParticleTable(f))
//	fmt.Println(viz.ParameterPlot(f, viz.FieldGamma, 10))
package viz
