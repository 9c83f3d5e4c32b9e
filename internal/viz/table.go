package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gvolsim/internal/gvol"
)

// FormatFloat prints the shortest representation that parses back to v.
func FormatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Summary renders the nonbonded configuration of f inside a Panel.
func Summary(name string, f *gvol.Force) string {
	var b strings.Builder
	b.WriteString(Title.Render(name))
	b.WriteString("\n")
	fmt.Fprintf(&b, "%s %s\n", Label.Render("particles:"), Value.Render(strconv.Itoa(f.NumParticles())))
	fmt.Fprintf(&b, "%s %s\n", Label.Render("method:   "), Value.Render(f.NonbondedMethod().String()))

	cutoff := FormatFloat(f.CutoffDistance()) + " nm"
	if !f.NonbondedMethod().UsesCutoff() {
		cutoff = Subtle.Render(cutoff + " (unused)")
	} else {
		cutoff = Value.Render(cutoff)
	}
	fmt.Fprintf(&b, "%s %s", Label.Render("cutoff:   "), cutoff)
	return Panel.Render(b.String())
}

// ParticleTable renders one row per particle in index order.
func ParticleTable(f *gvol.Force) string {
	var b strings.Builder
	b.WriteString(Header.Render(fmt.Sprintf("%5s  %-12s  %-12s  %s", "index", "radius (nm)", "gamma", "H")))
	b.WriteString("\n")
	for i, p := range f.Particles() {
		h := ""
		if p.IsHydrogen {
			h = "H"
		}
		fmt.Fprintf(&b, "%5d  %-12s  %-12s  %s\n", i, FormatFloat(p.Radius), FormatFloat(p.Gamma), h)
	}
	if f.NumParticles() == 0 {
		b.WriteString(Subtle.Render("  (no particles)"))
		b.WriteString("\n")
	}
	return b.String()
}

// Field selects a per-particle parameter for plotting.
type Field string

const (
	FieldRadius Field = "radius"
	FieldGamma  Field = "gamma"
)

func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(s)) {
	case FieldRadius:
		return FieldRadius, nil
	case FieldGamma:
		return FieldGamma, nil
	}
	return "", fmt.Errorf("unknown field %q (want radius or gamma)", s)
}

func FieldValues(f *gvol.Force, field Field) []float64 {
	particles := f.Particles()
	values := make([]float64, len(particles))
	for i, p := range particles {
		if field == FieldGamma {
			values[i] = p.Gamma
		} else {
			values[i] = p.Radius
		}
	}
	return values
}

// ParameterPlot renders field against particle index.
func ParameterPlot(f *gvol.Force, field Field, height int) string {
	values := FieldValues(f, field)
	if len(values) == 0 {
		return Subtle.Render("(no particles)")
	}
	if len(values) == 1 {
		values = append(values, values[0])
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Caption(fmt.Sprintf("%s by particle index", field)),
	)
}
