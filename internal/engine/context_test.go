package engine_test

import (
	"math"

	"github.com/go-logr/logr/funcr"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gvolsim/internal/engine"
	"github.com/san-kum/gvolsim/internal/gvol"
)

func snapshot(n int, m gvol.NonbondedMethod, cutoff float64) gvol.Snapshot {
	s := gvol.Snapshot{Method: m, CutoffDistance: cutoff}
	for i := 0; i < n; i++ {
		s.Particles = append(s.Particles, gvol.Particle{Radius: 0.1 + float64(i)*0.01, Gamma: float64(i), IsHydrogen: i == 0})
	}
	return s
}

var _ = Describe("Context", func() {
	var ctx *engine.Context

	BeforeEach(func() {
		ctx = engine.NewContext([]engine.Vec3{{0, 0, 0}, {1, 0, 0}}, engine.Vec3{2, 3, 4})
	})

	It("copies positions on construction", func() {
		pos := []engine.Vec3{{1, 2, 3}}
		c := engine.NewContext(pos, engine.Vec3{})
		pos[0][0] = 99
		Expect(c.Positions()[0]).To(Equal(engine.Vec3{1, 2, 3}))
	})

	It("builds an instance holding a copy of the snapshot", func() {
		s := snapshot(2, gvol.NoCutoff, 0)
		inst, err := ctx.BuildInstance(s)
		Expect(err).NotTo(HaveOccurred())
		Expect(inst.NumParticles()).To(Equal(2))

		s.Particles[1].Radius = 42
		r, g, err := inst.Parameters(1)
		Expect(err).NotTo(HaveOccurred())
		Expect(r).To(Equal(0.11))
		Expect(g).To(Equal(1.0))

		h, _ := inst.IsHydrogen(0)
		Expect(h).To(BeTrue())
		Expect(inst.Context()).To(BeIdenticalTo(ctx))
	})

	It("ignores the cutoff under NoCutoff", func() {
		_, err := ctx.Build(snapshot(2, gvol.NoCutoff, -1))
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("rejects inconsistent snapshots",
		func(s gvol.Snapshot, want error) {
			_, err := ctx.Build(s)
			Expect(err).To(MatchError(want))
		},
		Entry("too few particles", snapshot(1, gvol.NoCutoff, 0), engine.ErrParticleCount),
		Entry("too many particles", snapshot(3, gvol.NoCutoff, 0), engine.ErrParticleCount),
		Entry("unknown method", snapshot(2, gvol.NonbondedMethod(9), 1), engine.ErrInvalidMethod),
		Entry("zero cutoff", snapshot(2, gvol.CutoffNonPeriodic, 0), engine.ErrInvalidCutoff),
		Entry("negative periodic cutoff", snapshot(2, gvol.CutoffPeriodic, -1), engine.ErrInvalidCutoff),
		Entry("cutoff above half box", snapshot(2, gvol.CutoffPeriodic, 1.01), engine.ErrCutoffTooLarge),
		Entry("NaN non-periodic cutoff", snapshot(2, gvol.CutoffNonPeriodic, math.NaN()), engine.ErrInvalidCutoff),
		Entry("NaN periodic cutoff", snapshot(2, gvol.CutoffPeriodic, math.NaN()), engine.ErrInvalidCutoff),
		Entry("infinite periodic cutoff", snapshot(2, gvol.CutoffPeriodic, math.Inf(1)), engine.ErrCutoffTooLarge),
	)

	It("accepts a periodic cutoff of exactly half the smallest edge", func() {
		_, err := ctx.Build(snapshot(2, gvol.CutoffPeriodic, 1.0))
		Expect(err).NotTo(HaveOccurred())
	})

	It("does not bound a non-periodic cutoff by the box", func() {
		_, err := ctx.Build(snapshot(2, gvol.CutoffNonPeriodic, 100))
		Expect(err).NotTo(HaveOccurred())
	})

	It("rejects a periodic build without a box", func() {
		c := engine.NewContext([]engine.Vec3{{0, 0, 0}}, engine.Vec3{})
		_, err := c.Build(snapshot(1, gvol.CutoffPeriodic, 0.5))
		Expect(err).To(MatchError(engine.ErrInvalidBox))
	})

	It("logs builds through the configured logger", func() {
		var lines []string
		l := funcr.New(func(prefix, args string) { lines = append(lines, args) }, funcr.Options{Verbosity: 1})
		c := engine.NewContext([]engine.Vec3{{0, 0, 0}}, engine.Vec3{}, engine.WithLogger(l))
		_, err := c.Build(snapshot(1, gvol.NoCutoff, 0))
		Expect(err).NotTo(HaveOccurred())
		Expect(lines).To(HaveLen(1))
		Expect(lines[0]).To(ContainSubstring("built gvol instance"))
	})
})

var _ = Describe("Instance", func() {
	var inst *engine.Instance

	BeforeEach(func() {
		ctx := engine.NewContext([]engine.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}, engine.Vec3{})
		var err error
		inst, err = ctx.BuildInstance(snapshot(3, gvol.NoCutoff, 0))
		Expect(err).NotTo(HaveOccurred())
	})

	It("overwrites every radius and gamma", func() {
		Expect(inst.CopyParameters([]float64{1, 2, 3}, []float64{4, 5, 6})).To(Succeed())
		for i := 0; i < 3; i++ {
			r, g, _ := inst.Parameters(i)
			Expect(r).To(Equal(float64(i + 1)))
			Expect(g).To(Equal(float64(i + 4)))
		}
		Expect(inst.Revision()).To(Equal(1))
	})

	It("applies nothing when lengths disagree", func() {
		err := inst.CopyParameters([]float64{1, 2, 3}, []float64{4, 5})
		Expect(err).To(MatchError(engine.ErrParameterLength))
		r, g, _ := inst.Parameters(0)
		Expect(r).To(Equal(0.1))
		Expect(g).To(Equal(0.0))
		Expect(inst.Revision()).To(Equal(0))
	})

	It("treats a nil instance as empty and refuses updates", func() {
		var missing *engine.Instance
		Expect(missing.NumParticles()).To(Equal(0))
		Expect(missing.CopyParameters(nil, nil)).To(MatchError(gvol.ErrNilInstance))
	})

	It("rejects out of range lookups", func() {
		_, _, err := inst.Parameters(3)
		Expect(err).To(MatchError(gvol.ErrOutOfRange))
		_, err = inst.IsHydrogen(-1)
		Expect(err).To(MatchError(gvol.ErrOutOfRange))
	})
})
