package gvol_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/gvolsim/internal/gvol"
)

var _ = Describe("NonbondedMethod", func() {
	It("uses the persisted integer values", func() {
		Expect(int(gvol.NoCutoff)).To(Equal(0))
		Expect(int(gvol.CutoffNonPeriodic)).To(Equal(1))
		Expect(int(gvol.CutoffPeriodic)).To(Equal(2))
	})

	It("lists methods in enum order", func() {
		Expect(gvol.Methods()).To(Equal([]gvol.NonbondedMethod{gvol.NoCutoff, gvol.CutoffNonPeriodic, gvol.CutoffPeriodic}))
	})

	It("classifies cutoff and periodic methods", func() {
		Expect(gvol.NoCutoff.UsesCutoff()).To(BeFalse())
		Expect(gvol.CutoffNonPeriodic.UsesCutoff()).To(BeTrue())
		Expect(gvol.CutoffNonPeriodic.UsesPeriodic()).To(BeFalse())
		Expect(gvol.CutoffPeriodic.UsesPeriodic()).To(BeTrue())
	})

	It("marks values outside the enum invalid", func() {
		Expect(gvol.NonbondedMethod(3).Valid()).To(BeFalse())
		Expect(gvol.NonbondedMethod(3).String()).To(Equal("NonbondedMethod(3)"))
	})

	DescribeTable("parses names, aliases and integers",
		func(in string, want gvol.NonbondedMethod) {
			m, err := gvol.ParseNonbondedMethod(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(m).To(Equal(want))
		},
		Entry("case name", "CutoffPeriodic", gvol.CutoffPeriodic),
		Entry("snake case", "cutoff_non_periodic", gvol.CutoffNonPeriodic),
		Entry("none alias", "none", gvol.NoCutoff),
		Entry("integer", "1", gvol.CutoffNonPeriodic),
		Entry("padded", "  NoCutoff ", gvol.NoCutoff),
	)

	It("round-trips String through ParseNonbondedMethod", func() {
		for _, m := range gvol.Methods() {
			got, err := gvol.ParseNonbondedMethod(m.String())
			Expect(err).NotTo(HaveOccurred())
			Expect(got).To(Equal(m))
		}
	})

	It("rejects unknown names", func() {
		_, err := gvol.ParseNonbondedMethod("ewald")
		Expect(err).To(HaveOccurred())
		_, err = gvol.ParseNonbondedMethod("7")
		Expect(err).To(HaveOccurred())
	})
})
