package catalog_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynsets/internal/catalog"
	"github.com/san-kum/dynsets/internal/sets"
	"github.com/san-kum/dynsets/internal/uncertainty"
)

var _ = Describe("Load", func() {
	for _, id := range catalog.IDs() {
		Context(string(id), func() {
			It("builds sets that match the model", func() {
				f, err := catalog.Load(id)
				Expect(err).NotTo(HaveOccurred())
				Expect(f.ID).To(Equal(id))
				Expect(f.Spec.R0.Dim()).To(Equal(f.Model.StateDim()))
				Expect(f.Spec.U.Dim()).To(Equal(f.Model.InputDim()))
				Expect(f.Model.Dt()).To(BeNumerically(">", 0))
			})

			It("exposes U as W × V exactly when it decomposes noise", func() {
				f, err := catalog.Load(id)
				Expect(err).NotTo(HaveOccurred())
				if !f.Spec.Decomposed() {
					Expect(f.Spec.W).To(BeNil())
					Expect(f.Spec.V).To(BeNil())
					return
				}
				Expect(f.Spec.U.Equal(sets.CartesianProduct(f.Spec.W, f.Spec.V))).To(BeTrue())
				Expect(f.Spec.U.NumGenerators()).To(Equal(f.Spec.W.NumGenerators() + f.Spec.V.NumGenerators()))
			})

			It("is reproducible under a fixed seed in every supported mode", func() {
				modes, err := catalog.Default().Modes(id)
				Expect(err).NotTo(HaveOccurred())
				Expect(modes).To(ContainElement(uncertainty.Standard))
				for _, m := range modes {
					a, err := catalog.Load(id, catalog.WithMode(m), catalog.WithSeed(3))
					Expect(err).NotTo(HaveOccurred())
					b, err := catalog.Load(id, catalog.WithMode(m), catalog.WithSeed(3))
					Expect(err).NotTo(HaveOccurred())
					Expect(a.Spec.R0.Equal(b.Spec.R0)).To(BeTrue(), "R0 in mode %s", m)
					Expect(a.Spec.U.Equal(b.Spec.U)).To(BeTrue(), "U in mode %s", m)
				}
			})
		})
	}

	It("reports unknown systems for every mode", func() {
		for _, m := range uncertainty.Modes() {
			f, err := catalog.Load("doesNotExist", catalog.WithMode(m), catalog.WithSeed(1))
			Expect(err).To(MatchError(catalog.ErrUnknownSystem))
			Expect(f).To(BeNil())

			var le *catalog.LoadError
			Expect(err).To(BeAssignableToTypeOf(le))
		}
	})

	DescribeTable("standard-only entries reject random modes",
		func(id catalog.ID) {
			for _, m := range []uncertainty.Mode{uncertainty.Diag, uncertainty.Rand} {
				_, err := catalog.Load(id, catalog.WithMode(m), catalog.WithSeed(1))
				Expect(err).To(MatchError(catalog.ErrUnsupportedMode))
			}
		},
		Entry("bicycleHO", catalog.BicycleHO),
		Entry("cstrDiscr", catalog.CSTRDiscr),
		Entry("tank", catalog.Tank),
		Entry("tank30", catalog.Tank30),
		Entry("tank60", catalog.Tank60),
	)
})

var _ = Describe("LoadAll", func() {
	It("loads every entry that supports the standard mode", func() {
		ids := catalog.IDs()
		all, err := catalog.LoadAll(context.Background(), ids, 0)
		Expect(err).NotTo(HaveOccurred())
		Expect(all).To(HaveLen(len(ids)))
		for i, f := range all {
			Expect(f.ID).To(Equal(ids[i]))
		}
	})

	It("stops on a cancelled context", func() {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := catalog.LoadAll(ctx, catalog.IDs(), 0)
		Expect(err).To(MatchError(context.Canceled))
	})
})
