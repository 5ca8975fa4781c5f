package tabular_test

import (
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("View", func() {
	var view *tabular.View[row]

	BeforeEach(func() {
		var err error
		view, err = tabular.NewView(rowConfig())
		Expect(err).NotTo(HaveOccurred())
		view.SetSource(seedRows(12))
	})

	page := func() tabular.Page[row] {
		p, err := view.Page()
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	It("starts on the first page of the unsorted source", func() {
		p := page()
		Expect(p.Page).To(Equal(1))
		Expect(p.TotalPages).To(Equal(3))
		Expect(p.TotalItems).To(Equal(12))
		Expect(ids(p.Items)).To(Equal([]string{"r01", "r02", "r03", "r04", "r05"}))
		Expect(p.HasPrevious).To(BeFalse())
		Expect(p.HasNext).To(BeTrue())
	})

	It("returns to page 1 when a filter shrinks the result", func() {
		view.GoTo(2)
		Expect(page().Page).To(Equal(2))

		view.SetFilter("Pegawai 1")
		p := page()
		Expect(p.TotalItems).To(Equal(3))
		Expect(p.Page).To(Equal(1))
		Expect(ids(p.Items)).To(Equal([]string{"r10", "r11", "r12"}))
	})

	It("keeps the page when the same filter is applied again", func() {
		view.SetFilter("Pegawai")
		view.GoTo(2)
		view.SetFilter("Pegawai")
		Expect(view.CurrentPage()).To(Equal(2))
	})

	It("returns to page 1 when the source changes size", func() {
		view.GoTo(3)
		view.SetSource(seedRows(13))
		Expect(view.CurrentPage()).To(Equal(1))

		view.GoTo(3)
		view.SetSource(seedRows(13))
		Expect(view.CurrentPage()).To(Equal(3))
	})

	It("clamps page navigation", func() {
		view.GoTo(99)
		Expect(view.CurrentPage()).To(Equal(3))
		view.GoTo(-4)
		Expect(view.CurrentPage()).To(Equal(1))
	})

	It("treats Previous on the first page and Next on the last page as no-ops", func() {
		view.Previous()
		Expect(view.CurrentPage()).To(Equal(1))

		view.Next()
		view.Next()
		Expect(view.CurrentPage()).To(Equal(3))
		view.Next()
		Expect(view.CurrentPage()).To(Equal(3))

		p := page()
		Expect(p.HasNext).To(BeFalse())
		Expect(ids(p.Items)).To(Equal([]string{"r11", "r12"}))
	})

	It("toggles sorting on repeated column selection", func() {
		Expect(view.ToggleSort("gaji")).To(Succeed())
		Expect(ids(page().Items)[0]).To(Equal("r01"))

		Expect(view.ToggleSort("gaji")).To(Succeed())
		p := page()
		Expect(p.Sort).To(Equal(tabular.SortSpec{Column: "gaji", Direction: tabular.Descending}))
		Expect(ids(p.Items)[0]).To(Equal("r12"))

		Expect(view.ToggleSort("nama")).To(Succeed())
		Expect(view.Sort().Direction).To(Equal(tabular.Ascending))
	})

	It("rejects an unknown sort column without changing state", func() {
		Expect(view.ToggleSort("gaji")).To(Succeed())
		Expect(view.ToggleSort("tidak_ada")).To(MatchError(tabular.ErrUnknownColumn))
		Expect(view.Sort().Column).To(Equal("gaji"))
	})

	It("produces an empty first page for an empty source", func() {
		view.SetSource(nil)
		p := page()
		Expect(p.Items).To(BeEmpty())
		Expect(p.Items).NotTo(BeNil())
		Expect(p.Page).To(Equal(1))
		Expect(p.TotalPages).To(Equal(1))
		Expect(render(p.PageNumbers)).To(Equal([]string{"1"}))
	})

	It("recomputes page numbers against the filtered view", func() {
		view.SetSource(seedRows(50))
		view.GoTo(5)
		Expect(render(page().PageNumbers)).To(Equal([]string{"1", "…", "4", "5", "6", "…", "10"}))

		view.SetFilter("Pegawai 0")
		p := page()
		Expect(p.TotalItems).To(Equal(9))
		Expect(render(p.PageNumbers)).To(Equal([]string{"1", "2"}))
	})

	It("rejects configurations without columns", func() {
		_, err := tabular.NewView(tabular.Config[row]{})
		Expect(err).To(MatchError(tabular.ErrNoColumns))
	})
})
