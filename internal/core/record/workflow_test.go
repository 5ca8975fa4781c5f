package record_test

import (
	"context"
	stderrors "errors"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Workflow", func() {
	var (
		ctx  context.Context
		repo *record.MemoryRepository[item]
		wf   *record.Workflow[item]
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = record.NewMemoryRepository(item{ID: "a", Nama: "Ani", Gaji: 10, Total: 10})
		wf = record.NewWorkflow[item](repo, itemHooks())
	})

	It("starts idle", func() {
		Expect(wf.Mode()).To(Equal(record.ModeIdle))
	})

	Describe("Add", func() {
		It("opens a form with the entity defaults", func() {
			form, err := wf.BeginAdd()
			Expect(err).NotTo(HaveOccurred())
			Expect(wf.Mode()).To(Equal(record.ModeAdd))
			Expect(form.Gaji).To(Equal(int64(1000)))
		})

		It("synthesises an id, derives fields, appends and returns to idle", func() {
			_, _ = wf.BeginAdd()
			saved, err := wf.Submit(ctx, item{Nama: "Budi", Gaji: 500, Potong: 100})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved.ID).To(Equal("new-x"))
			Expect(saved.Total).To(Equal(int64(400)))
			Expect(wf.Mode()).To(Equal(record.ModeIdle))

			items, _ := repo.List(ctx)
			Expect(items).To(HaveLen(2))
			Expect(items[1]).To(Equal(saved))
		})

		It("stays in Add with the form preserved when validation fails", func() {
			_, _ = wf.BeginAdd()
			submitted := item{Nama: "  ", Gaji: 7}
			_, err := wf.Submit(ctx, submitted)

			appErr, ok := errors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(errors.ErrCodeValidationFailed))
			Expect(wf.Mode()).To(Equal(record.ModeAdd))
			Expect(wf.Form()).To(Equal(submitted))
			Expect(repo.Len()).To(Equal(1))
		})

		It("keeps the form open when the record source rejects", func() {
			wf = record.NewWorkflow[item](failingRepository{err: stderrors.New("server sibuk")}, itemHooks())
			_, _ = wf.BeginAdd()
			_, err := wf.Submit(ctx, item{Nama: "Budi"})
			Expect(err).To(MatchError("server sibuk"))
			Expect(wf.Mode()).To(Equal(record.ModeAdd))
		})
	})

	Describe("Edit", func() {
		It("pre-populates the form from the selected record", func() {
			form, err := wf.BeginEdit(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(form.Nama).To(Equal("Ani"))
			Expect(wf.Target()).To(Equal("a"))
		})

		It("replaces the record in place and keeps its id", func() {
			_, _ = wf.BeginEdit(ctx, "a")
			saved, err := wf.Submit(ctx, item{ID: "hijack", Nama: "Ani S", Gaji: 20, Potong: 5})
			Expect(err).NotTo(HaveOccurred())
			Expect(saved).To(Equal(item{ID: "a", Nama: "Ani S", Gaji: 20, Potong: 5, Total: 15}))
			Expect(wf.Mode()).To(Equal(record.ModeIdle))

			items, _ := repo.List(ctx)
			Expect(items).To(Equal([]item{saved}))
		})

		It("does not open for a missing record", func() {
			_, err := wf.BeginEdit(ctx, "missing")
			Expect(isNotFound(err)).To(BeTrue())
			Expect(wf.Mode()).To(Equal(record.ModeIdle))
		})

		It("returns to idle when the record vanished before submit", func() {
			_, _ = wf.BeginEdit(ctx, "a")
			Expect(repo.Delete(ctx, "a")).To(Succeed())

			_, err := wf.Submit(ctx, item{Nama: "Ani"})
			Expect(isNotFound(err)).To(BeTrue())
			Expect(wf.Mode()).To(Equal(record.ModeIdle))
			Expect(repo.Len()).To(BeZero())
		})
	})

	Describe("View", func() {
		It("is read only", func() {
			rec, err := wf.BeginView(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(rec.Nama).To(Equal("Ani"))

			_, err = wf.Submit(ctx, item{Nama: "x"})
			Expect(err).To(MatchError(errors.ErrFormNotOpen))

			wf.Cancel()
			Expect(wf.Mode()).To(Equal(record.ModeIdle))
			got, _ := repo.Get(ctx, "a")
			Expect(got.Nama).To(Equal("Ani"))
		})
	})

	Describe("Delete", func() {
		It("removes the record on confirm", func() {
			_, err := wf.BeginDelete(ctx, "a")
			Expect(err).NotTo(HaveOccurred())
			Expect(wf.Confirm(ctx)).To(Succeed())
			Expect(wf.Mode()).To(Equal(record.ModeIdle))
			Expect(repo.Len()).To(BeZero())
		})

		It("leaves the stored records untouched on cancel", func() {
			_, _ = wf.BeginDelete(ctx, "a")
			wf.Cancel()
			Expect(wf.Mode()).To(Equal(record.ModeIdle))
			Expect(repo.Len()).To(Equal(1))
		})

		It("reports a record removed meanwhile as not found", func() {
			_, _ = wf.BeginDelete(ctx, "a")
			Expect(repo.Delete(ctx, "a")).To(Succeed())
			Expect(isNotFound(wf.Confirm(ctx))).To(BeTrue())
			Expect(wf.Mode()).To(Equal(record.ModeIdle))
		})

		It("requires a pending deletion", func() {
			Expect(wf.Confirm(ctx)).To(MatchError(errors.ErrFormNotOpen))
		})
	})

	It("allows only one open state at a time", func() {
		_, _ = wf.BeginAdd()
		_, err := wf.BeginEdit(ctx, "a")
		Expect(err).To(MatchError(errors.ErrFormOpen))
		_, err = wf.BeginAdd()
		Expect(err).To(MatchError(errors.ErrFormOpen))
		Expect(wf.Mode()).To(Equal(record.ModeAdd))
	})
})
