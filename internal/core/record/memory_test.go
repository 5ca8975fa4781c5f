package record_test

import (
	"context"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("MemoryRepository", func() {
	var (
		ctx  context.Context
		repo *record.MemoryRepository[item]
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = record.NewMemoryRepository(item{ID: "a", Nama: "Ani"}, item{ID: "b", Nama: "Budi"})
	})

	It("lists records in insertion order", func() {
		_, err := repo.Create(ctx, item{ID: "c", Nama: "Citra"})
		Expect(err).NotTo(HaveOccurred())

		items, err := repo.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		Expect(items).To(HaveLen(3))
		Expect(items[2].Nama).To(Equal("Citra"))
	})

	It("returns copies that cannot mutate the stored records", func() {
		items, _ := repo.List(ctx)
		items[0].Nama = "changed"

		got, err := repo.Get(ctx, "a")
		Expect(err).NotTo(HaveOccurred())
		Expect(got.Nama).To(Equal("Ani"))
	})

	It("assigns an id when none is given", func() {
		saved, err := repo.Create(ctx, item{Nama: "Dewi"})
		Expect(err).NotTo(HaveOccurred())
		Expect(saved.ID).NotTo(BeEmpty())
	})

	It("rejects duplicate ids", func() {
		_, err := repo.Create(ctx, item{ID: "a"})
		Expect(err).To(MatchError(errors.ErrDuplicateRecord))
	})

	It("replaces by id in place and keeps the id immutable", func() {
		saved, err := repo.Update(ctx, "a", item{ID: "zzz", Nama: "Ani Baru"})
		Expect(err).NotTo(HaveOccurred())
		Expect(saved.ID).To(Equal("a"))

		items, _ := repo.List(ctx)
		Expect(items[0]).To(Equal(item{ID: "a", Nama: "Ani Baru"}))
		Expect(items).To(HaveLen(2))
	})

	It("removes by id", func() {
		Expect(repo.Delete(ctx, "a")).To(Succeed())
		Expect(repo.Len()).To(Equal(1))
	})

	It("reports unknown ids as not found", func() {
		_, err := repo.Get(ctx, "nope")
		Expect(isNotFound(err)).To(BeTrue())
		_, err = repo.Update(ctx, "nope", item{})
		Expect(err).To(MatchError(errors.ErrRecordNotFound))
		Expect(repo.Delete(ctx, "nope")).To(MatchError(errors.ErrRecordNotFound))
		Expect(repo.Len()).To(Equal(2))
	})

	It("honours a cancelled context", func() {
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.List(cancelled)
		Expect(err).To(MatchError(context.Canceled))
	})

	It("keeps instances independent", func() {
		other := record.NewMemoryRepository[item]()
		_, _ = other.Create(ctx, item{ID: "x"})
		Expect(repo.Len()).To(Equal(2))
	})
})
