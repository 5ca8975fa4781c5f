package record_test

import (
	"context"
	stderrors "errors"
	"io"
	"log/slog"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/events"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Service", func() {
	var (
		ctx       context.Context
		bus       *events.EventBus
		published []*events.RecordEvent
		svc       *record.Service[item]
		logger    *slog.Logger
	)

	BeforeEach(func() {
		ctx = errors.ContextWithUser(context.Background(), &errors.CurrentUser{ID: "u1", Nama: "Admin PAS", Role: "admin"})
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		bus = events.NewEventBus(logger)
		published = nil
		bus.SubscribeMany(func(ctx context.Context, e events.Event) error {
			published = append(published, e.(*events.RecordEvent))
			return nil
		}, events.RecordEventTypes...)

		repo := record.NewMemoryRepository(item{ID: "a", Nama: "Ani"})
		svc = record.NewService[item]("pegawai", repo, logger,
			record.WithPublisher[item](bus),
			record.WithLabel(func(i item) string { return i.Nama }),
		)
	})

	It("publishes an event per mutation with label and actor", func() {
		wf := record.NewWorkflow[item](svc, itemHooks())
		_, _ = wf.BeginAdd()
		created, err := wf.Submit(ctx, item{Nama: "Budi"})
		Expect(err).NotTo(HaveOccurred())

		_, err = svc.Update(ctx, created.ID, item{Nama: "Budi S"})
		Expect(err).NotTo(HaveOccurred())
		Expect(svc.Delete(ctx, "a")).To(Succeed())

		Expect(published).To(HaveLen(3))
		Expect(published[0].Type).To(Equal(events.EventTypeRecordCreated))
		Expect(published[0].Label).To(Equal("Budi"))
		Expect(published[0].Screen).To(Equal("pegawai"))
		Expect(published[0].Actor).To(Equal("Admin PAS"))
		Expect(published[1].Label).To(Equal("Budi S"))
		Expect(published[2].Type).To(Equal(events.EventTypeRecordDeleted))
		Expect(published[2].Label).To(Equal("Ani"))
	})

	It("publishes nothing when the mutation fails", func() {
		err := svc.Delete(ctx, "missing")
		Expect(err).To(MatchError(errors.ErrRecordNotFound))
		Expect(published).To(BeEmpty())
	})

	It("surfaces record source failures verbatim", func() {
		failing := record.NewService[item]("pegawai", failingRepository{err: stderrors.New("koneksi terputus")}, logger)
		_, err := failing.List(ctx)

		appErr, ok := errors.IsAppError(err)
		Expect(ok).To(BeTrue())
		Expect(appErr.Type).To(Equal(errors.ErrorTypeInternal))
		Expect(appErr.Message).To(Equal("koneksi terputus"))
	})

	It("works without a publisher", func() {
		plain := record.NewService[item]("jabatan", record.NewMemoryRepository[item](), logger)
		_, err := plain.Create(ctx, item{ID: "j1", Nama: "Analis"})
		Expect(err).NotTo(HaveOccurred())
		Expect(plain.Screen()).To(Equal("jabatan"))
	})
})
