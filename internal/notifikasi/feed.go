package notifikasi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal/core/events"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
)

// FeedAPI is the read-state side of the notification screen.
type FeedAPI interface {
	MarkRead(ctx context.Context, id string) (Notifikasi, error)
	MarkAllRead(ctx context.Context) (int, error)
	UnreadCount(ctx context.Context) (int, error)
}

type Feed struct {
	repo   record.Repository[Notifikasi]
	logger *slog.Logger
	titles map[string]string
	now    func() time.Time
}

// NewFeed builds the feed over repo. titles maps screen names to the label
// used in generated entries.
func NewFeed(repo record.Repository[Notifikasi], logger *slog.Logger, titles map[string]string) *Feed {
	return &Feed{repo: repo, logger: logger, titles: titles, now: time.Now}
}

func (f *Feed) MarkRead(ctx context.Context, id string) (Notifikasi, error) {
	n, err := f.repo.Get(ctx, id)
	if err != nil {
		return Notifikasi{}, err
	}
	if n.Dibaca {
		return n, nil
	}
	n.Dibaca = true
	return f.repo.Update(ctx, id, n)
}

// MarkAllRead returns how many entries changed.
func (f *Feed) MarkAllRead(ctx context.Context) (int, error) {
	items, err := f.repo.List(ctx)
	if err != nil {
		return 0, err
	}

	changed := 0
	for _, n := range items {
		if n.Dibaca {
			continue
		}
		n.Dibaca = true
		if _, err := f.repo.Update(ctx, n.ID, n); err != nil {
			return changed, err
		}
		changed++
	}
	f.logger.Info("notifications marked read", "count", changed)
	return changed, nil
}

func (f *Feed) UnreadCount(ctx context.Context) (int, error) {
	items, err := f.repo.List(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, n := range items {
		if !n.Dibaca {
			count++
		}
	}
	return count, nil
}

// Register subscribes the feed to every record mutation event.
func (f *Feed) Register(bus *events.EventBus) {
	bus.SubscribeMany(f.HandleRecordEvent, events.RecordEventTypes...)
}

// HandleRecordEvent appends a feed entry for a mutation on another screen.
func (f *Feed) HandleRecordEvent(ctx context.Context, event events.Event) error {
	rec, ok := event.(*events.RecordEvent)
	if !ok {
		return fmt.Errorf("unexpected event type %T", event)
	}
	if rec.Screen == Screen {
		return nil
	}

	title := f.titles[rec.Screen]
	if title == "" {
		title = rec.Screen
	}

	verb, tipe := "diperbarui", TipeInfo
	switch rec.Type {
	case events.EventTypeRecordCreated:
		verb, tipe = "ditambahkan", TipeSukses
	case events.EventTypeRecordDeleted:
		verb, tipe = "dihapus", TipePeringatan
	}

	pesan := rec.Label
	if pesan == "" {
		pesan = rec.RecordID
	}
	pesan += " " + verb
	if rec.Actor != "" {
		pesan += " oleh " + rec.Actor
	}

	_, err := f.repo.Create(ctx, Notifikasi{
		ID:         record.NewID(),
		Judul:      fmt.Sprintf("Data %s %s", title, verb),
		Pesan:      pesan,
		Tipe:       tipe,
		DibuatPada: f.now(),
	})
	if err != nil {
		f.logger.Error("failed to record notification", "event_id", rec.EventID(), "error", err)
		return err
	}
	return nil
}
