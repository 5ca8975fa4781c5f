package record

import (
	"context"
	"log/slog"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/events"
)

// Service decorates a Repository with logging, error mapping and mutation
// events. It satisfies Repository itself, so workflows run on top of it.
type Service[T Entity[T]] struct {
	screen   string
	repo     Repository[T]
	bus      events.Publisher
	logger   *slog.Logger
	describe func(T) string
}

type ServiceOption[T Entity[T]] func(*Service[T])

// WithPublisher publishes record.created|updated|deleted after each mutation.
func WithPublisher[T Entity[T]](bus events.Publisher) ServiceOption[T] {
	return func(s *Service[T]) { s.bus = bus }
}

// WithLabel sets the human readable label carried by mutation events.
func WithLabel[T Entity[T]](describe func(T) string) ServiceOption[T] {
	return func(s *Service[T]) { s.describe = describe }
}

func NewService[T Entity[T]](screen string, repo Repository[T], logger *slog.Logger, opts ...ServiceOption[T]) *Service[T] {
	s := &Service[T]{
		screen: screen,
		repo:   repo,
		logger: logger.With("screen", screen),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service[T]) Screen() string { return s.screen }

func (s *Service[T]) List(ctx context.Context) ([]T, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error("failed to list records", "error", err)
		return nil, sourceError(err)
	}
	return items, nil
}

func (s *Service[T]) Get(ctx context.Context, id string) (T, error) {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure("get", id, err)
		return rec, sourceError(err)
	}
	return rec, nil
}

func (s *Service[T]) Create(ctx context.Context, rec T) (T, error) {
	saved, err := s.repo.Create(ctx, rec)
	if err != nil {
		s.logFailure("create", rec.RecordID(), err)
		return saved, sourceError(err)
	}
	s.logger.Info("record created", "id", saved.RecordID())
	s.publish(ctx, events.EventTypeRecordCreated, saved)
	return saved, nil
}

func (s *Service[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	saved, err := s.repo.Update(ctx, id, rec)
	if err != nil {
		s.logFailure("update", id, err)
		return saved, sourceError(err)
	}
	s.logger.Info("record updated", "id", id)
	s.publish(ctx, events.EventTypeRecordUpdated, saved)
	return saved, nil
}

func (s *Service[T]) Delete(ctx context.Context, id string) error {
	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		s.logFailure("delete", id, err)
		return sourceError(err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logFailure("delete", id, err)
		return sourceError(err)
	}
	s.logger.Info("record deleted", "id", id)
	s.publish(ctx, events.EventTypeRecordDeleted, rec)
	return nil
}

func (s *Service[T]) publish(ctx context.Context, eventType string, rec T) {
	if s.bus == nil {
		return
	}
	label := ""
	if s.describe != nil {
		label = s.describe(rec)
	}
	actor := ""
	if user, ok := errors.UserFromContext(ctx); ok {
		actor = user.Nama
	}

	event := events.NewRecordEvent(eventType, s.screen, rec.RecordID(), label, actor)
	if err := s.bus.PublishSync(ctx, event); err != nil {
		s.logger.Warn("record event not delivered", "event_type", eventType, "id", rec.RecordID(), "error", err)
	}
}

func (s *Service[T]) logFailure(op, id string, err error) {
	if appErr, ok := errors.IsAppError(err); ok && appErr.Type != errors.ErrorTypeInternal {
		s.logger.Warn("record operation rejected", "op", op, "id", id, "code", appErr.Code)
		return
	}
	s.logger.Error("record operation failed", "op", op, "id", id, "error", err)
}

// sourceError keeps AppErrors and surfaces anything else verbatim as an
// internal error.
func sourceError(err error) error {
	if _, ok := errors.IsAppError(err); ok {
		return err
	}
	return errors.AsAppError(err)
}
