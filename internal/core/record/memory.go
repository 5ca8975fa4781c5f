package record

import (
	"context"
	"fmt"
	"slices"
	"sync"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
)

// MemoryRepository keeps records in insertion order. Each screen owns its own
// instance; nothing is shared between instances.
type MemoryRepository[T Entity[T]] struct {
	mu    sync.RWMutex
	items []T
}

func NewMemoryRepository[T Entity[T]](seed ...T) *MemoryRepository[T] {
	return &MemoryRepository[T]{items: slices.Clone(seed)}
}

func (r *MemoryRepository[T]) List(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append(make([]T, 0, len(r.items)), r.items...), nil
}

func (r *MemoryRepository[T]) Get(ctx context.Context, id string) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("get %s: %w", id, errors.ErrRecordNotFound)
	}
	return r.items[i], nil
}

func (r *MemoryRepository[T]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	if rec.RecordID() == "" {
		rec = rec.WithRecordID(NewID())
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(rec.RecordID()) >= 0 {
		return zero, fmt.Errorf("create %s: %w", rec.RecordID(), errors.ErrDuplicateRecord)
	}
	r.items = append(r.items, rec)
	return rec, nil
}

// Update replaces the record with id in place. The id itself never changes.
func (r *MemoryRepository[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	rec = rec.WithRecordID(id)

	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return zero, fmt.Errorf("update %s: %w", id, errors.ErrRecordNotFound)
	}
	r.items[i] = rec
	return rec, nil
}

func (r *MemoryRepository[T]) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("delete %s: %w", id, errors.ErrRecordNotFound)
	}
	r.items = slices.Delete(r.items, i, i+1)
	return nil
}

// Len reports the number of stored records.
func (r *MemoryRepository[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

func (r *MemoryRepository[T]) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(rec T) bool { return rec.RecordID() == id })
}
