// Package record owns the records behind a screen: the repository contract
// every record source satisfies, an in-memory implementation, and the CRUD
// workflow driving add, edit, view and delete.
package record

import (
	"context"

	"github.com/google/uuid"
)

// Entity is a record identified only by its ID. WithRecordID returns a copy
// carrying id; implementations use value receivers.
type Entity[T any] interface {
	RecordID() string
	WithRecordID(id string) T
}

// Repository is the record source collaborator. Get, Update and Delete return
// an error matching errors.ErrRecordNotFound for unknown ids; Create returns
// errors.ErrDuplicateRecord when the id is taken.
type Repository[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id string, rec T) (T, error)
	Delete(ctx context.Context, id string) error
}

// NewID returns a time-ordered identifier, so ids sort in creation order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
