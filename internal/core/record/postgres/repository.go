// Package postgres stores records through gorm. The same repository runs on
// PostgreSQL in production and SQLite for local runs and tests.
package postgres

import (
	"context"
	stderrors "errors"
	"fmt"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"gorm.io/gorm"
)

// Mapper converts between a domain record and its gorm data model.
type Mapper[T any, M any] struct {
	ToModel   func(T) *M
	FromModel func(*M) T
}

// Repository implements record.Repository[T] over the table of M. Rows are
// listed by id, which follows creation order for time-ordered ids.
type Repository[T record.Entity[T], M any] struct {
	db     *gorm.DB
	mapper Mapper[T, M]
}

func NewRepository[T record.Entity[T], M any](db *gorm.DB, mapper Mapper[T, M]) *Repository[T, M] {
	return &Repository[T, M]{db: db, mapper: mapper}
}

func (r *Repository[T, M]) List(ctx context.Context) ([]T, error) {
	var rows []M
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]T, 0, len(rows))
	for i := range rows {
		out = append(out, r.mapper.FromModel(&rows[i]))
	}
	return out, nil
}

func (r *Repository[T, M]) Get(ctx context.Context, id string) (T, error) {
	var (
		zero T
		row  M
	)
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return zero, fmt.Errorf("get %s: %w", id, errors.ErrRecordNotFound)
		}
		return zero, err
	}
	return r.mapper.FromModel(&row), nil
}

func (r *Repository[T, M]) Create(ctx context.Context, rec T) (T, error) {
	var zero T
	if rec.RecordID() == "" {
		rec = rec.WithRecordID(record.NewID())
	}

	row := r.mapper.ToModel(rec)
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		if stderrors.Is(err, gorm.ErrDuplicatedKey) {
			return zero, fmt.Errorf("create %s: %w", rec.RecordID(), errors.ErrDuplicateRecord)
		}
		return zero, err
	}
	return r.mapper.FromModel(row), nil
}

func (r *Repository[T, M]) Update(ctx context.Context, id string, rec T) (T, error) {
	var zero T
	rec = rec.WithRecordID(id)
	row := r.mapper.ToModel(rec)

	res := r.db.WithContext(ctx).
		Model(row).
		Where("id = ?", id).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if res.Error != nil {
		return zero, res.Error
	}
	if res.RowsAffected == 0 {
		return zero, fmt.Errorf("update %s: %w", id, errors.ErrRecordNotFound)
	}
	return r.Get(ctx, id)
}

func (r *Repository[T, M]) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(new(M))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("delete %s: %w", id, errors.ErrRecordNotFound)
	}
	return nil
}
