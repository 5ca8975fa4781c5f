package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	apperrors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	userDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/user"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (auth.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).Where("LOWER(email) = ?", strings.ToLower(email)).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.User{}, apperrors.ErrInvalidCredentials
	}
	if err != nil {
		return auth.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return fromModel(row), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (auth.User, error) {
	var row userDatamodel.User
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return auth.User{}, apperrors.ErrInvalidToken
	}
	if err != nil {
		return auth.User{}, fmt.Errorf("get user by id: %w", err)
	}
	return fromModel(row), nil
}

// Upsert inserts the account or refreshes it when the email already exists.
func (r *Repository) Upsert(ctx context.Context, u auth.User) error {
	row := userDatamodel.User{
		ID:           u.ID,
		Email:        u.Email,
		Nama:         u.Nama,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsActive:     u.IsActive,
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"nama", "password_hash", "role", "is_active", "updated_at"}),
	}).Create(&row).Error
}

func fromModel(row userDatamodel.User) auth.User {
	return auth.User{
		ID:           row.ID,
		Email:        row.Email,
		Nama:         row.Nama,
		PasswordHash: row.PasswordHash,
		Role:         auth.Role(row.Role),
		IsActive:     row.IsActive,
	}
}
