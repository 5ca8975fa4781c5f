package user

import "time"

type User struct {
	ID           string    `gorm:"primaryKey;type:varchar(36)"`
	Email        string    `gorm:"column:email;uniqueIndex;not null"`
	Nama         string    `gorm:"column:nama;not null"`
	PasswordHash string    `gorm:"column:password_hash;not null"`
	Role         string    `gorm:"column:role;not null;default:user"`
	IsActive     bool      `gorm:"column:is_active;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
