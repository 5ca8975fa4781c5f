package notifikasi

import "time"

type Notifikasi struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	Judul      string    `gorm:"column:judul;not null"`
	Pesan      string    `gorm:"column:pesan"`
	Tipe       string    `gorm:"column:tipe;default:info"`
	Dibaca     bool      `gorm:"column:dibaca;default:false"`
	DibuatPada time.Time `gorm:"column:dibuat_pada"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Notifikasi) TableName() string {
	return "notifikasi"
}
