package tunjangan

import "time"

type Tunjangan struct {
	ID         string    `gorm:"primaryKey;type:varchar(36)"`
	NIP        string    `gorm:"column:nip;not null"`
	Nama       string    `gorm:"column:nama;not null"`
	Bulan      int       `gorm:"column:bulan;not null"`
	Tahun      int       `gorm:"column:tahun;not null"`
	GajiPokok  int64     `gorm:"column:gaji_pokok;not null;default:0"`
	Tunjangan  int64     `gorm:"column:tunjangan;not null;default:0"`
	Potongan   int64     `gorm:"column:potongan;not null;default:0"`
	Total      int64     `gorm:"column:total;not null;default:0"`
	Status     string    `gorm:"column:status;default:Diproses"`
	Keterangan string    `gorm:"column:keterangan"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Tunjangan) TableName() string {
	return "tunjangan"
}

// Rekap is one row of the per-period recap query.
type Rekap struct {
	Tahun  int   `db:"tahun" json:"tahun"`
	Bulan  int   `db:"bulan" json:"bulan"`
	Jumlah int   `db:"jumlah" json:"jumlah"`
	Total  int64 `db:"total" json:"total"`
}
