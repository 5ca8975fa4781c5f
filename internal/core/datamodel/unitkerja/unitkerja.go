package unitkerja

import "time"

type UnitKerja struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	Kode      string    `gorm:"column:kode;not null"`
	Nama      string    `gorm:"column:nama;not null"`
	Kepala    string    `gorm:"column:kepala"`
	Lokasi    string    `gorm:"column:lokasi"`
	Status    string    `gorm:"column:status;default:Aktif"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (UnitKerja) TableName() string {
	return "unit_kerja"
}
