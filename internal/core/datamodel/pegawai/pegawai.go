package pegawai

import "time"

type Pegawai struct {
	ID        string    `gorm:"primaryKey;type:varchar(36)"`
	NIP       string    `gorm:"column:nip;not null"`
	Nama      string    `gorm:"column:nama;not null"`
	Jabatan   string    `gorm:"column:jabatan"`
	UnitKerja string    `gorm:"column:unit_kerja"`
	Golongan  string    `gorm:"column:golongan"`
	Email     string    `gorm:"column:email"`
	Telepon   string    `gorm:"column:telepon"`
	Status    string    `gorm:"column:status;default:Aktif"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Pegawai) TableName() string {
	return "pegawai"
}
