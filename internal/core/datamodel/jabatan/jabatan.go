package jabatan

import "time"

type Jabatan struct {
	ID             string    `gorm:"primaryKey;type:varchar(36)"`
	Kode           string    `gorm:"column:kode;not null"`
	Nama           string    `gorm:"column:nama;not null"`
	KelasJabatan   int       `gorm:"column:kelas_jabatan"`
	NilaiTunjangan int64     `gorm:"column:nilai_tunjangan"`
	Keterangan     string    `gorm:"column:keterangan"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt      time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Jabatan) TableName() string {
	return "jabatan"
}
