package postgres

import (
	notifikasiDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/notifikasi"
	recordPostgres "github.com/frahmantamala/tunjangan-pas/internal/core/record/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/notifikasi"
	"gorm.io/gorm"
)

type NotifikasiRepository = recordPostgres.Repository[notifikasi.Notifikasi, notifikasiDatamodel.Notifikasi]

func NewNotifikasiRepository(db *gorm.DB) *NotifikasiRepository {
	return recordPostgres.NewRepository(db, recordPostgres.Mapper[notifikasi.Notifikasi, notifikasiDatamodel.Notifikasi]{
		ToModel:   notifikasi.ToDataModel,
		FromModel: notifikasi.FromDataModel,
	})
}
