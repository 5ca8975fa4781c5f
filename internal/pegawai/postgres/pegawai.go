package postgres

import (
	pegawaiDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/pegawai"
	recordPostgres "github.com/frahmantamala/tunjangan-pas/internal/core/record/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/pegawai"
	"gorm.io/gorm"
)

type PegawaiRepository = recordPostgres.Repository[pegawai.Pegawai, pegawaiDatamodel.Pegawai]

func NewPegawaiRepository(db *gorm.DB) *PegawaiRepository {
	return recordPostgres.NewRepository(db, recordPostgres.Mapper[pegawai.Pegawai, pegawaiDatamodel.Pegawai]{
		ToModel:   pegawai.ToDataModel,
		FromModel: pegawai.FromDataModel,
	})
}
