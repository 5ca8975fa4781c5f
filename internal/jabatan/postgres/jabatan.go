package postgres

import (
	jabatanDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/jabatan"
	recordPostgres "github.com/frahmantamala/tunjangan-pas/internal/core/record/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/jabatan"
	"gorm.io/gorm"
)

type JabatanRepository = recordPostgres.Repository[jabatan.Jabatan, jabatanDatamodel.Jabatan]

func NewJabatanRepository(db *gorm.DB) *JabatanRepository {
	return recordPostgres.NewRepository(db, recordPostgres.Mapper[jabatan.Jabatan, jabatanDatamodel.Jabatan]{
		ToModel:   jabatan.ToDataModel,
		FromModel: jabatan.FromDataModel,
	})
}
