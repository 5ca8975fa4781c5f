package postgres

import (
	unitkerjaDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/unitkerja"
	recordPostgres "github.com/frahmantamala/tunjangan-pas/internal/core/record/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/unitkerja"
	"gorm.io/gorm"
)

type UnitKerjaRepository = recordPostgres.Repository[unitkerja.UnitKerja, unitkerjaDatamodel.UnitKerja]

func NewUnitKerjaRepository(db *gorm.DB) *UnitKerjaRepository {
	return recordPostgres.NewRepository(db, recordPostgres.Mapper[unitkerja.UnitKerja, unitkerjaDatamodel.UnitKerja]{
		ToModel:   unitkerja.ToDataModel,
		FromModel: unitkerja.FromDataModel,
	})
}
