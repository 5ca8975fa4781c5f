package postgres

import (
	"context"
	"fmt"

	tunjanganDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/tunjangan"
	recordPostgres "github.com/frahmantamala/tunjangan-pas/internal/core/record/postgres"
	"github.com/frahmantamala/tunjangan-pas/internal/tunjangan"
	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

type TunjanganRepository = recordPostgres.Repository[tunjangan.Tunjangan, tunjanganDatamodel.Tunjangan]

func NewTunjanganRepository(db *gorm.DB) *TunjanganRepository {
	return recordPostgres.NewRepository(db, recordPostgres.Mapper[tunjangan.Tunjangan, tunjanganDatamodel.Tunjangan]{
		ToModel:   tunjangan.ToDataModel,
		FromModel: tunjangan.FromDataModel,
	})
}

const rekapQuery = `
SELECT tahun, bulan, COUNT(*) AS jumlah, COALESCE(SUM(total), 0) AS total
FROM tunjangan
GROUP BY tahun, bulan
ORDER BY tahun, bulan`

// RekapRepository runs the period recap as a single aggregate query.
type RekapRepository struct {
	db *sqlx.DB
}

func NewRekapRepository(db *sqlx.DB) tunjangan.RekapAPI {
	return &RekapRepository{db: db}
}

func (r *RekapRepository) Rekap(ctx context.Context) ([]tunjanganDatamodel.Rekap, error) {
	rows := make([]tunjanganDatamodel.Rekap, 0)
	if err := r.db.SelectContext(ctx, &rows, rekapQuery); err != nil {
		return nil, fmt.Errorf("rekap tunjangan: %w", err)
	}
	return rows, nil
}
