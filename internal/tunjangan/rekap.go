package tunjangan

import (
	"cmp"
	"context"
	"slices"

	tunjanganDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/tunjangan"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
)

// RekapAPI reports, per (tahun, bulan), the number of ledger entries and the
// sum of their totals, ordered by period.
type RekapAPI interface {
	Rekap(ctx context.Context) ([]tunjanganDatamodel.Rekap, error)
}

// MemoryRekap computes the recap from any record source.
type MemoryRekap struct {
	repo record.Repository[Tunjangan]
}

func NewMemoryRekap(repo record.Repository[Tunjangan]) *MemoryRekap {
	return &MemoryRekap{repo: repo}
}

func (m *MemoryRekap) Rekap(ctx context.Context) ([]tunjanganDatamodel.Rekap, error) {
	items, err := m.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	type periode struct{ tahun, bulan int }
	index := make(map[periode]int)
	out := make([]tunjanganDatamodel.Rekap, 0)
	for _, t := range items {
		key := periode{t.Tahun, t.Bulan}
		i, ok := index[key]
		if !ok {
			i = len(out)
			index[key] = i
			out = append(out, tunjanganDatamodel.Rekap{Tahun: t.Tahun, Bulan: t.Bulan})
		}
		out[i].Jumlah++
		out[i].Total += t.Total.Int64()
	}

	slices.SortFunc(out, func(a, b tunjanganDatamodel.Rekap) int {
		if c := cmp.Compare(a.Tahun, b.Tahun); c != 0 {
			return c
		}
		return cmp.Compare(a.Bulan, b.Bulan)
	})
	return out, nil
}

// TotalDibayar sums the totals of paid entries.
func TotalDibayar(items []Tunjangan) int64 {
	var sum int64
	for _, t := range items {
		if t.Status == StatusDibayar {
			sum += t.Total.Int64()
		}
	}
	return sum
}
