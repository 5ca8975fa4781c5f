package tabular_test

import (
	"fmt"

	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	"github.com/frahmantamala/tunjangan-pas/pkg/rupiah"
	"golang.org/x/text/language"
)

type row struct {
	ID    string
	Nama  string
	Unit  string
	Gaji  int64
	Extra *string
}

func rowConfig() tabular.Config[row] {
	return tabular.Config[row]{
		PageSize: 5,
		Locale:   language.Indonesian,
		Columns: []tabular.Column[row]{
			{Key: "id", Kind: tabular.KindText, Sortable: true, Text: func(r row) string { return r.ID }},
			{Key: "nama", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(r row) string { return r.Nama }},
			{Key: "unit", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(r row) string { return r.Unit }},
			{
				Key: "gaji", Kind: tabular.KindNumeric, Searchable: true, Sortable: true,
				Text:   func(r row) string { return rupiah.Format(r.Gaji) },
				Number: func(r row) float64 { return float64(r.Gaji) },
			},
			{
				Key: "extra", Kind: tabular.KindText, Sortable: true,
				Text: func(r row) string {
					if r.Extra == nil {
						return ""
					}
					return *r.Extra
				},
			},
		},
	}
}

func seedRows(n int) []row {
	rows := make([]row, n)
	for i := range rows {
		rows[i] = row{
			ID:   fmt.Sprintf("r%02d", i+1),
			Nama: fmt.Sprintf("Pegawai %02d", i+1),
			Unit: "Sekretariat",
			Gaji: int64(1000000 * (i + 1)),
		}
	}
	return rows
}

func ids(rows []row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
