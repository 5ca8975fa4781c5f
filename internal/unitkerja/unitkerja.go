// Package unitkerja is the organisational unit screen.
package unitkerja

import (
	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	unitkerjaDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/unitkerja"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
)

const Screen = "unitkerja"

type UnitKerja struct {
	ID     string `json:"id"`
	Kode   string `json:"kode" validate:"notblank"`
	Nama   string `json:"nama" validate:"notblank"`
	Kepala string `json:"kepala"`
	Lokasi string `json:"lokasi"`
	Status string `json:"status" validate:"oneof=Aktif Nonaktif"`
}

func (u UnitKerja) RecordID() string { return u.ID }

func (u UnitKerja) WithRecordID(id string) UnitKerja {
	u.ID = id
	return u
}

func Label(u UnitKerja) string {
	return u.Nama
}

func Columns() []tabular.Column[UnitKerja] {
	col := func(key, label string, get func(UnitKerja) string) tabular.Column[UnitKerja] {
		return tabular.Column[UnitKerja]{Key: key, Label: label, Kind: tabular.KindText, Searchable: true, Sortable: true, Text: get}
	}
	return []tabular.Column[UnitKerja]{
		col("kode", "Kode", func(u UnitKerja) string { return u.Kode }),
		col("nama", "Nama Unit", func(u UnitKerja) string { return u.Nama }),
		col("kepala", "Kepala Unit", func(u UnitKerja) string { return u.Kepala }),
		col("lokasi", "Lokasi", func(u UnitKerja) string { return u.Lokasi }),
		col("status", "Status", func(u UnitKerja) string { return u.Status }),
	}
}

func Hooks() record.Hooks[UnitKerja] {
	return record.Hooks[UnitKerja]{
		Blank:    func() UnitKerja { return UnitKerja{Status: "Aktif"} },
		Validate: func(u UnitKerja) error { return validation.Struct(u) },
	}
}

func ToDataModel(u UnitKerja) *unitkerjaDatamodel.UnitKerja {
	return &unitkerjaDatamodel.UnitKerja{
		ID:     u.ID,
		Kode:   u.Kode,
		Nama:   u.Nama,
		Kepala: u.Kepala,
		Lokasi: u.Lokasi,
		Status: u.Status,
	}
}

func FromDataModel(m *unitkerjaDatamodel.UnitKerja) UnitKerja {
	return UnitKerja{
		ID:     m.ID,
		Kode:   m.Kode,
		Nama:   m.Nama,
		Kepala: m.Kepala,
		Lokasi: m.Lokasi,
		Status: m.Status,
	}
}

func Seed() []UnitKerja {
	rows := []UnitKerja{
		{Kode: "UK-001", Nama: "Sekretariat Ditjen PAS", Kepala: "Dr. Hendra Gunawan", Lokasi: "Jakarta Selatan", Status: "Aktif"},
		{Kode: "UK-002", Nama: "Lapas Kelas I Cipinang", Kepala: "Ahmad Fauzi", Lokasi: "Jakarta Timur", Status: "Aktif"},
		{Kode: "UK-003", Nama: "Rutan Kelas I Salemba", Kepala: "Irfan Maulana", Lokasi: "Jakarta Pusat", Status: "Aktif"},
		{Kode: "UK-004", Nama: "Bapas Kelas I Jakarta Pusat", Kepala: "Rina Marlina", Lokasi: "Jakarta Pusat", Status: "Aktif"},
		{Kode: "UK-005", Nama: "Lapas Kelas IIA Bogor", Kepala: "Surya Dharma", Lokasi: "Bogor", Status: "Aktif"},
		{Kode: "UK-006", Nama: "Kanwil DKI Jakarta", Kepala: "Wahyu Nugroho", Lokasi: "Jakarta Timur", Status: "Aktif"},
		{Kode: "UK-007", Nama: "Rutan Kelas IIB Depok", Kepala: "", Lokasi: "Depok", Status: "Nonaktif"},
	}
	for i := range rows {
		rows[i].ID = record.NewID()
	}
	return rows
}
