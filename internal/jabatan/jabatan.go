// Package jabatan is the job position master data screen.
package jabatan

import (
	"strconv"

	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	jabatanDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/jabatan"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	"github.com/frahmantamala/tunjangan-pas/pkg/rupiah"
)

const Screen = "jabatan"

type Jabatan struct {
	ID             string        `json:"id"`
	Kode           string        `json:"kode" validate:"notblank"`
	Nama           string        `json:"nama" validate:"notblank"`
	KelasJabatan   int           `json:"kelas_jabatan" validate:"gte=0,lte=17"`
	NilaiTunjangan rupiah.Amount `json:"nilai_tunjangan" validate:"gte=0"`
	Keterangan     string        `json:"keterangan"`
}

func (j Jabatan) RecordID() string { return j.ID }

func (j Jabatan) WithRecordID(id string) Jabatan {
	j.ID = id
	return j
}

func Label(j Jabatan) string {
	return j.Kode + " " + j.Nama
}

func Columns() []tabular.Column[Jabatan] {
	return []tabular.Column[Jabatan]{
		{Key: "kode", Label: "Kode", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(j Jabatan) string { return j.Kode }},
		{Key: "nama", Label: "Nama Jabatan", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(j Jabatan) string { return j.Nama }},
		{
			Key: "kelas_jabatan", Label: "Kelas", Kind: tabular.KindNumeric, Sortable: true,
			Text:   func(j Jabatan) string { return strconv.Itoa(j.KelasJabatan) },
			Number: func(j Jabatan) float64 { return float64(j.KelasJabatan) },
		},
		{
			Key: "nilai_tunjangan", Label: "Nilai Tunjangan", Kind: tabular.KindNumeric, Searchable: true, Sortable: true,
			Text:   func(j Jabatan) string { return rupiah.Format(j.NilaiTunjangan.Int64()) },
			Number: func(j Jabatan) float64 { return float64(j.NilaiTunjangan) },
		},
		{Key: "keterangan", Label: "Keterangan", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(j Jabatan) string { return j.Keterangan }},
	}
}

func Hooks() record.Hooks[Jabatan] {
	return record.Hooks[Jabatan]{
		Validate: func(j Jabatan) error { return validation.Struct(j) },
	}
}

func ToDataModel(j Jabatan) *jabatanDatamodel.Jabatan {
	return &jabatanDatamodel.Jabatan{
		ID:             j.ID,
		Kode:           j.Kode,
		Nama:           j.Nama,
		KelasJabatan:   j.KelasJabatan,
		NilaiTunjangan: j.NilaiTunjangan.Int64(),
		Keterangan:     j.Keterangan,
	}
}

func FromDataModel(m *jabatanDatamodel.Jabatan) Jabatan {
	return Jabatan{
		ID:             m.ID,
		Kode:           m.Kode,
		Nama:           m.Nama,
		KelasJabatan:   m.KelasJabatan,
		NilaiTunjangan: rupiah.Amount(m.NilaiTunjangan),
		Keterangan:     m.Keterangan,
	}
}

func Seed() []Jabatan {
	rows := []Jabatan{
		{Kode: "JPT-01", Nama: "Kepala Lembaga Pemasyarakatan", KelasJabatan: 12, NilaiTunjangan: 3500000, Keterangan: "Jabatan administrator"},
		{Kode: "JPT-02", Nama: "Kepala Rumah Tahanan", KelasJabatan: 12, NilaiTunjangan: 3500000, Keterangan: "Jabatan administrator"},
		{Kode: "JF-01", Nama: "Pembimbing Kemasyarakatan", KelasJabatan: 8, NilaiTunjangan: 1650000, Keterangan: "Jabatan fungsional"},
		{Kode: "JF-02", Nama: "Analis Kepegawaian", KelasJabatan: 8, NilaiTunjangan: 1800000, Keterangan: "Jabatan fungsional"},
		{Kode: "JP-01", Nama: "Penjaga Tahanan", KelasJabatan: 6, NilaiTunjangan: 1500000, Keterangan: "Jabatan pelaksana"},
		{Kode: "JP-02", Nama: "Pengelola Keuangan", KelasJabatan: 6, NilaiTunjangan: 1200000, Keterangan: "Jabatan pelaksana"},
		{Kode: "JPW-01", Nama: "Kepala Seksi Keamanan", KelasJabatan: 9, NilaiTunjangan: 2100000, Keterangan: "Jabatan pengawas"},
	}
	for i := range rows {
		rows[i].ID = record.NewID()
	}
	return rows
}
