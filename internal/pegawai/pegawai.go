// Package pegawai is the employee list screen.
package pegawai

import (
	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	pegawaiDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/pegawai"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
)

const Screen = "pegawai"

const (
	StatusAktif    = "Aktif"
	StatusNonaktif = "Nonaktif"
)

type Pegawai struct {
	ID        string `json:"id"`
	NIP       string `json:"nip" validate:"notblank"`
	Nama      string `json:"nama" validate:"notblank"`
	Jabatan   string `json:"jabatan"`
	UnitKerja string `json:"unit_kerja"`
	Golongan  string `json:"golongan"`
	Email     string `json:"email" validate:"omitempty,email"`
	Telepon   string `json:"telepon"`
	Status    string `json:"status" validate:"oneof=Aktif Nonaktif"`
}

func (p Pegawai) RecordID() string { return p.ID }

func (p Pegawai) WithRecordID(id string) Pegawai {
	p.ID = id
	return p
}

func (p Pegawai) IsAktif() bool {
	return p.Status == StatusAktif
}

func Label(p Pegawai) string {
	return p.Nama + " (" + p.NIP + ")"
}

func text(key, label string, searchable bool, get func(Pegawai) string) tabular.Column[Pegawai] {
	return tabular.Column[Pegawai]{
		Key: key, Label: label, Kind: tabular.KindText,
		Searchable: searchable, Sortable: true, Text: get,
	}
}

// Columns is the table of the employee screen. Search covers NIP, name,
// position and unit.
func Columns() []tabular.Column[Pegawai] {
	return []tabular.Column[Pegawai]{
		text("nip", "NIP", true, func(p Pegawai) string { return p.NIP }),
		text("nama", "Nama", true, func(p Pegawai) string { return p.Nama }),
		text("jabatan", "Jabatan", true, func(p Pegawai) string { return p.Jabatan }),
		text("unit_kerja", "Unit Kerja", true, func(p Pegawai) string { return p.UnitKerja }),
		text("golongan", "Golongan", false, func(p Pegawai) string { return p.Golongan }),
		text("email", "Email", false, func(p Pegawai) string { return p.Email }),
		text("status", "Status", false, func(p Pegawai) string { return p.Status }),
	}
}

func Hooks() record.Hooks[Pegawai] {
	return record.Hooks[Pegawai]{
		Blank: func() Pegawai {
			return Pegawai{Status: StatusAktif}
		},
		Validate: func(p Pegawai) error {
			return validation.Struct(p)
		},
	}
}

func ToDataModel(p Pegawai) *pegawaiDatamodel.Pegawai {
	return &pegawaiDatamodel.Pegawai{
		ID:        p.ID,
		NIP:       p.NIP,
		Nama:      p.Nama,
		Jabatan:   p.Jabatan,
		UnitKerja: p.UnitKerja,
		Golongan:  p.Golongan,
		Email:     p.Email,
		Telepon:   p.Telepon,
		Status:    p.Status,
	}
}

func FromDataModel(m *pegawaiDatamodel.Pegawai) Pegawai {
	return Pegawai{
		ID:        m.ID,
		NIP:       m.NIP,
		Nama:      m.Nama,
		Jabatan:   m.Jabatan,
		UnitKerja: m.UnitKerja,
		Golongan:  m.Golongan,
		Email:     m.Email,
		Telepon:   m.Telepon,
		Status:    m.Status,
	}
}
