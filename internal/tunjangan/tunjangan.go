// Package tunjangan is the benefit payment ledger (TUPAS). Each entry stores
// its total, derived at save time from salary, allowance and deduction.
package tunjangan

import (
	"strconv"
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	tunjanganDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/tunjangan"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	"github.com/frahmantamala/tunjangan-pas/pkg/rupiah"
)

const Screen = "tunjangan"

const (
	StatusDiproses = "Diproses"
	StatusDibayar  = "Dibayar"
	StatusDitunda  = "Ditunda"
)

type Tunjangan struct {
	ID         string        `json:"id"`
	NIP        string        `json:"nip" validate:"notblank"`
	Nama       string        `json:"nama" validate:"notblank"`
	Bulan      int           `json:"bulan" validate:"gte=1,lte=12"`
	Tahun      int           `json:"tahun" validate:"gte=2000,lte=2100"`
	GajiPokok  rupiah.Amount `json:"gaji_pokok"`
	Tunjangan  rupiah.Amount `json:"tunjangan"`
	Potongan   rupiah.Amount `json:"potongan"`
	Total      rupiah.Amount `json:"total"`
	Status     string        `json:"status" validate:"oneof=Diproses Dibayar Ditunda"`
	Keterangan string        `json:"keterangan"`
}

func (t Tunjangan) RecordID() string { return t.ID }

func (t Tunjangan) WithRecordID(id string) Tunjangan {
	t.ID = id
	return t
}

// Periode renders the payment period, e.g. "Maret 2025".
func (t Tunjangan) Periode() string {
	if t.Bulan < 1 || t.Bulan > 12 {
		return strconv.Itoa(t.Tahun)
	}
	return namaBulan[t.Bulan-1] + " " + strconv.Itoa(t.Tahun)
}

var namaBulan = [12]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// HitungTotal is the derived field: gaji pokok + tunjangan - potongan.
// Blank or non-numeric inputs were already coerced to 0 when decoded.
func HitungTotal(gajiPokok, tunjangan, potongan rupiah.Amount) rupiah.Amount {
	return gajiPokok + tunjangan - potongan
}

// Derive recomputes Total from its inputs. Any Total supplied by the caller
// is discarded.
func Derive(t Tunjangan) Tunjangan {
	t.Total = HitungTotal(t.GajiPokok, t.Tunjangan, t.Potongan)
	return t
}

func Label(t Tunjangan) string {
	return t.Nama + " " + t.Periode()
}

func amount(key, label string, searchable bool, get func(Tunjangan) rupiah.Amount) tabular.Column[Tunjangan] {
	return tabular.Column[Tunjangan]{
		Key: key, Label: label, Kind: tabular.KindNumeric,
		Searchable: searchable, Sortable: true,
		Text:   func(t Tunjangan) string { return rupiah.Format(get(t).Int64()) },
		Number: func(t Tunjangan) float64 { return float64(get(t)) },
	}
}

func integer(key, label string, get func(Tunjangan) int) tabular.Column[Tunjangan] {
	return tabular.Column[Tunjangan]{
		Key: key, Label: label, Kind: tabular.KindNumeric, Sortable: true,
		Text:   func(t Tunjangan) string { return strconv.Itoa(get(t)) },
		Number: func(t Tunjangan) float64 { return float64(get(t)) },
	}
}

// Columns is the ledger table. Amounts are searched as displayed, so
// "5.000.000" finds a salary of 5000000.
func Columns() []tabular.Column[Tunjangan] {
	return []tabular.Column[Tunjangan]{
		{Key: "nip", Label: "NIP", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(t Tunjangan) string { return t.NIP }},
		{Key: "nama", Label: "Nama", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(t Tunjangan) string { return t.Nama }},
		integer("bulan", "Bulan", func(t Tunjangan) int { return t.Bulan }),
		integer("tahun", "Tahun", func(t Tunjangan) int { return t.Tahun }),
		amount("gaji_pokok", "Gaji Pokok", true, func(t Tunjangan) rupiah.Amount { return t.GajiPokok }),
		amount("tunjangan", "Tunjangan", false, func(t Tunjangan) rupiah.Amount { return t.Tunjangan }),
		amount("potongan", "Potongan", false, func(t Tunjangan) rupiah.Amount { return t.Potongan }),
		amount("total", "Total", true, func(t Tunjangan) rupiah.Amount { return t.Total }),
		{Key: "status", Label: "Status", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(t Tunjangan) string { return t.Status }},
	}
}

// Hooks wires the ledger into the CRUD workflow. now supplies the default
// period of a new entry.
func Hooks(now func() time.Time) record.Hooks[Tunjangan] {
	if now == nil {
		now = time.Now
	}
	return record.Hooks[Tunjangan]{
		Blank: func() Tunjangan {
			t := now()
			return Tunjangan{Bulan: int(t.Month()), Tahun: t.Year(), Status: StatusDiproses}
		},
		Validate: func(t Tunjangan) error {
			return validation.Struct(t)
		},
		Derive: Derive,
	}
}

func ToDataModel(t Tunjangan) *tunjanganDatamodel.Tunjangan {
	return &tunjanganDatamodel.Tunjangan{
		ID:         t.ID,
		NIP:        t.NIP,
		Nama:       t.Nama,
		Bulan:      t.Bulan,
		Tahun:      t.Tahun,
		GajiPokok:  t.GajiPokok.Int64(),
		Tunjangan:  t.Tunjangan.Int64(),
		Potongan:   t.Potongan.Int64(),
		Total:      t.Total.Int64(),
		Status:     t.Status,
		Keterangan: t.Keterangan,
	}
}

func FromDataModel(m *tunjanganDatamodel.Tunjangan) Tunjangan {
	return Tunjangan{
		ID:         m.ID,
		NIP:        m.NIP,
		Nama:       m.Nama,
		Bulan:      m.Bulan,
		Tahun:      m.Tahun,
		GajiPokok:  rupiah.Amount(m.GajiPokok),
		Tunjangan:  rupiah.Amount(m.Tunjangan),
		Potongan:   rupiah.Amount(m.Potongan),
		Total:      rupiah.Amount(m.Total),
		Status:     m.Status,
		Keterangan: m.Keterangan,
	}
}
