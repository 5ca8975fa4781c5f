// Package notifikasi is the notification feed. Entries are written by hand or
// generated from record mutation events, and carry a read flag.
package notifikasi

import (
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	notifikasiDatamodel "github.com/frahmantamala/tunjangan-pas/internal/core/datamodel/notifikasi"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
)

const Screen = "notifikasi"

const (
	TipeInfo       = "info"
	TipeSukses     = "sukses"
	TipePeringatan = "peringatan"
)

const displayTime = "02/01/2006 15:04"

type Notifikasi struct {
	ID         string    `json:"id"`
	Judul      string    `json:"judul" validate:"notblank"`
	Pesan      string    `json:"pesan"`
	Tipe       string    `json:"tipe" validate:"oneof=info sukses peringatan"`
	Dibaca     bool      `json:"dibaca"`
	DibuatPada time.Time `json:"dibuat_pada"`
}

func (n Notifikasi) RecordID() string { return n.ID }

func (n Notifikasi) WithRecordID(id string) Notifikasi {
	n.ID = id
	return n
}

func Label(n Notifikasi) string {
	return n.Judul
}

func statusBaca(n Notifikasi) string {
	if n.Dibaca {
		return "Sudah dibaca"
	}
	return "Belum dibaca"
}

func Columns() []tabular.Column[Notifikasi] {
	return []tabular.Column[Notifikasi]{
		{Key: "judul", Label: "Judul", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(n Notifikasi) string { return n.Judul }},
		{Key: "pesan", Label: "Pesan", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(n Notifikasi) string { return n.Pesan }},
		{Key: "tipe", Label: "Tipe", Kind: tabular.KindText, Searchable: true, Sortable: true, Text: func(n Notifikasi) string { return n.Tipe }},
		{Key: "dibaca", Label: "Status", Kind: tabular.KindText, Sortable: true, Text: statusBaca},
		{
			Key: "dibuat_pada", Label: "Waktu", Kind: tabular.KindNumeric, Sortable: true,
			Text:   func(n Notifikasi) string { return n.DibuatPada.Format(displayTime) },
			Number: func(n Notifikasi) float64 { return float64(n.DibuatPada.Unix()) },
		},
	}
}

func Hooks(now func() time.Time) record.Hooks[Notifikasi] {
	if now == nil {
		now = time.Now
	}
	return record.Hooks[Notifikasi]{
		Blank: func() Notifikasi {
			return Notifikasi{Tipe: TipeInfo, DibuatPada: now()}
		},
		Validate: func(n Notifikasi) error { return validation.Struct(n) },
		Derive: func(n Notifikasi) Notifikasi {
			if n.DibuatPada.IsZero() {
				n.DibuatPada = now()
			}
			return n
		},
	}
}

func ToDataModel(n Notifikasi) *notifikasiDatamodel.Notifikasi {
	return &notifikasiDatamodel.Notifikasi{
		ID:         n.ID,
		Judul:      n.Judul,
		Pesan:      n.Pesan,
		Tipe:       n.Tipe,
		Dibaca:     n.Dibaca,
		DibuatPada: n.DibuatPada,
	}
}

func FromDataModel(m *notifikasiDatamodel.Notifikasi) Notifikasi {
	return Notifikasi{
		ID:         m.ID,
		Judul:      m.Judul,
		Pesan:      m.Pesan,
		Tipe:       m.Tipe,
		Dibaca:     m.Dibaca,
		DibuatPada: m.DibuatPada,
	}
}

func Seed(now time.Time) []Notifikasi {
	rows := []Notifikasi{
		{Judul: "Tunjangan Januari 2025 telah dibayarkan", Pesan: "Pembayaran tunjangan periode Januari 2025 untuk 3 pegawai telah selesai.", Tipe: TipeSukses, Dibaca: true, DibuatPada: now.Add(-72 * time.Hour)},
		{Judul: "Tunjangan Februari 2025 ditunda", Pesan: "Pembayaran tunjangan Fitri Handayani ditunda menunggu SK kenaikan golongan.", Tipe: TipePeringatan, DibuatPada: now.Add(-48 * time.Hour)},
		{Judul: "Data unit kerja diperbarui", Pesan: "Rutan Kelas IIB Depok dinonaktifkan.", Tipe: TipeInfo, DibuatPada: now.Add(-24 * time.Hour)},
		{Judul: "Verifikasi tunjangan Maret 2025", Pesan: "5 pengajuan tunjangan periode Maret 2025 menunggu verifikasi.", Tipe: TipeInfo, DibuatPada: now.Add(-2 * time.Hour)},
	}
	for i := range rows {
		rows[i].ID = record.NewID()
	}
	return rows
}
