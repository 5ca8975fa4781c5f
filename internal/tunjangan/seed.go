package tunjangan

import "github.com/frahmantamala/tunjangan-pas/internal/core/record"

// Seed returns the mock ledger a fresh memory store starts with. Totals are
// derived, never typed in.
func Seed() []Tunjangan {
	rows := []Tunjangan{
		{NIP: "198503122010011001", Nama: "Ahmad Fauzi", Bulan: 1, Tahun: 2025, GajiPokok: 5200000, Tunjangan: 3500000, Potongan: 350000, Status: StatusDibayar},
		{NIP: "199001152015032002", Nama: "Siti Rahmawati", Bulan: 1, Tahun: 2025, GajiPokok: 4100000, Tunjangan: 1800000, Potongan: 200000, Status: StatusDibayar},
		{NIP: "198712082009121003", Nama: "Budi Santoso", Bulan: 1, Tahun: 2025, GajiPokok: 3300000, Tunjangan: 1500000, Potongan: 150000, Status: StatusDibayar},
		{NIP: "199205212018012004", Nama: "Dewi Lestari", Bulan: 2, Tahun: 2025, GajiPokok: 3900000, Tunjangan: 1650000, Potongan: 180000, Status: StatusDibayar},
		{NIP: "198503122010011001", Nama: "Ahmad Fauzi", Bulan: 2, Tahun: 2025, GajiPokok: 5200000, Tunjangan: 3500000, Potongan: 350000, Status: StatusDibayar},
		{NIP: "199403172019032006", Nama: "Fitri Handayani", Bulan: 2, Tahun: 2025, GajiPokok: 3100000, Tunjangan: 1200000, Potongan: 100000, Status: StatusDitunda, Keterangan: "Menunggu SK kenaikan golongan"},
		{NIP: "198609092011011007", Nama: "Gunawan Wibisono", Bulan: 3, Tahun: 2025, GajiPokok: 3200000, Tunjangan: 1500000, Potongan: 125000, Status: StatusDiproses},
		{NIP: "199107252016042008", Nama: "Hana Pertiwi", Bulan: 3, Tahun: 2025, GajiPokok: 3800000, Tunjangan: 1800000, Potongan: 0, Status: StatusDiproses},
		{NIP: "198802142012021009", Nama: "Irfan Maulana", Bulan: 3, Tahun: 2025, GajiPokok: 5000000, Tunjangan: 1500000, Potongan: 250000, Status: StatusDiproses},
		{NIP: "199509302020012010", Nama: "Julia Kartika", Bulan: 3, Tahun: 2025, GajiPokok: 3600000, Tunjangan: 1650000, Potongan: 90000, Status: StatusDiproses},
		{NIP: "199612112021022012", Nama: "Larasati Putri", Bulan: 3, Tahun: 2025, GajiPokok: 3000000, Tunjangan: 1200000, Potongan: 60000, Status: StatusDitunda},
	}
	for i := range rows {
		rows[i] = Derive(rows[i]).WithRecordID(record.NewID())
	}
	return rows
}
