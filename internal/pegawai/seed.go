package pegawai

import "github.com/frahmantamala/tunjangan-pas/internal/core/record"

// Seed returns the mock employees a fresh memory store starts with.
func Seed() []Pegawai {
	rows := []Pegawai{
		{NIP: "198503122010011001", Nama: "Ahmad Fauzi", Jabatan: "Kepala Lembaga Pemasyarakatan", UnitKerja: "Lapas Kelas I Cipinang", Golongan: "IV/a", Email: "ahmad.fauzi@kemenkumham.go.id", Telepon: "081234567801", Status: StatusAktif},
		{NIP: "199001152015032002", Nama: "Siti Rahmawati", Jabatan: "Analis Kepegawaian", UnitKerja: "Sekretariat Ditjen PAS", Golongan: "III/b", Email: "siti.rahmawati@kemenkumham.go.id", Telepon: "081234567802", Status: StatusAktif},
		{NIP: "198712082009121003", Nama: "Budi Santoso", Jabatan: "Penjaga Tahanan", UnitKerja: "Rutan Kelas I Salemba", Golongan: "II/c", Email: "budi.santoso@kemenkumham.go.id", Telepon: "081234567803", Status: StatusAktif},
		{NIP: "199205212018012004", Nama: "Dewi Lestari", Jabatan: "Pembimbing Kemasyarakatan", UnitKerja: "Bapas Kelas I Jakarta Pusat", Golongan: "III/a", Email: "dewi.lestari@kemenkumham.go.id", Telepon: "081234567804", Status: StatusAktif},
		{NIP: "198011302005011005", Nama: "Eko Prasetyo", Jabatan: "Kepala Seksi Keamanan", UnitKerja: "Lapas Kelas IIA Bogor", Golongan: "III/d", Email: "eko.prasetyo@kemenkumham.go.id", Telepon: "081234567805", Status: StatusNonaktif},
		{NIP: "199403172019032006", Nama: "Fitri Handayani", Jabatan: "Pengelola Keuangan", UnitKerja: "Sekretariat Ditjen PAS", Golongan: "II/d", Email: "fitri.handayani@kemenkumham.go.id", Telepon: "081234567806", Status: StatusAktif},
		{NIP: "198609092011011007", Nama: "Gunawan Wibisono", Jabatan: "Penjaga Tahanan", UnitKerja: "Lapas Kelas I Cipinang", Golongan: "II/b", Email: "gunawan.w@kemenkumham.go.id", Telepon: "081234567807", Status: StatusAktif},
		{NIP: "199107252016042008", Nama: "Hana Pertiwi", Jabatan: "Analis Kepegawaian", UnitKerja: "Kanwil DKI Jakarta", Golongan: "III/a", Email: "hana.pertiwi@kemenkumham.go.id", Telepon: "081234567808", Status: StatusAktif},
		{NIP: "198802142012021009", Nama: "Irfan Maulana", Jabatan: "Kepala Rumah Tahanan", UnitKerja: "Rutan Kelas I Salemba", Golongan: "IV/a", Email: "irfan.maulana@kemenkumham.go.id", Telepon: "081234567809", Status: StatusAktif},
		{NIP: "199509302020012010", Nama: "Julia Kartika", Jabatan: "Pembimbing Kemasyarakatan", UnitKerja: "Bapas Kelas I Jakarta Pusat", Golongan: "III/a", Email: "julia.kartika@kemenkumham.go.id", Telepon: "081234567810", Status: StatusAktif},
		{NIP: "198304052008011011", Nama: "Kurniawan Saputra", Jabatan: "Kepala Seksi Pembinaan", UnitKerja: "Lapas Kelas IIA Bogor", Golongan: "III/d", Email: "kurniawan.s@kemenkumham.go.id", Telepon: "081234567811", Status: StatusNonaktif},
		{NIP: "199612112021022012", Nama: "Larasati Putri", Jabatan: "Pengelola Keuangan", UnitKerja: "Kanwil DKI Jakarta", Golongan: "II/c", Email: "larasati.putri@kemenkumham.go.id", Telepon: "081234567812", Status: StatusAktif},
	}
	for i := range rows {
		rows[i].ID = record.NewID()
	}
	return rows
}
