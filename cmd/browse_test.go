package cmd

import (
	"bytes"
	"context"
	"strings"

	"github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/pegawai"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("browser", func() {
	var (
		ctx context.Context
		app *App
		out *bytes.Buffer
	)

	BeforeEach(func() {
		ctx = internal.ContextWithUser(context.Background(), &internal.CurrentUser{ID: "cli", Nama: "Operator CLI", Role: "admin"})
		var err error
		app, err = newApp(ctx, testConfig(), discardLogger())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(app.Close)
		out = &bytes.Buffer{}
	})

	run := func(input string) string {
		s, err := app.Registry.Get(pegawai.Screen)
		Expect(err).NotTo(HaveOccurred())
		Expect(newBrowser(s, strings.NewReader(input), out).Run(ctx)).To(Succeed())
		return out.String()
	}

	It("renders the first page with its position", func() {
		output := run("keluar\n")
		Expect(output).To(ContainSubstring("Data Pegawai"))
		Expect(output).To(ContainSubstring("NIP"))
		Expect(output).To(ContainSubstring("Menampilkan 1-5 dari 12 data"))
		Expect(output).To(ContainSubstring("next ›"))
	})

	It("moves between pages", func() {
		output := run("next\nhal 3\nprev\nkeluar\n")
		Expect(output).To(ContainSubstring("Menampilkan 6-10 dari 12 data"))
		Expect(output).To(ContainSubstring("Menampilkan 11-12 dari 12 data"))
		Expect(output).To(ContainSubstring("‹ prev"))
	})

	It("filters and sorts", func() {
		output := run("cari cipinang\nurut nama desc\nkeluar\n")
		Expect(output).To(ContainSubstring("Pencarian: cipinang"))
		Expect(output).To(ContainSubstring("Menampilkan 1-2 dari 2 data"))
		Expect(output).To(ContainSubstring("Nama ▼"))
		Expect(strings.LastIndex(output, "Gunawan Wibisono")).To(BeNumerically("<", strings.LastIndex(output, "Ahmad Fauzi")))
	})

	It("shows an empty result", func() {
		output := run("cari tidak-ada-yang-cocok\nkeluar\n")
		Expect(output).To(ContainSubstring("Tidak ada data"))
	})

	It("reports unknown commands and bad arguments", func() {
		output := run("lompat\nhal dua\nurut\nurut gaji\nkeluar\n")
		Expect(output).To(ContainSubstring("perintah tidak dikenal: lompat"))
		Expect(output).To(ContainSubstring("hal membutuhkan nomor halaman"))
		Expect(output).To(ContainSubstring("urut membutuhkan nama kolom"))
	})

	It("shows one record", func() {
		rows, err := app.Pegawai.List(ctx)
		Expect(err).NotTo(HaveOccurred())

		output := run("lihat " + rows[0].ID + "\nlihat tidak-ada\nkeluar\n")
		Expect(output).To(ContainSubstring(rows[0].NIP))
		Expect(output).To(ContainSubstring("tidak ditemukan"))
	})

	It("deletes a record only after confirmation", func() {
		rows, err := app.Pegawai.List(ctx)
		Expect(err).NotTo(HaveOccurred())
		id := rows[0].ID

		output := run("hapus " + id + "\ntidak\nhapus " + id + "\nya\nkeluar\n")
		Expect(output).To(ContainSubstring("dibatalkan"))
		Expect(output).To(ContainSubstring("data dihapus"))
		Expect(output).To(ContainSubstring("Menampilkan 1-5 dari 11 data"))

		_, err = app.Pegawai.Get(ctx, id)
		Expect(err).To(MatchError(internal.ErrRecordNotFound))
	})

	It("stops at end of input", func() {
		output := run("next\n")
		Expect(output).To(ContainSubstring("Menampilkan 6-10 dari 12 data"))
	})
})
