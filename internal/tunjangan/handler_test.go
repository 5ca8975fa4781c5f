package tunjangan_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/tunjangan"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	It("serves the recap with display values", func() {
		repo := record.NewMemoryRepository(
			tunjangan.Tunjangan{ID: "a", Tahun: 2025, Bulan: 3, Total: 6250000},
			tunjangan.Tunjangan{ID: "b", Tahun: 2025, Bulan: 3, Total: 750000},
			tunjangan.Tunjangan{ID: "c", Tahun: 2025, Bulan: 2, Total: 1000000},
		)
		h := tunjangan.NewHandler(tunjangan.NewMemoryRekap(repo))

		rec := httptest.NewRecorder()
		h.GetRekap(rec, httptest.NewRequest(http.MethodGet, "/tunjangan/rekap", nil))
		Expect(rec.Code).To(Equal(http.StatusOK))

		var body struct {
			Items []tunjangan.RekapItem `json:"items"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		Expect(body.Items).To(Equal([]tunjangan.RekapItem{
			{Periode: "Februari 2025", Tahun: 2025, Bulan: 2, Jumlah: 1, Total: 1000000, TotalDisplay: "Rp 1.000.000"},
			{Periode: "Maret 2025", Tahun: 2025, Bulan: 3, Jumlah: 2, Total: 7000000, TotalDisplay: "Rp 7.000.000"},
		}))
	})
})
