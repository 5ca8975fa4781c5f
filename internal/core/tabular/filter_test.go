package tabular_test

import (
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Filter", func() {
	var (
		cfg  tabular.Config[row]
		rows []row
	)

	BeforeEach(func() {
		cfg = rowConfig()
		rows = []row{
			{ID: "1", Nama: "Siti Rahmawati", Unit: "Sekretariat", Gaji: 5000000},
			{ID: "2", Nama: "Budi Santoso", Unit: "Bidang Arsip", Gaji: 4250000},
			{ID: "3", Nama: "Andi Wijaya", Unit: "Sekretariat", Gaji: 3750000},
		}
	})

	It("keeps every record for an empty query", func() {
		Expect(tabular.Filter(rows, "", cfg.Columns)).To(Equal(rows))
	})

	It("matches case-insensitively on any searchable column", func() {
		Expect(ids(tabular.Filter(rows, "SEKRET", cfg.Columns))).To(Equal([]string{"1", "3"}))
		Expect(ids(tabular.Filter(rows, "budi", cfg.Columns))).To(Equal([]string{"2"}))
	})

	It("ignores columns that are not searchable", func() {
		coded := []row{{ID: "kode-unik", Nama: "Rina"}}
		Expect(tabular.Filter(coded, "unik", cfg.Columns)).To(BeEmpty())
	})

	It("matches numbers against their formatted representation", func() {
		Expect(ids(tabular.Filter(rows, "5.000.000", cfg.Columns))).To(Equal([]string{"1"}))
		Expect(tabular.Filter(rows, "5000000", cfg.Columns)).To(BeEmpty())
	})

	It("is idempotent", func() {
		once := tabular.Filter(rows, "a", cfg.Columns)
		Expect(tabular.Filter(once, "a", cfg.Columns)).To(Equal(once))
	})

	It("never grows the set", func() {
		for _, q := range []string{"", "a", "zzz", "Sekretariat", "4.250"} {
			Expect(len(tabular.Filter(rows, q, cfg.Columns))).To(BeNumerically("<=", len(rows)))
		}
	})

	It("does not modify its input and handles an empty source", func() {
		before := append([]row(nil), rows...)
		_ = tabular.Filter(rows, "siti", cfg.Columns)
		Expect(rows).To(Equal(before))
		Expect(tabular.Filter(nil, "siti", cfg.Columns)).To(BeEmpty())
	})
})
