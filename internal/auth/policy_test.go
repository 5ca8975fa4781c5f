package auth_test

import (
	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ScreenPolicy", func() {
	var policy *auth.ScreenPolicy

	BeforeEach(func() {
		var err error
		policy, err = auth.NewScreenPolicy(auth.DefaultPolicies())
		Expect(err).NotTo(HaveOccurred())
	})

	DescribeTable("Allow",
		func(role, screen, act string, expected bool) {
			allowed, err := policy.Allow(role, screen, act)
			Expect(err).NotTo(HaveOccurred())
			Expect(allowed).To(Equal(expected))
		},
		Entry("admin writes pegawai", "admin", "pegawai", auth.ActWrite, true),
		Entry("admin reads any screen", "admin", "apa-saja", auth.ActRead, true),
		Entry("user reads pegawai", "user", "pegawai", auth.ActRead, true),
		Entry("user cannot write pegawai", "user", "pegawai", auth.ActWrite, false),
		Entry("user cannot write tunjangan", "user", "tunjangan", auth.ActWrite, false),
		Entry("user writes notifikasi", "user", "notifikasi", auth.ActWrite, true),
		Entry("unknown role reads nothing", "tamu", "pegawai", auth.ActRead, false),
	)

	It("builds the menu of a role", func() {
		items := []auth.MenuItem{
			{Screen: "pegawai", Title: "Data Pegawai"},
			{Screen: "notifikasi", Title: "Notifikasi"},
			{Screen: "pengaturan", Title: "Pengaturan"},
		}

		menu, err := policy.Menu("user", items)
		Expect(err).NotTo(HaveOccurred())
		Expect(menu).To(Equal([]auth.MenuItem{
			{Screen: "pegawai", Title: "Data Pegawai", CanWrite: false},
			{Screen: "notifikasi", Title: "Notifikasi", CanWrite: true},
		}))

		menu, err = policy.Menu("admin", items)
		Expect(err).NotTo(HaveOccurred())
		Expect(menu).To(HaveLen(3))
		Expect(menu[0].CanWrite).To(BeTrue())
	})

	It("denies everything without policies", func() {
		empty, err := auth.NewScreenPolicy(nil)
		Expect(err).NotTo(HaveOccurred())
		allowed, err := empty.Allow("admin", "pegawai", auth.ActRead)
		Expect(err).NotTo(HaveOccurred())
		Expect(allowed).To(BeFalse())
	})
})
