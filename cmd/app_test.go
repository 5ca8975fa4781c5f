package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("App router", func() {
	var router http.Handler

	BeforeEach(func() {
		app, err := newApp(context.Background(), testConfig(), discardLogger())
		Expect(err).NotTo(HaveOccurred())
		DeferCleanup(app.Close)
		router = app.Router()
	})

	do := func(method, path, token string, body any) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	login := func(email, password string) string {
		rec := do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginDTO{Email: email, Password: password})
		Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())
		var resp auth.LoginResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		return resp.AccessToken
	}

	errorCode := func(rec *httptest.ResponseRecorder) string {
		var body struct {
			Error struct {
				Code string `json:"code"`
			} `json:"error"`
		}
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		return body.Error.Code
	}

	It("serves health without a token", func() {
		rec := do(http.MethodGet, "/api/v1/health", "", nil)
		Expect(rec.Code).To(Equal(http.StatusOK))
	})

	It("rejects protected routes without a token", func() {
		rec := do(http.MethodGet, "/api/v1/records/pegawai", "", nil)
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(errorCode(rec)).To(Equal("INVALID_TOKEN"))
	})

	It("rejects a wrong password", func() {
		rec := do(http.MethodPost, "/api/v1/auth/login", "", auth.LoginDTO{Email: "admin@pas.go.id", Password: "salah-sekali"})
		Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		Expect(errorCode(rec)).To(Equal("INVALID_CREDENTIALS"))
	})

	Context("as admin", func() {
		var token string

		BeforeEach(func() {
			token = login("admin@pas.go.id", "admin12345")
		})

		It("lists the last page of pegawai with its window", func() {
			rec := do(http.MethodGet, "/api/v1/records/pegawai?page=3", token, nil)
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())

			var page struct {
				Items       []map[string]any `json:"items"`
				Page        int              `json:"page"`
				TotalItems  int              `json:"total_items"`
				StartIndex  int              `json:"start_index"`
				EndIndex    int              `json:"end_index"`
				PageNumbers []any            `json:"page_numbers"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &page)).To(Succeed())
			Expect(page.Page).To(Equal(3))
			Expect(page.TotalItems).To(Equal(12))
			Expect(page.Items).To(HaveLen(2))
			Expect(page.StartIndex).To(Equal(10))
			Expect(page.EndIndex).To(Equal(12))
			Expect(page.PageNumbers).To(Equal([]any{float64(1), float64(2), float64(3)}))
		})

		It("answers an unknown screen with 404", func() {
			rec := do(http.MethodGet, "/api/v1/records/gudang", token, nil)
			Expect(rec.Code).To(Equal(http.StatusNotFound))
			Expect(errorCode(rec)).To(Equal("UNKNOWN_SCREEN"))
		})

		It("creates a jabatan and notifies the feed", func() {
			before := do(http.MethodGet, "/api/v1/feed/unread-count", token, nil)
			var count struct {
				Unread int `json:"unread"`
			}
			Expect(json.Unmarshal(before.Body.Bytes(), &count)).To(Succeed())
			initial := count.Unread

			rec := do(http.MethodPost, "/api/v1/records/jabatan", token, map[string]any{
				"kode": "JBT-99", "nama": "Petugas Registrasi", "kelas_jabatan": 7, "nilai_tunjangan": 3500000,
			})
			Expect(rec.Code).To(Equal(http.StatusCreated), rec.Body.String())

			Eventually(func() int {
				r := do(http.MethodGet, "/api/v1/feed/unread-count", token, nil)
				Expect(json.Unmarshal(r.Body.Bytes(), &count)).To(Succeed())
				return count.Unread
			}).Should(Equal(initial + 1))
		})

		It("lists every screen in the menu", func() {
			rec := do(http.MethodGet, "/api/v1/menu", token, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			var menu struct {
				Items []auth.MenuItem `json:"items"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &menu)).To(Succeed())
			Expect(menu.Items).To(HaveLen(len(screenTitles)))
			Expect(menu.Items[0].CanWrite).To(BeTrue())
		})

		It("keeps a session page per user", func() {
			rec := do(http.MethodPost, "/api/v1/screens/pegawai/intents", token, map[string]any{"action": "next"})
			Expect(rec.Code).To(Equal(http.StatusOK), rec.Body.String())

			rec = do(http.MethodGet, "/api/v1/screens/pegawai", token, nil)
			var page struct {
				Page int `json:"page"`
			}
			Expect(json.Unmarshal(rec.Body.Bytes(), &page)).To(Succeed())
			Expect(page.Page).To(Equal(2))
		})
	})

	Context("as operator", func() {
		var token string

		BeforeEach(func() {
			token = login("operator@pas.go.id", "operator12345")
		})

		It("may read but not delete pegawai", func() {
			Expect(do(http.MethodGet, "/api/v1/records/pegawai", token, nil).Code).To(Equal(http.StatusOK))

			rec := do(http.MethodDelete, "/api/v1/records/pegawai/any-id", token, nil)
			Expect(rec.Code).To(Equal(http.StatusForbidden))
			Expect(errorCode(rec)).To(Equal("FORBIDDEN"))
		})

		It("serves the dashboard summary", func() {
			rec := do(http.MethodGet, "/api/v1/dashboard", token, nil)
			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring(`"total_pegawai":12`))
		})
	})
})
