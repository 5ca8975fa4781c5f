package screen_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/pegawai"
	"github.com/frahmantamala/tunjangan-pas/internal/screen"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		router *chi.Mux
		repo   *record.MemoryRepository[pegawai.Pegawai]
	)

	BeforeEach(func() {
		repo = record.NewMemoryRepository(pegawaiRows(12)...)
		registry := screen.NewRegistry(newPegawaiScreen(repo))
		h := screen.NewHandler(registry, screen.NewSessions(registry))

		router = chi.NewRouter()
		router.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				ctx := errors.ContextWithUser(r.Context(), &errors.CurrentUser{ID: "u1", Role: "admin"})
				next.ServeHTTP(w, r.WithContext(ctx))
			})
		})
		router.Get("/records/{screen}", h.ListRecords)
		router.Post("/records/{screen}", h.CreateRecord)
		router.Get("/records/{screen}/{id}", h.GetRecord)
		router.Put("/records/{screen}/{id}", h.UpdateRecord)
		router.Delete("/records/{screen}/{id}", h.DeleteRecord)
		router.Get("/screens/{screen}", h.CurrentPage)
		router.Get("/screens/{screen}/meta", h.Meta)
		router.Post("/screens/{screen}/intents", h.ApplyIntent)
	})

	do := func(method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		var out map[string]any
		if rec.Body.Len() > 0 {
			Expect(json.Unmarshal(rec.Body.Bytes(), &out)).To(Succeed())
		}
		return rec, out
	}

	errorCode := func(body map[string]any) string {
		return body["error"].(map[string]any)["code"].(string)
	}

	It("lists a page with compressed page numbers", func() {
		rec, body := do(http.MethodGet, "/records/pegawai?page=2&sort=nama&dir=desc", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["page"]).To(BeEquivalentTo(2))
		Expect(body["total_pages"]).To(BeEquivalentTo(3))
		Expect(body["page_numbers"]).To(Equal([]any{1.0, 2.0, 3.0}))
		Expect(body["items"]).To(HaveLen(5))
	})

	It("answers 404 for unknown screens", func() {
		rec, body := do(http.MethodGet, "/records/gaji", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(errorCode(body)).To(Equal("UNKNOWN_SCREEN"))
	})

	It("answers 400 for unknown sort columns", func() {
		rec, body := do(http.MethodGet, "/records/pegawai?sort=gaji", "")
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		Expect(errorCode(body)).To(Equal("VALIDATION_FAILED"))
	})

	It("creates, reads, updates and deletes", func() {
		rec, body := do(http.MethodPost, "/records/pegawai", `{"nip":"2001","nama":"Rina"}`)
		Expect(rec.Code).To(Equal(http.StatusCreated))
		id := body["id"].(string)
		Expect(body["status"]).To(Equal("Aktif"))

		rec, body = do(http.MethodGet, "/records/pegawai/"+id, "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["nama"]).To(Equal("Rina"))

		rec, body = do(http.MethodPut, "/records/pegawai/"+id, `{"nama":"Rina Marlina"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["nama"]).To(Equal("Rina Marlina"))
		Expect(body["nip"]).To(Equal("2001"))

		rec, _ = do(http.MethodDelete, "/records/pegawai/"+id, "")
		Expect(rec.Code).To(Equal(http.StatusNoContent))
		Expect(repo.Len()).To(Equal(12))
	})

	It("lists every missing field on validation failure", func() {
		rec, body := do(http.MethodPost, "/records/pegawai", `{"jabatan":"Penjaga"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
		details := body["error"].(map[string]any)["details"].(map[string]any)["errors"].([]any)
		Expect(details).To(HaveLen(2))
		Expect(repo.Len()).To(Equal(12))
	})

	It("answers 404 for missing records", func() {
		rec, body := do(http.MethodDelete, "/records/pegawai/nope", "")
		Expect(rec.Code).To(Equal(http.StatusNotFound))
		Expect(errorCode(body)).To(Equal("RECORD_NOT_FOUND"))
	})

	It("drives a session through intents", func() {
		rec, body := do(http.MethodPost, "/screens/pegawai/intents", `{"action":"next"}`)
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["page"]).To(BeEquivalentTo(2))

		_, body = do(http.MethodGet, "/screens/pegawai", "")
		Expect(body["page"]).To(BeEquivalentTo(2))

		rec, _ = do(http.MethodPost, "/screens/pegawai/intents", `{"action":"zoom"}`)
		Expect(rec.Code).To(Equal(http.StatusBadRequest))
	})

	It("describes columns and form defaults", func() {
		rec, body := do(http.MethodGet, "/screens/pegawai/meta", "")
		Expect(rec.Code).To(Equal(http.StatusOK))
		Expect(body["page_size"]).To(BeEquivalentTo(5))
		Expect(body["columns"]).To(HaveLen(7))
		Expect(body["form_defaults"].(map[string]any)["status"]).To(Equal("Aktif"))
	})
})
