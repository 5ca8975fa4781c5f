package notifikasi_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/notifikasi"
	"github.com/go-chi/chi"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Handler", func() {
	var (
		router *chi.Mux
		repo   *record.MemoryRepository[notifikasi.Notifikasi]
	)

	BeforeEach(func() {
		repo = record.NewMemoryRepository(notifikasi.Seed(time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC))...)
		feed := notifikasi.NewFeed(repo, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
		h := notifikasi.NewHandler(feed)

		router = chi.NewRouter()
		router.Get("/feed/unread-count", h.UnreadCount)
		router.Post("/feed/read-all", h.MarkAllRead)
		router.Post("/feed/{id}/read", h.MarkRead)
	})

	do := func(method, path string) (int, map[string]any) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		var body map[string]any
		Expect(json.Unmarshal(rec.Body.Bytes(), &body)).To(Succeed())
		return rec.Code, body
	}

	It("reports the unread count", func() {
		code, body := do(http.MethodGet, "/feed/unread-count")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("unread", BeNumerically("==", 3)))
	})

	It("marks one entry read", func() {
		items, err := repo.List(context.Background())
		Expect(err).NotTo(HaveOccurred())

		code, body := do(http.MethodPost, "/feed/"+items[0].ID+"/read")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("dibaca", true))
	})

	It("returns 404 for unknown entries", func() {
		code, body := do(http.MethodPost, "/feed/missing/read")
		Expect(code).To(Equal(http.StatusNotFound))
		Expect(body["error"]).To(HaveKeyWithValue("code", "RECORD_NOT_FOUND"))
	})

	It("marks everything read", func() {
		code, body := do(http.MethodPost, "/feed/read-all")
		Expect(code).To(Equal(http.StatusOK))
		Expect(body).To(HaveKeyWithValue("updated", BeNumerically("==", 3)))

		_, body = do(http.MethodGet, "/feed/unread-count")
		Expect(body).To(HaveKeyWithValue("unread", BeNumerically("==", 0)))
	})
})
