package rest

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	"github.com/frahmantamala/tunjangan-pas/internal/dashboard"
	"github.com/frahmantamala/tunjangan-pas/internal/notifikasi"
	"github.com/frahmantamala/tunjangan-pas/internal/screen"
	"github.com/frahmantamala/tunjangan-pas/internal/transport/middleware"
	"github.com/frahmantamala/tunjangan-pas/internal/transport/openapi"
	"github.com/frahmantamala/tunjangan-pas/internal/transport/swagger"
	"github.com/frahmantamala/tunjangan-pas/internal/tunjangan"
	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Health    *HealthHandler
	Auth      *auth.Handler
	Screens   *screen.Handler
	Feed      *notifikasi.Handler
	Rekap     *tunjangan.Handler
	Dashboard *dashboard.Handler
}

type Options struct {
	AllowedOrigins string
	// MetricsPath is empty when metrics are disabled.
	MetricsPath string
}

func RegisterAllRoutes(router *chi.Mux, h Handlers, opts Options, logger *slog.Logger) {
	// Apply global middleware
	router.Use(middleware.CORS(opts.AllowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.Metrics)
	router.Use(middleware.LoggingMiddleware)
	router.NotFound(NotFound)

	router.Handle("/openapi.yml", openapi.Handler())
	router.Handle("/swagger/*", swagger.Handler("/openapi.yml"))
	if opts.MetricsPath != "" {
		router.Handle(opts.MetricsPath, promhttp.Handler())
	}

	// Mount API under /api/v1 to match the OpenAPI server URL
	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", h.Health.healthCheckHandler)
		r.Get("/ping", h.Health.pingHandler)

		r.Post("/auth/login", h.Auth.Login)

		// Protected routes that require authentication
		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/auth/me", h.Auth.Me)
			pr.Post("/auth/logout", h.Auth.Logout)
			pr.Get("/menu", h.Auth.GetMenu)
			pr.Get("/dashboard", h.Dashboard.GetSummary)

			pr.With(h.Auth.RequireScreen(tunjangan.Screen, auth.ActRead)).
				Get("/tunjangan/rekap", h.Rekap.GetRekap)

			pr.Route("/feed", func(fr chi.Router) {
				fr.With(h.Auth.RequireScreen(notifikasi.Screen, auth.ActRead)).Get("/unread-count", h.Feed.UnreadCount)
				fr.Group(func(wr chi.Router) {
					wr.Use(h.Auth.RequireScreen(notifikasi.Screen, auth.ActWrite))
					wr.Post("/read-all", h.Feed.MarkAllRead)
					wr.Post("/{id}/read", h.Feed.MarkRead)
				})
			})

			pr.Route("/records/{screen}", func(rr chi.Router) {
				rr.Use(h.Auth.RequireByMethod())
				rr.Get("/", h.Screens.ListRecords)
				rr.Post("/", h.Screens.CreateRecord)
				rr.Get("/{id}", h.Screens.GetRecord)
				rr.Put("/{id}", h.Screens.UpdateRecord)
				rr.Delete("/{id}", h.Screens.DeleteRecord)
			})

			// Session intents only change the caller's view, so they need read access.
			pr.Route("/screens/{screen}", func(sr chi.Router) {
				sr.Use(h.Auth.Require(auth.ActRead))
				sr.Get("/", h.Screens.CurrentPage)
				sr.Get("/meta", h.Screens.Meta)
				sr.Post("/intents", h.Screens.ApplyIntent)
			})
		})
	})
}

// NotFound renders unknown routes in the error envelope.
func NotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write([]byte(`{"error":{"type":"NOT_FOUND","code":"ROUTE_NOT_FOUND","message":"Halaman tidak ditemukan"}}`))
}
