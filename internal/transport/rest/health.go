package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/frahmantamala/tunjangan-pas/internal/transport"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	CheckedAt  time.Time    `json:"checked_at"`
	DurationMs int64        `json:"duration_ms"`
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	*transport.BaseHandler
	db     Pinger
	driver string
}

// NewHealthHandler checks db under the component name driver. A nil db
// reports the in-memory store as always healthy.
func NewHealthHandler(db Pinger, driver string) *HealthHandler {
	return &HealthHandler{BaseHandler: transport.NewBaseHandler(nil), db: db, driver: driver}
}

func (h *HealthHandler) pingHandler(w http.ResponseWriter, r *http.Request) {
	h.WriteJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *HealthHandler) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	entry := CheckEntry{Status: HealthHealthy}
	start := time.Now()

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.PingContext(ctx); err != nil {
			entry.Status = HealthUnhealthy
			entry.Message = err.Error()
		}
	} else {
		entry.Message = "in-memory store"
	}
	entry.CheckedAt = time.Now()
	entry.DurationMs = time.Since(start).Milliseconds()

	statusCode := http.StatusOK
	if entry.Status == HealthUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}
	h.WriteJSON(w, statusCode, HealthResponse{
		Status:     entry.Status,
		CheckedAt:  entry.CheckedAt,
		Components: map[string]CheckEntry{h.driver: entry},
	})
}
