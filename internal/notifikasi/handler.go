package notifikasi

import (
	"log/slog"
	"net/http"

	"github.com/frahmantamala/tunjangan-pas/internal/transport"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Feed FeedAPI
}

func NewHandler(feed FeedAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Feed:        feed,
	}
}

func (h *Handler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	count, err := h.Feed.UnreadCount(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]int{"unread": count})
}

func (h *Handler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	changed, err := h.Feed.MarkAllRead(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]int{"updated": changed})
}

func (h *Handler) MarkRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.Feed.MarkRead(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, n)
}
