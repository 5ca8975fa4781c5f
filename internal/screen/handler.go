package screen

import (
	"log/slog"
	"net/http"
	"strconv"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	"github.com/frahmantamala/tunjangan-pas/internal/transport"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Registry *Registry
	Sessions *Sessions
}

func NewHandler(registry *Registry, sessions *Sessions) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Registry:    registry,
		Sessions:    sessions,
	}
}

type MetaResponse struct {
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	PageSize     int          `json:"page_size"`
	Columns      []ColumnInfo `json:"columns"`
	FormDefaults any          `json:"form_defaults"`
}

func (h *Handler) screen(w http.ResponseWriter, r *http.Request) (Screen, bool) {
	s, err := h.Registry.Get(chi.URLParam(r, "screen"))
	if err != nil {
		h.HandleServiceError(w, err)
		return nil, false
	}
	return s, true
}

// ListRecords serves GET /records/{screen}?q=&sort=&dir=&page=
func (h *Handler) ListRecords(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}

	values := r.URL.Query()
	q := Query{
		Filter:    values.Get("q"),
		Sort:      values.Get("sort"),
		Direction: values.Get("dir"),
	}
	if raw := values.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			h.HandleServiceError(w, errors.NewValidationFieldError("page", "page harus berupa angka", errors.ErrCodeInvalidRequest))
			return
		}
		q.Page = page
	}

	page, err := s.List(r.Context(), q)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, page)
}

func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}

	f := s.NewForm()
	rec, err := f.BeginView(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	f.Cancel()
	h.WriteJSON(w, http.StatusOK, rec)
}

func (h *Handler) CreateRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	body, err := h.ReadBody(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	f := s.NewForm()
	if _, err := f.BeginAdd(); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	saved, err := f.Submit(r.Context(), body)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.Logger.Info("record created", "screen", s.Name())
	h.WriteJSON(w, http.StatusCreated, saved)
}

func (h *Handler) UpdateRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	body, err := h.ReadBody(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	f := s.NewForm()
	if _, err := f.BeginEdit(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	saved, err := f.Submit(r.Context(), body)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, saved)
}

func (h *Handler) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}

	f := s.NewForm()
	if _, err := f.BeginDelete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := f.Confirm(r.Context()); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Meta describes a screen: its columns and the defaults of its Add form.
func (h *Handler) Meta(w http.ResponseWriter, r *http.Request) {
	s, ok := h.screen(w, r)
	if !ok {
		return
	}
	page, err := s.List(r.Context(), Query{})
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, MetaResponse{
		Name:         s.Name(),
		Title:        s.Title(),
		PageSize:     page.PageSize,
		Columns:      s.Columns(),
		FormDefaults: s.NewForm().Blank(),
	})
}

func (h *Handler) sessionUser(w http.ResponseWriter, r *http.Request) (*errors.CurrentUser, bool) {
	user, ok := errors.UserFromContext(r.Context())
	if !ok {
		h.HandleServiceError(w, errors.ErrInvalidToken)
		return nil, false
	}
	return user, true
}

// CurrentPage serves the user's session page of a screen.
func (h *Handler) CurrentPage(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}
	sess, err := h.Sessions.Get(user.ID, chi.URLParam(r, "screen"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	page, err := sess.Current(r.Context())
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, page)
}

// ApplyIntent applies one user intent to the session and returns the page.
func (h *Handler) ApplyIntent(w http.ResponseWriter, r *http.Request) {
	user, ok := h.sessionUser(w, r)
	if !ok {
		return
	}

	var intent Intent
	if err := h.DecodeJSON(r, &intent); err != nil {
		h.HandleServiceError(w, err)
		return
	}
	if err := validation.Struct(intent); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	sess, err := h.Sessions.Get(user.ID, chi.URLParam(r, "screen"))
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	page, err := sess.Apply(r.Context(), intent)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}
	h.WriteJSON(w, http.StatusOK, page)
}
