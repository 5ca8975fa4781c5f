package auth

import (
	"log/slog"
	"net/http"

	apperrors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/transport"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/go-chi/chi"
)

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	Policy  *ScreenPolicy
	Menu    []MenuItem
	// OnLogout drops per-user state kept by other packages.
	OnLogout func(userID string)
}

func NewHandler(svc ServiceAPI, policy *ScreenPolicy, menu []MenuItem) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
		Policy:      policy,
		Menu:        menu,
	}
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var dto LoginDTO
	if err := h.DecodeJSON(r, &dto); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	resp, err := h.Service.Authenticate(r.Context(), dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := apperrors.UserFromContext(r.Context())
	if !ok {
		h.HandleServiceError(w, apperrors.ErrInvalidToken)
		return
	}
	if h.OnLogout != nil {
		h.OnLogout(user.ID)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := apperrors.UserFromContext(r.Context())
	if !ok {
		h.HandleServiceError(w, apperrors.ErrInvalidToken)
		return
	}
	h.WriteJSON(w, http.StatusOK, UserInfo{ID: user.ID, Email: user.Email, Nama: user.Nama, Role: user.Role})
}

// GetMenu lists the screens the caller's role may open.
func (h *Handler) GetMenu(w http.ResponseWriter, r *http.Request) {
	user, ok := apperrors.UserFromContext(r.Context())
	if !ok {
		h.HandleServiceError(w, apperrors.ErrInvalidToken)
		return
	}
	items, err := h.Policy.Menu(user.Role, h.Menu)
	if err != nil {
		h.HandleServiceError(w, apperrors.NewInternalError("Gagal memuat menu", err))
		return
	}
	h.WriteJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := h.ExtractTokenFromHeader(r)
		if token == "" {
			h.HandleServiceError(w, apperrors.ErrInvalidToken)
			return
		}

		claims, err := h.Service.ValidateAccessToken(r.Context(), token)
		if err != nil {
			h.HandleServiceError(w, err)
			return
		}

		ctx := apperrors.ContextWithUser(r.Context(), claims.CurrentUser())
		ctx = logger.With(ctx, "user_id", claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireScreen allows the request only when the caller's role may perform
// act on screen.
func (h *Handler) RequireScreen(screen, act string) func(http.Handler) http.Handler {
	return h.require(func(*http.Request) (string, string) { return screen, act })
}

// Require reads the screen from the {screen} URL parameter.
func (h *Handler) Require(act string) func(http.Handler) http.Handler {
	return h.require(func(r *http.Request) (string, string) { return chi.URLParam(r, "screen"), act })
}

// RequireByMethod treats safe methods as reads and everything else as writes.
func (h *Handler) RequireByMethod() func(http.Handler) http.Handler {
	return h.require(func(r *http.Request) (string, string) {
		act := ActWrite
		if r.Method == http.MethodGet || r.Method == http.MethodHead {
			act = ActRead
		}
		return chi.URLParam(r, "screen"), act
	})
}

func (h *Handler) require(target func(*http.Request) (string, string)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := apperrors.UserFromContext(r.Context())
			if !ok {
				h.HandleServiceError(w, apperrors.ErrInvalidToken)
				return
			}

			screen, act := target(r)
			allowed, err := h.Policy.Allow(user.Role, screen, act)
			if err != nil {
				h.HandleServiceError(w, apperrors.NewInternalError("Gagal memeriksa akses", err))
				return
			}
			if !allowed {
				logger.From(r.Context()).Warn("access denied", "role", user.Role, "screen", screen, "act", act)
				h.HandleServiceError(w, apperrors.ErrForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
