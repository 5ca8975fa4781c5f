package transport

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
)

const maxBodyBytes = 1 << 20

// BaseHandler provides common functionality for HTTP handlers
type BaseHandler struct {
	Logger *slog.Logger
}

// NewBaseHandler creates a base handler with logger
func NewBaseHandler(lg *slog.Logger) *BaseHandler {
	if lg == nil {
		lg = logger.LoggerWrapper()
		if lg == nil {
			lg = slog.Default()
		}
	}
	return &BaseHandler{Logger: lg}
}

// WriteJSON writes a JSON response
func (h *BaseHandler) WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.Logger.Error("failed to encode JSON response", "error", err)
	}
}

// WriteError writes an error response in the AppError envelope
func (h *BaseHandler) WriteError(w http.ResponseWriter, status int, message string) {
	h.Logger.Error("http error", "status", status, "message", message)

	appErr := &errors.AppError{
		Type:       errors.ErrorTypeInternal,
		Code:       errors.ErrCodeInternal,
		Message:    message,
		StatusCode: status,
	}
	switch {
	case status == http.StatusUnauthorized:
		appErr.Type, appErr.Code = errors.ErrorTypeUnauthorized, errors.ErrCodeInvalidToken
	case status == http.StatusForbidden:
		appErr.Type, appErr.Code = errors.ErrorTypeForbidden, errors.ErrCodeForbidden
	case status >= 400 && status < 500:
		appErr.Type, appErr.Code = errors.ErrorTypeValidation, errors.ErrCodeInvalidRequest
	}
	h.WriteJSON(w, status, errors.Response{Error: appErr})
}

// HandleServiceError renders err with the status of its AppError. Errors of
// any other type are rendered as internal errors carrying their message.
func (h *BaseHandler) HandleServiceError(w http.ResponseWriter, err error) {
	appErr := errors.AsAppError(err)
	if appErr.StatusCode >= http.StatusInternalServerError {
		h.Logger.Error("service error", "code", appErr.Code, "error", err)
	} else {
		h.Logger.Warn("request rejected", "code", appErr.Code, "message", appErr.GetDetailedMessage())
	}
	status, body := appErr.ToHTTPResponse()
	h.WriteJSON(w, status, body)
}

// DecodeJSON reads a JSON body into dst.
func (h *BaseHandler) DecodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst); err != nil {
		return errors.NewValidationError("Format permintaan tidak valid", errors.ErrCodeInvalidRequest).WithCause(err)
	}
	return nil
}

// ReadBody returns the raw request body, or nil when it is empty.
func (h *BaseHandler) ReadBody(r *http.Request) (json.RawMessage, error) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return nil, errors.NewValidationError("Gagal membaca permintaan", errors.ErrCodeInvalidRequest).WithCause(err)
	}
	if len(data) == 0 {
		return nil, nil
	}
	if !json.Valid(data) {
		return nil, errors.NewValidationError("Format permintaan tidak valid", errors.ErrCodeInvalidRequest)
	}
	return data, nil
}

// ExtractTokenFromHeader extracts Bearer token from Authorization header
func (h *BaseHandler) ExtractTokenFromHeader(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
		return ""
	}

	return authHeader[7:]
}
