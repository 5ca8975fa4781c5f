package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
)

const maxLoggedBody = 4 << 10

// sensitiveFields are field names that should be filtered from logs
var sensitiveFields = []string{
	"password",
	"password_hash",
	"token",
	"authorization",
	"secret",
	"cookie",
	"credential",
}

// LoggingMiddleware logs each request and its outcome through the request
// scoped logger.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lg := logger.From(r.Context())

		logRequest(lg, r)

		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)

		status := sw.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		} else if status >= 400 {
			level = slog.LevelWarn
		}
		lg.Log(r.Context(), level, "response",
			"method", r.Method,
			"path", r.URL.Path,
			"status_code", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"response_size", sw.size,
		)
	})
}

// logRequest logs the incoming HTTP request with sensitive data filtered
func logRequest(lg *slog.Logger, r *http.Request) {
	var body string
	if r.Body != nil && r.ContentLength != 0 {
		raw, _ := io.ReadAll(r.Body)
		r.Body = io.NopCloser(bytes.NewReader(raw))
		if len(raw) <= maxLoggedBody {
			body = filterSensitiveBody(raw)
		} else {
			body = "[TRUNCATED]"
		}
	}

	lg.Debug("incoming request",
		"method", r.Method,
		"path", r.URL.Path,
		"query", r.URL.RawQuery,
		"remote_addr", r.RemoteAddr,
		"user_agent", r.UserAgent(),
		"headers", filterSensitiveHeaders(r.Header),
		"body", body,
	)
}

func isSensitive(name string) bool {
	name = strings.ToLower(name)
	for _, field := range sensitiveFields {
		if strings.Contains(name, field) {
			return true
		}
	}
	return false
}

// filterSensitiveHeaders removes or masks sensitive headers
func filterSensitiveHeaders(headers http.Header) map[string]string {
	filtered := make(map[string]string, len(headers))
	for name, values := range headers {
		if isSensitive(name) {
			filtered[name] = "[FILTERED]"
			continue
		}
		filtered[name] = strings.Join(values, ", ")
	}
	return filtered
}

// filterSensitiveBody masks sensitive fields of a JSON body. Non-JSON bodies
// are dropped entirely when they mention a sensitive field.
func filterSensitiveBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var data any
	if err := json.Unmarshal(body, &data); err != nil {
		if isSensitive(string(body)) {
			return "[FILTERED]"
		}
		return string(body)
	}

	out, err := json.Marshal(filterSensitiveJSON(data))
	if err != nil {
		return "[FILTERED]"
	}
	return string(out)
}

// filterSensitiveJSON recursively filters sensitive fields from JSON data
func filterSensitiveJSON(data any) any {
	switch v := data.(type) {
	case map[string]any:
		filtered := make(map[string]any, len(v))
		for key, value := range v {
			if isSensitive(key) {
				filtered[key] = "[FILTERED]"
			} else {
				filtered[key] = filterSensitiveJSON(value)
			}
		}
		return filtered
	case []any:
		filtered := make([]any, len(v))
		for i, item := range v {
			filtered[i] = filterSensitiveJSON(item)
		}
		return filtered
	default:
		return v
	}
}
