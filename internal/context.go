package internal

import (
	"context"
	"time"
)

type ctxKey string

const ContextUserKey ctxKey = "user"

// CurrentUser is the authenticated principal carried through a request.
type CurrentUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nama  string `json:"nama"`
	Role  string `json:"role"`
}

func UserFromContext(ctx context.Context) (*CurrentUser, bool) {
	if ctx == nil {
		return nil, false
	}
	u, ok := ctx.Value(ContextUserKey).(*CurrentUser)
	return u, ok && u != nil
}

func ContextWithUser(ctx context.Context, user *CurrentUser) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
