package auth

import "time"

// LoginDTO is the transport shape used by the HTTP handler to accept login requests.
type LoginDTO struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"notblank"`
}

type LoginResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
	User        UserInfo  `json:"user"`
}

type UserInfo struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Nama  string `json:"nama"`
	Role  string `json:"role"`
}

// MenuItem is one navigable screen.
type MenuItem struct {
	Screen   string `json:"screen"`
	Title    string `json:"title"`
	CanWrite bool   `json:"can_write"`
}
