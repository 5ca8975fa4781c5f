package auth

import (
	"errors"
	"fmt"
	"time"

	apperrors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/golang-jwt/jwt/v5"
)

type TokenGeneratorAPI interface {
	GenerateAccessToken(user User) (token string, expiresAt time.Time, err error)
	ValidateToken(tokenString string) (*Claims, error)
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Nama   string `json:"nama"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// CurrentUser converts the claims into the principal stored in the request context.
func (c *Claims) CurrentUser() *apperrors.CurrentUser {
	return &apperrors.CurrentUser{ID: c.UserID, Email: c.Email, Nama: c.Nama, Role: c.Role}
}

type JWTTokenGenerator struct {
	AccessTokenSecret []byte
	AccessTokenTTL    time.Duration
	now               func() time.Time
}

func NewJWTTokenGenerator(secret string, ttl time.Duration) *JWTTokenGenerator {
	return &JWTTokenGenerator{
		AccessTokenSecret: []byte(secret),
		AccessTokenTTL:    ttl,
		now:               time.Now,
	}
}

func (g *JWTTokenGenerator) GenerateAccessToken(user User) (string, time.Time, error) {
	now := g.now()
	expiresAt := now.Add(g.AccessTokenTTL)
	claims := &Claims{
		UserID: user.ID,
		Email:  user.Email,
		Nama:   user.Nama,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.AccessTokenSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return signed, expiresAt, nil
}

func (g *JWTTokenGenerator) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return g.AccessTokenSecret, nil
	}, jwt.WithTimeFunc(g.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken.WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}
