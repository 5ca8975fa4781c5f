package auth

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/common/validation"
	"golang.org/x/crypto/bcrypt"
)

type ServiceAPI interface {
	Authenticate(ctx context.Context, dto LoginDTO) (LoginResponse, error)
	ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error)
	HashPassword(password string) (string, error)
}

type Service struct {
	userRepo       RepositoryAPI
	tokenGenerator TokenGeneratorAPI
	bcryptCost     int
	logger         *slog.Logger
}

func NewService(userRepo RepositoryAPI, tokenGenerator TokenGeneratorAPI, bcryptCost int, logger *slog.Logger) *Service {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGenerator,
		bcryptCost:     bcryptCost,
		logger:         logger,
	}
}

func (s *Service) Authenticate(ctx context.Context, dto LoginDTO) (LoginResponse, error) {
	if err := validation.Struct(dto); err != nil {
		return LoginResponse{}, err
	}

	user, err := s.userRepo.GetByEmail(ctx, dto.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			s.logger.Warn("login with unknown email", "email", dto.Email)
		}
		return LoginResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		s.logger.Warn("login with wrong password", "user_id", user.ID)
		return LoginResponse{}, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return LoginResponse{}, apperrors.ErrUserInactive
	}

	token, expiresAt, err := s.tokenGenerator.GenerateAccessToken(user)
	if err != nil {
		return LoginResponse{}, apperrors.NewInternalError("Gagal membuat token", err)
	}

	s.logger.Info("user logged in", "user_id", user.ID, "role", user.Role)
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user.Info(),
	}, nil
}

// ValidateAccessToken checks the token and that its account is still active.
func (s *Service) ValidateAccessToken(ctx context.Context, tokenString string) (*Claims, error) {
	claims, err := s.tokenGenerator.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserInactive
	}
	claims.Role = string(user.Role)
	return claims, nil
}

func (s *Service) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
