package auth

import (
	"context"
	"strings"
	"sync"

	apperrors "github.com/frahmantamala/tunjangan-pas/internal"
	"golang.org/x/crypto/bcrypt"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

type User struct {
	ID           string
	Email        string
	Nama         string
	PasswordHash string
	Role         Role
	IsActive     bool
}

func (u User) Info() UserInfo {
	return UserInfo{ID: u.ID, Email: u.Email, Nama: u.Nama, Role: string(u.Role)}
}

type RepositoryAPI interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
}

// MemoryUserRepository serves accounts when no database is configured.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]User
}

func NewMemoryUserRepository(users ...User) *MemoryUserRepository {
	r := &MemoryUserRepository{users: make(map[string]User, len(users))}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *MemoryUserRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return User{}, apperrors.ErrInvalidCredentials
}

func (r *MemoryUserRepository) GetByID(ctx context.Context, id string) (User, error) {
	if err := ctx.Err(); err != nil {
		return User{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return User{}, apperrors.ErrInvalidToken
	}
	return u, nil
}

// SeedAccount is an account created by the seeder before hashing.
type SeedAccount struct {
	ID       string
	Email    string
	Nama     string
	Password string
	Role     Role
}

// DefaultAccounts are the demo logins shipped with the application.
func DefaultAccounts() []SeedAccount {
	return []SeedAccount{
		{ID: "usr-admin", Email: "admin@pas.go.id", Nama: "Administrator", Password: "admin12345", Role: RoleAdmin},
		{ID: "usr-operator", Email: "operator@pas.go.id", Nama: "Operator Kepegawaian", Password: "operator12345", Role: RoleUser},
	}
}

// HashAccounts turns seed accounts into active users with bcrypt hashes.
func HashAccounts(accounts []SeedAccount, cost int) ([]User, error) {
	users := make([]User, 0, len(accounts))
	for _, a := range accounts {
		hash, err := bcrypt.GenerateFromPassword([]byte(a.Password), cost)
		if err != nil {
			return nil, err
		}
		users = append(users, User{
			ID:           a.ID,
			Email:        a.Email,
			Nama:         a.Nama,
			PasswordHash: string(hash),
			Role:         a.Role,
			IsActive:     true,
		})
	}
	return users, nil
}
