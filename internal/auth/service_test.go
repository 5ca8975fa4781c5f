package auth_test

import (
	"context"
	"time"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/auth"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"
)

var _ = Describe("Service", func() {
	var (
		ctx       context.Context
		repo      *auth.MemoryUserRepository
		generator *auth.JWTTokenGenerator
		service   *auth.Service
	)

	BeforeEach(func() {
		ctx = context.Background()
		repo = auth.NewMemoryUserRepository(testUsers()...)
		generator = auth.NewJWTTokenGenerator(testSecret, time.Hour)
		service = auth.NewService(repo, generator, bcrypt.MinCost, nil)
	})

	Describe("Authenticate", func() {
		It("returns a bearer token for valid credentials", func() {
			resp, err := service.Authenticate(ctx, auth.LoginDTO{Email: "admin@pas.go.id", Password: "rahasia123"})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.AccessToken).NotTo(BeEmpty())
			Expect(resp.TokenType).To(Equal("Bearer"))
			Expect(resp.ExpiresAt).To(BeTemporally("~", time.Now().Add(time.Hour), 5*time.Second))
			Expect(resp.User).To(Equal(auth.UserInfo{ID: "u-admin", Email: "admin@pas.go.id", Nama: "Admin", Role: "admin"}))
		})

		It("matches the email case-insensitively", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "ADMIN@pas.go.id", Password: "rahasia123"})
			Expect(err).NotTo(HaveOccurred())
		})

		It("rejects a wrong password", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "admin@pas.go.id", Password: "salah"})
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejects an unknown email", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "siapa@pas.go.id", Password: "rahasia123"})
			Expect(err).To(MatchError(errors.ErrInvalidCredentials))
		})

		It("rejects an inactive account", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "nonaktif@pas.go.id", Password: "rahasia123"})
			Expect(err).To(MatchError(errors.ErrUserInactive))
		})

		It("validates the request", func() {
			_, err := service.Authenticate(ctx, auth.LoginDTO{Email: "bukan-email", Password: " "})
			appErr, ok := errors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Code).To(Equal(errors.ErrCodeValidationFailed))
			details := appErr.Details.(errors.ValidationErrors)
			fields := []string{}
			for _, e := range details.Errors {
				fields = append(fields, e.Field)
			}
			Expect(fields).To(ConsistOf("email", "password"))
		})
	})

	Describe("ValidateAccessToken", func() {
		It("accepts a token it issued", func() {
			resp, err := service.Authenticate(ctx, auth.LoginDTO{Email: "operator@pas.go.id", Password: "rahasia123"})
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(ctx, resp.AccessToken)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("u-op"))
			Expect(claims.Role).To(Equal("user"))
			Expect(claims.CurrentUser().Nama).To(Equal("Operator"))
		})

		It("rejects an expired token", func() {
			expired := auth.NewJWTTokenGenerator(testSecret, -time.Minute)
			token, _, err := expired.GenerateAccessToken(auth.User{ID: "u-op", Role: auth.RoleUser})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(ctx, token)
			Expect(err).To(MatchError(errors.ErrTokenExpired))
		})

		It("rejects a token signed with another secret", func() {
			other := auth.NewJWTTokenGenerator("another-secret-with-at-least-32-chars", time.Hour)
			token, _, err := other.GenerateAccessToken(auth.User{ID: "u-op"})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(ctx, token)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("rejects a token using a non-HMAC algorithm", func() {
			token := jwt.NewWithClaims(jwt.SigningMethodNone, &auth.Claims{UserID: "u-admin"})
			signed, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(ctx, signed)
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("rejects garbage", func() {
			_, err := service.ValidateAccessToken(ctx, "not-a-token")
			Expect(err).To(MatchError(errors.ErrInvalidToken))
		})

		It("rejects tokens of accounts deactivated after login", func() {
			token, _, err := generator.GenerateAccessToken(auth.User{ID: "u-off", Role: auth.RoleUser})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.ValidateAccessToken(ctx, token)
			Expect(err).To(MatchError(errors.ErrUserInactive))
		})
	})

	Describe("HashPassword", func() {
		It("produces a bcrypt hash of the password", func() {
			hash, err := service.HashPassword("kata-sandi")
			Expect(err).NotTo(HaveOccurred())
			Expect(bcrypt.CompareHashAndPassword([]byte(hash), []byte("kata-sandi"))).To(Succeed())
		})
	})
})
