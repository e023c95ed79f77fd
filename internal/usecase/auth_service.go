package usecase

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/lucasveiga/palpiteiro/internal/domain/user"
)

const tokenTTL = 12 * time.Hour

// AuthService is the credential store. Tokens are HMAC-signed opaque
// strings verified locally, not sessions.
type AuthService struct {
	userRepo    user.Repository
	tokenSecret []byte
	now         func() time.Time
}

func NewAuthService(userRepo user.Repository, tokenSecret string) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		tokenSecret: []byte(tokenSecret),
		now:         time.Now,
	}
}

// Bootstrap ensures the default admin account exists. Intended for
// startup, before the HTTP surface accepts traffic.
func (s *AuthService) Bootstrap(ctx context.Context, adminPassword string) error {
	if adminPassword == "" {
		return fmt.Errorf("%w: admin password is required", ErrInvalidInput)
	}

	existing, err := s.userRepo.GetByUsername(ctx, "admin")
	if err != nil {
		return fmt.Errorf("lookup admin: %w", err)
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &user.User{
		ID:           newUserID(),
		Username:     "admin",
		PasswordHash: string(hash),
		IsAdmin:      true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin: %w", err)
	}

	return nil
}

// Register creates a regular account.
func (s *AuthService) Register(ctx context.Context, username, password string) (*user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Register")
	defer span.End()

	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrInvalidInput)
	}

	existing, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: username already taken", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &user.User{
		ID:           newUserID(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return u, nil
}

// Login validates the credentials and mints a bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	ctx, span := startUsecaseSpan(ctx, "AuthService.Login")
	defer span.End()

	username = strings.TrimSpace(strings.ToLower(username))
	if username == "" || password == "" {
		return "", fmt.Errorf("%w: username and password are required", ErrInvalidInput)
	}

	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if u == nil {
		return "", fmt.Errorf("%w: unknown user or wrong password", ErrUnauthorized)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return "", fmt.Errorf("%w: unknown user or wrong password", ErrUnauthorized)
	}

	if err := s.userRepo.UpdateLastAccess(ctx, u.Username, s.now().UTC()); err != nil {
		return "", fmt.Errorf("update last access: %w", err)
	}

	return s.mintToken(u.Username, s.now().Add(tokenTTL)), nil
}

// Verify checks a bearer token and returns the username it was minted
// for.
func (s *AuthService) Verify(token string) (string, error) {
	parts := strings.Split(token, ".")
	if len(parts) != 3 {
		return "", fmt.Errorf("%w: malformed token", ErrUnauthorized)
	}

	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return "", fmt.Errorf("%w: malformed token", ErrUnauthorized)
	}
	expiresAt, err := time.Parse(time.RFC3339, parts[1])
	if err != nil {
		return "", fmt.Errorf("%w: malformed token", ErrUnauthorized)
	}
	if s.now().After(expiresAt) {
		return "", fmt.Errorf("%w: token expired", ErrUnauthorized)
	}

	expected := s.sign(parts[0] + "." + parts[1])
	if !hmac.Equal([]byte(expected), []byte(parts[2])) {
		return "", fmt.Errorf("%w: bad token signature", ErrUnauthorized)
	}

	return string(payload), nil
}

// VerifyAccessToken adapts Verify to the shape the HTTP middleware
// expects.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	_, span := startUsecaseSpan(ctx, "AuthService.VerifyAccessToken")
	defer span.End()

	username, err := s.Verify(token)
	if err != nil {
		return user.Principal{}, err
	}
	return user.Principal{Username: username}, nil
}

func (s *AuthService) mintToken(username string, expiresAt time.Time) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(username))
	stamp := expiresAt.UTC().Format(time.RFC3339)
	return payload + "." + stamp + "." + s.sign(payload+"."+stamp)
}

func (s *AuthService) sign(data string) string {
	mac := hmac.New(sha256.New, s.tokenSecret)
	mac.Write([]byte(data))
	return hex.EncodeToString(mac.Sum(nil))
}

func newUserID() string {
	var buf [16]byte
	_, _ = rand.Read(buf[:])
	return hex.EncodeToString(buf[:])
}
