package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasveiga/palpiteiro/internal/infrastructure/repository/memory"
)

func newAuthService() *AuthService {
	return NewAuthService(memory.NewUserRepository(), "test-secret")
}

func TestAuthRegisterAndLogin(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "Lucas", "senha-forte")
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.Username != "lucas" {
		t.Errorf("Username = %q, want lowercased", u.Username)
	}
	if u.PasswordHash == "senha-forte" {
		t.Error("password stored in clear")
	}

	token, err := svc.Login(ctx, "lucas", "senha-forte")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	username, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if username != "lucas" {
		t.Errorf("Verify = %q, want lucas", username)
	}
}

func TestAuthLoginUpdatesLastAccess(t *testing.T) {
	repo := memory.NewUserRepository()
	svc := NewAuthService(repo, "test-secret")
	loginAt := time.Date(2025, time.April, 20, 9, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return loginAt }
	ctx := context.Background()

	if _, err := svc.Register(ctx, "lucas", "senha-forte"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	before, err := repo.GetByUsername(ctx, "lucas")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if !before.LastAccessAt.IsZero() {
		t.Errorf("LastAccessAt = %v before first login, want zero", before.LastAccessAt)
	}

	if _, err := svc.Login(ctx, "lucas", "senha-forte"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	after, err := repo.GetByUsername(ctx, "lucas")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if !after.LastAccessAt.Equal(loginAt) {
		t.Errorf("LastAccessAt = %v, want %v", after.LastAccessAt, loginAt)
	}
}

func TestAuthLoginWrongPassword(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "lucas", "senha-forte"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Login(ctx, "lucas", "errada-errada"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Login(ctx, "desconhecido", "senha-forte"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("err = %v, want ErrUnauthorized", err)
	}
}

func TestAuthRegisterValidation(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "", "senha-forte"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty username err = %v, want ErrInvalidInput", err)
	}
	if _, err := svc.Register(ctx, "lucas", "curta"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short password err = %v, want ErrInvalidInput", err)
	}

	if _, err := svc.Register(ctx, "lucas", "senha-forte"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if _, err := svc.Register(ctx, "lucas", "senha-forte"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("duplicate username err = %v, want ErrInvalidInput", err)
	}
}

func TestAuthBootstrapCreatesAdminOnce(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if err := svc.Bootstrap(ctx, "admin-secret"); err != nil {
		t.Fatalf("Bootstrap: %v", err)
	}
	if err := svc.Bootstrap(ctx, "other-secret"); err != nil {
		t.Fatalf("second Bootstrap: %v", err)
	}

	// The first password wins; the second bootstrap is a no-op.
	if _, err := svc.Login(ctx, "admin", "admin-secret"); err != nil {
		t.Errorf("Login with bootstrap password: %v", err)
	}
	if _, err := svc.Login(ctx, "admin", "other-secret"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("second password accepted")
	}
}

func TestAuthVerifyRejectsTamperedToken(t *testing.T) {
	svc := newAuthService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "lucas", "senha-forte"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	token, err := svc.Login(ctx, "lucas", "senha-forte")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	if _, err := svc.Verify(token + "00"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("tampered token err = %v, want ErrUnauthorized", err)
	}
	if _, err := svc.Verify("not-a-token"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("garbage token err = %v, want ErrUnauthorized", err)
	}
}
