package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/lucasveiga/palpiteiro/internal/domain/user"
)

// UserRepository keeps the credential store in its own flat JSON file,
// keyed by username.
type UserRepository struct {
	path string

	mu    sync.RWMutex
	users map[string]user.User
}

func NewUserRepository(path string) (*UserRepository, error) {
	repo := &UserRepository{path: path, users: map[string]user.User{}}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return repo, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read user file: %w", err)
	}
	if err := sonic.Unmarshal(raw, &repo.users); err != nil {
		return nil, fmt.Errorf("decode user file %s: %w", path, err)
	}
	return repo, nil
}

func (r *UserRepository) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[u.Username] = *u
	return r.persistLocked()
}

func (r *UserRepository) GetByUsername(_ context.Context, username string) (*user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *UserRepository) UpdateLastAccess(_ context.Context, username string, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil
	}
	u.LastAccessAt = at
	r.users[username] = u
	return r.persistLocked()
}

func (r *UserRepository) persistLocked() error {
	raw, err := sonic.ConfigDefault.MarshalIndent(r.users, "", "  ")
	if err != nil {
		return fmt.Errorf("encode users: %w", err)
	}

	dir := filepath.Dir(r.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(r.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp user file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write temp user file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp user file: %w", err)
	}
	if err := os.Rename(tmp.Name(), r.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace user file: %w", err)
	}
	return nil
}
