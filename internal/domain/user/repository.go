package user

import (
	"context"
	"time"
)

// Repository exposes credential-store operations.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByUsername(ctx context.Context, username string) (*User, error)
	UpdateLastAccess(ctx context.Context, username string, at time.Time) error
}
