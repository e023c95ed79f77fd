package user

import "time"

// User is one credential-store entry. PasswordHash is a bcrypt hash,
// never the clear password.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	// LastAccessAt is bumped on every successful login; zero means
	// the account never logged in.
	LastAccessAt time.Time
}

// Principal identifies the caller behind a verified bearer token.
type Principal struct {
	Username string
}
