package domain

import (
	"context"
	"time"
)

// AdminCredential is a row from the admin_credentials table. The password is
// stored as a bcrypt hash with a per-credential salt, never plaintext.
type AdminCredential struct {
	Username     string
	PasswordHash string
	Salt         string
}

// PasswordHasher handles salt generation, hashing, and verification.
// Implementations may use bcrypt, argon2, etc.
type PasswordHasher interface {
	GenerateSalt() (string, error)
	Hash(salt, password string) (hash string, err error)
	Compare(hash, salt, password string) error
}

// TokenIssuer issues short-lived signed tokens for an authenticated admin.
type TokenIssuer interface {
	Issue(username string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated admin username.
// Expired tokens fail verification regardless of their claims.
type TokenVerifier interface {
	Verify(token string) (username string, err error)
}

// AdminRepository defines storage for admin credentials.
type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*AdminCredential, error)
}

// AdminService authenticates admins and issues session tokens.
type AdminService interface {
	// Login returns a signed token on success, ErrInvalidCredentials on a bad
	// username or password.
	Login(ctx context.Context, username, password string) (token string, err error)
}
