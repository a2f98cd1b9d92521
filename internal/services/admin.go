package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"techfest/internal/domain"
)

type adminService struct {
	repo           domain.AdminRepository
	hasher         domain.PasswordHasher
	issuer         domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAdminService authenticates admins against stored salted hashes and
// issues signed tokens. Credentials never leave the server.
func NewAdminService(repo domain.AdminRepository,
	hasher domain.PasswordHasher,
	issuer domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AdminService {
	return &adminService{
		repo:           repo,
		hasher:         hasher,
		issuer:         issuer,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

func (s *adminService) Login(ctx context.Context, username, password string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	cred, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}
	if err := s.hasher.Compare(cred.PasswordHash, cred.Salt, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.issuer.Issue(cred.Username, s.tokenExpiry)
}
