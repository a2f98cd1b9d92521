package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"techfest/internal/domain"
)

func TestAdminService_Login(t *testing.T) {
	ctx := context.Background()
	cred := &domain.AdminCredential{
		Username:     "festadmin",
		PasswordHash: "hashed:salt1:s3cret",
		Salt:         "salt1",
	}

	tests := []struct {
		name      string
		repo      *fakeAdminRepo
		username  string
		password  string
		wantToken string
		wantErr   error
	}{
		{
			name:      "success",
			repo:      &fakeAdminRepo{cred: cred},
			username:  "festadmin",
			password:  "s3cret",
			wantToken: "token-for-festadmin",
		},
		{
			name:     "unknown username",
			repo:     &fakeAdminRepo{cred: cred},
			username: "ghost",
			password: "s3cret",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			repo:     &fakeAdminRepo{cred: cred},
			username: "festadmin",
			password: "wrong",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "empty username",
			repo:     &fakeAdminRepo{cred: cred},
			username: "   ",
			password: "s3cret",
			wantErr:  domain.ErrInvalidCredentials,
		},
		{
			name:     "empty password",
			repo:     &fakeAdminRepo{cred: cred},
			username: "festadmin",
			password: "",
			wantErr:  domain.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAdminService(tt.repo, &fakeHasher{}, &fakeTokenIssuer{}, time.Hour, testTimeout)
			token, err := svc.Login(ctx, tt.username, tt.password)
			if tt.wantErr != nil {
				require.True(t, errors.Is(err, tt.wantErr))
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}

	t.Run("repository error is not masked as bad credentials", func(t *testing.T) {
		repo := &fakeAdminRepo{err: errors.New("db down")}
		svc := NewAdminService(repo, &fakeHasher{}, &fakeTokenIssuer{}, time.Hour, testTimeout)
		_, err := svc.Login(ctx, "festadmin", "s3cret")
		require.Error(t, err)
		assert.False(t, errors.Is(err, domain.ErrInvalidCredentials))
	})
}
