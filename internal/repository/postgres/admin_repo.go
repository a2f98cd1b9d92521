package postgres

import (
	"context"
	"database/sql"
	"errors"

	"techfest/internal/domain"
)

type adminRepository struct {
	DB *sql.DB
}

// NewAdminRepository returns an AdminRepository backed by the
// admin_credentials table.
func NewAdminRepository(db *sql.DB) domain.AdminRepository {
	return &adminRepository{
		DB: db,
	}
}

func (r *adminRepository) GetByUsername(ctx context.Context, username string) (*domain.AdminCredential, error) {
	query := `
		SELECT username, password_hash, salt
		FROM admin_credentials
		WHERE username = $1
	`
	cred := &domain.AdminCredential{}
	err := r.DB.QueryRowContext(ctx, query, username).
		Scan(&cred.Username, &cred.PasswordHash, &cred.Salt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cred, nil
}
