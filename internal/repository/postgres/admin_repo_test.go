package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"techfest/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func TestAdminRepository_GetByUsername(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name       string
		username   string
		mock       func(mock sqlmock.Sqlmock)
		want       *domain.AdminCredential
		wantErr    bool
		isNotFound bool
	}{
		{
			name:     "success",
			username: "festadmin",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT username, password_hash, salt`).
					WithArgs("festadmin").
					WillReturnRows(sqlmock.NewRows([]string{"username", "password_hash", "salt"}).
						AddRow("festadmin", "$2a$10$hash", "abc123"))
			},
			want: &domain.AdminCredential{
				Username:     "festadmin",
				PasswordHash: "$2a$10$hash",
				Salt:         "abc123",
			},
		},
		{
			name:     "not found",
			username: "ghost",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT username, password_hash, salt`).
					WithArgs("ghost").
					WillReturnError(sql.ErrNoRows)
			},
			wantErr:    true,
			isNotFound: true,
		},
		{
			name:     "db error",
			username: "festadmin",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT username, password_hash, salt`).
					WithArgs("festadmin").
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewAdminRepository(db)
			got, err := repo.GetByUsername(ctx, tt.username)
			if tt.wantErr {
				require.Error(t, err)
				if tt.isNotFound {
					require.True(t, errors.Is(err, domain.ErrNotFound))
				}
				require.NoError(t, mock.ExpectationsWereMet())
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
