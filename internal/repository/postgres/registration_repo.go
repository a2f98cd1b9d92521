package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"techfest/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a RegistrationRepository backed by the
// registrations table. Team members are stored as a JSON column.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	var utr sql.NullString
	if reg.UTR != "" {
		utr = sql.NullString{String: reg.UTR, Valid: true}
	}
	var members []byte
	if len(reg.TeamMembers) > 0 {
		var err error
		members, err = json.Marshal(reg.TeamMembers)
		if err != nil {
			return fmt.Errorf("marshal team members: %w", err)
		}
	}
	query := `
		INSERT INTO registrations (id, event_id, name, usn, branch, phone, email, registration_type, utr, team_members, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.DB.ExecContext(ctx, query,
		reg.ID, reg.EventID, reg.Name, reg.USN, reg.Branch, reg.Phone, reg.Email,
		reg.RegistrationType, utr, nullableBytes(members), reg.CreatedAt,
	)
	return err
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID,
	).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, event_id, name, usn, branch, phone, email, registration_type, utr, team_members, created_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	regs, err := scanRegistrations(rows)
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *registrationRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM registrations`).Scan(&total); err != nil {
		return nil, 0, err
	}
	query := `
		SELECT id, event_id, name, usn, branch, phone, email, registration_type, utr, team_members, created_at
		FROM registrations
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.DB.QueryContext(ctx, query, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	regs, err := scanRegistrations(rows)
	if err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}

func (r *registrationRepository) DeleteByEventID(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `
		DELETE FROM registrations
		WHERE event_id = $1
		RETURNING id, event_id, name, usn, branch, phone, email, registration_type, utr, team_members, created_at
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRegistrations(rows)
}

func scanRegistrations(rows *sql.Rows) ([]*domain.Registration, error) {
	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		var utr sql.NullString
		var members []byte
		if err := rows.Scan(
			&reg.ID, &reg.EventID, &reg.Name, &reg.USN, &reg.Branch, &reg.Phone, &reg.Email,
			&reg.RegistrationType, &utr, &members, &reg.CreatedAt,
		); err != nil {
			return nil, err
		}
		if utr.Valid {
			reg.UTR = utr.String
		}
		if len(members) > 0 {
			if err := json.Unmarshal(members, &reg.TeamMembers); err != nil {
				return nil, fmt.Errorf("unmarshal team members for %s: %w", reg.ID, err)
			}
		}
		regs = append(regs, reg)
	}
	return regs, rows.Err()
}

// nullableBytes maps an empty slice to NULL so free-form columns stay NULL
// instead of holding empty strings.
func nullableBytes(b []byte) interface{} {
	if len(b) == 0 {
		return nil
	}
	return b
}
