package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/octobees/roofcompare/internal/entity"
)

// SubmissionsRepository is the fire-and-forget sink for lead and quote
// submissions. Saves are best-effort: callers log failures and never surface
// them to the submitter. Recent is only used by the admin surface.
type SubmissionsRepository interface {
	Save(ctx context.Context, submission entity.Submission) error
	Recent(ctx context.Context, limit int) ([]entity.Submission, error)
}

// pgxPool is the subset of pgxpool.Pool the repository uses; tests supply
// stubs.
type pgxPool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// PGXSubmissionsRepository persists submissions in PostgreSQL.
type PGXSubmissionsRepository struct {
	pool pgxPool
}

// NewPGXSubmissionsRepository wires a pgx backed repository.
func NewPGXSubmissionsRepository(pool *pgxpool.Pool) *PGXSubmissionsRepository {
	return &PGXSubmissionsRepository{pool: pool}
}

var _ pgxPool = (*pgxpool.Pool)(nil)

// Save inserts one submission row.
func (r *PGXSubmissionsRepository) Save(ctx context.Context, submission entity.Submission) error {
	query := `
        INSERT INTO submissions (
            id, kind, name, email, phone, zip_code,
            service_option, message, company_name, company_slug, submitted_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		submission.ID,
		submission.Kind,
		submission.Name,
		submission.Email,
		submission.Phone,
		submission.ZipCode,
		submission.ServiceOption,
		submission.Message,
		submission.CompanyName,
		submission.CompanySlug,
		submission.SubmittedAt,
	)
	if err != nil {
		return fmt.Errorf("insert submission: %w", err)
	}
	return nil
}

// Recent returns the newest submissions first.
func (r *PGXSubmissionsRepository) Recent(ctx context.Context, limit int) ([]entity.Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `
        SELECT id, kind, name, email, phone, zip_code,
               service_option, message, company_name, company_slug, submitted_at
        FROM submissions
        ORDER BY submitted_at DESC
        LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	defer rows.Close()

	var submissions []entity.Submission
	for rows.Next() {
		var s entity.Submission
		if err := rows.Scan(
			&s.ID, &s.Kind, &s.Name, &s.Email, &s.Phone, &s.ZipCode,
			&s.ServiceOption, &s.Message, &s.CompanyName, &s.CompanySlug, &s.SubmittedAt,
		); err != nil {
			return nil, fmt.Errorf("scan submission: %w", err)
		}
		submissions = append(submissions, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate submissions: %w", err)
	}

	return submissions, nil
}
