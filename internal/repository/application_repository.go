package repository

import (
	"context"
	"fmt"

	"job-portal/internal/database"
	"job-portal/internal/domain/application"
)

const applicationColumns = `id, job_id, job_title, name, email, phone, skills, tenth_mark, twelfth_mark,
	qualification, degree_percentage, willing_to_relocate, resume_file_name, resume_file_url, applied_at`

type PostgresApplicationRepository struct {
	db database.Querier
}

func NewPostgresApplicationRepository(db database.Querier) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	skills, err := encodeStrings(a.Skills)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO applications (`+applicationColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		a.ID, a.JobID, a.JobTitle, a.Name, a.Email, a.Phone, skills, a.TenthMark, a.TwelfthMark,
		a.Qualification, a.DegreePercentage, a.WillingToRelocate, a.Resume.FileName, a.Resume.FileURL, a.AppliedAt,
	)
	if err != nil {
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (r *PostgresApplicationRepository) ListByEmail(ctx context.Context, email string) ([]application.Application, error) {
	return r.list(ctx,
		`SELECT `+applicationColumns+` FROM applications WHERE email = $1 ORDER BY applied_at DESC, id DESC`,
		email,
	)
}

func (r *PostgresApplicationRepository) ListAll(ctx context.Context) ([]application.Application, error) {
	return r.list(ctx, `SELECT `+applicationColumns+` FROM applications ORDER BY applied_at DESC, id DESC`)
}

func (r *PostgresApplicationRepository) list(ctx context.Context, query string, args ...any) ([]application.Application, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		var skills []byte
		if err := rows.Scan(
			&a.ID, &a.JobID, &a.JobTitle, &a.Name, &a.Email, &a.Phone, &skills, &a.TenthMark, &a.TwelfthMark,
			&a.Qualification, &a.DegreePercentage, &a.WillingToRelocate, &a.Resume.FileName, &a.Resume.FileURL, &a.AppliedAt,
		); err != nil {
			return nil, err
		}
		s, err := decodeStrings(skills)
		if err != nil {
			return nil, fmt.Errorf("decode application skills: %w", err)
		}
		a.Skills = s
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
