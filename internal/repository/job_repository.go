package repository

import (
	"context"
	"fmt"

	"job-portal/internal/database"
	"job-portal/internal/domain/job"

	"github.com/google/uuid"
)

const jobColumns = `id, company, title, role, location, experience, skills, salary, description, image, posting_date, created_at, updated_at`

type PostgresJobRepository struct {
	db database.Querier
}

func NewPostgresJobRepository(db database.Querier) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) Create(ctx context.Context, j job.Job) error {
	skills, err := encodeStrings(j.Skills)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (`+jobColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		j.ID, j.Company, j.Title, j.Role, j.Location, j.Experience, skills,
		j.Salary, j.Description, j.Image, j.PostingDate, j.CreatedAt, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

func (r *PostgresJobRepository) List(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 ORDER BY posting_date DESC, created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetByID(ctx context.Context, id uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
	j, err := scanJob(row)
	if err != nil {
		if database.IsNoRows(err) {
			return job.Job{}, job.ErrNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func (r *PostgresJobRepository) Update(ctx context.Context, j job.Job) error {
	skills, err := encodeStrings(j.Skills)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE jobs SET
			company = $2, title = $3, role = $4, location = $5, experience = $6, skills = $7,
			salary = $8, description = $9, image = $10, posting_date = $11, updated_at = $12
		 WHERE id = $1`,
		j.ID, j.Company, j.Title, j.Role, j.Location, j.Experience, skills,
		j.Salary, j.Description, j.Image, j.PostingDate, j.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func (r *PostgresJobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if n == 0 {
		return job.ErrNotFound
	}
	return nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	var skills []byte
	if err := row.Scan(
		&j.ID, &j.Company, &j.Title, &j.Role, &j.Location, &j.Experience, &skills,
		&j.Salary, &j.Description, &j.Image, &j.PostingDate, &j.CreatedAt, &j.UpdatedAt,
	); err != nil {
		return job.Job{}, err
	}
	s, err := decodeStrings(skills)
	if err != nil {
		return job.Job{}, fmt.Errorf("decode job skills: %w", err)
	}
	j.Skills = s
	return j, nil
}
