package repository

import (
	"context"
	"fmt"

	"job-portal/internal/database"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

const userColumns = `id, name, email, password_hash, role, about, location, skills, education, created_at, updated_at`

type PostgresUserRepository struct {
	db database.Querier
}

func NewPostgresUserRepository(db database.Querier) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	skills, err := encodeStrings(u.Skills)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Role, u.About, u.Location, skills, u.Education, u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		if database.IsNoRows(err) {
			return false, nil
		}
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch user.ProfilePatch) (user.User, error) {
	var skills any
	if patch.Skills != nil {
		b, err := encodeStrings(*patch.Skills)
		if err != nil {
			return user.User{}, err
		}
		skills = b
	}

	row := r.db.QueryRow(ctx,
		`UPDATE users SET
			name = COALESCE($2, name),
			about = COALESCE($3, about),
			location = COALESCE($4, location),
			skills = COALESCE($5, skills),
			education = COALESCE($6, education),
			updated_at = now()
		 WHERE id = $1
		 RETURNING `+userColumns,
		id, patch.Name, patch.About, patch.Location, skills, patch.Education,
	)
	return scanUser(row)
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	var skills []byte
	if err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role,
		&u.About, &u.Location, &skills, &u.Education, &u.CreatedAt, &u.UpdatedAt,
	); err != nil {
		if database.IsNoRows(err) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	s, err := decodeStrings(skills)
	if err != nil {
		return user.User{}, fmt.Errorf("decode user skills: %w", err)
	}
	u.Skills = s
	return u, nil
}
