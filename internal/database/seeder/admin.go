package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"job-portal/internal/database"
	"job-portal/internal/domain/user"
	"job-portal/internal/pkg/password"
	"job-portal/internal/repository"
)

const defaultAdminName = "Administrator"

// AdminSeeder creates one admin account when the email is not yet taken.
// Empty credentials make it a no-op.
type AdminSeeder struct {
	DisplayName string
	Email       string
	Password    string
	Hasher      password.Hasher
}

func (s AdminSeeder) Name() string { return "admin_user" }

func (s AdminSeeder) Run(ctx context.Context, db database.DB) error {
	email := user.NormalizeEmail(s.Email)
	if email == "" || s.Password == "" {
		return nil
	}
	name := strings.TrimSpace(s.DisplayName)
	if name == "" {
		name = defaultAdminName
	}
	if err := user.ValidateRegistration(name, email, s.Password, user.RoleAdmin); err != nil {
		return err
	}
	if s.Hasher == nil {
		return fmt.Errorf("nil hasher")
	}

	hash, err := s.Hasher.Hash(s.Password)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	admin := user.User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         user.RoleAdmin,
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return database.WithTx(ctx, db, func(q database.Querier) error {
		users := repository.NewPostgresUserRepository(q)
		exists, err := users.ExistsByEmail(ctx, email)
		if err != nil {
			return err
		}
		if exists {
			return nil
		}
		return users.Create(ctx, admin)
	})
}
