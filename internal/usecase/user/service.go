package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"job-portal/internal/domain"
	"job-portal/internal/domain/user"

	"github.com/google/uuid"
)

type UpdateProfileInput struct {
	Name      *string
	About     *string
	Location  *string
	Skills    *[]string
	Education *string
}

type Usecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error)
}

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (user.User, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, mapRepoError(err)
	}
	return sanitizeUser(u), nil
}

// UpdateProfile merges the provided fields; omitted fields keep their value.
func (s *Service) UpdateProfile(ctx context.Context, userID uuid.UUID, in UpdateProfileInput) (user.User, error) {
	patch := user.ProfilePatch{
		Name:      trimmed(in.Name),
		About:     trimmed(in.About),
		Location:  trimmed(in.Location),
		Education: trimmed(in.Education),
	}
	if in.Skills != nil {
		skills := user.CleanSkills(*in.Skills)
		patch.Skills = &skills
	}

	if err := user.ValidatePatch(patch); err != nil {
		return user.User{}, err
	}
	if patch.Empty() {
		return s.GetProfile(ctx, userID)
	}

	u, err := s.users.UpdateProfile(ctx, userID, patch)
	if err != nil {
		return user.User{}, mapRepoError(err)
	}
	return sanitizeUser(u), nil
}

func mapRepoError(err error) error {
	if errors.Is(err, user.ErrNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%w: %v", domain.ErrUnknown, err)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}
