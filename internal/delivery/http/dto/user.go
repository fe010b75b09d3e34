package dto

import (
	"github.com/google/uuid"

	"job-portal/internal/domain/user"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest fields left out of the body are not changed.
type UpdateProfileRequest struct {
	Name      *string    `json:"name"`
	About     *string    `json:"about"`
	Location  *string    `json:"location"`
	Skills    *SkillList `json:"skills"`
	Education *string    `json:"education"`
}

type AuthResponse struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  string    `json:"role"`
	Token string    `json:"token"`
}

type UserProfileResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	About     string    `json:"about"`
	Location  string    `json:"location"`
	Skills    []string  `json:"skills"`
	Education string    `json:"education"`
}

func NewAuthResponse(u user.User, token string) AuthResponse {
	return AuthResponse{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, Token: token}
}

func NewUserProfileResponse(u user.User) UserProfileResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return UserProfileResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		About:     u.About,
		Location:  u.Location,
		Skills:    skills,
		Education: u.Education,
	}
}
