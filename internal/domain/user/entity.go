package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleApplicant = "applicant"
	RoleAdmin     = "admin"
)

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         string
	About        string
	Location     string
	Skills       []string
	Education    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProfilePatch is a partial profile update; nil fields are left untouched.
type ProfilePatch struct {
	Name      *string
	About     *string
	Location  *string
	Skills    *[]string
	Education *string
}

func (p ProfilePatch) Empty() bool {
	return p.Name == nil && p.About == nil && p.Location == nil && p.Skills == nil && p.Education == nil
}

func (p ProfilePatch) Apply(u User) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.About != nil {
		u.About = *p.About
	}
	if p.Location != nil {
		u.Location = *p.Location
	}
	if p.Skills != nil {
		u.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.Education != nil {
		u.Education = *p.Education
	}
	return u
}
