package user

import (
	"errors"
	"regexp"
	"strings"

	"job-portal/internal/domain"
)

// EmailPattern is shared by users and applications.
const EmailPattern = `^[\w.-]+@([\w-]+\.)+[\w-]{2,4}$`

var emailRe = regexp.MustCompile(EmailPattern)

// MaxPasswordBytes is bcrypt's input limit.
const MaxPasswordBytes = 72

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidEmail(email string) bool {
	return emailRe.MatchString(email)
}

func ValidRole(role string) bool {
	switch role {
	case RoleApplicant, RoleAdmin:
		return true
	default:
		return false
	}
}

// ValidateRegistration expects an already normalized email and role.
func ValidateRegistration(name, email, password, role string) error {
	v := &domain.ValidationError{}
	if strings.TrimSpace(name) == "" {
		v.Add("name", "is required")
	}
	switch {
	case email == "":
		v.Add("email", "is required")
	case !ValidEmail(email):
		v.Add("email", "must be a valid email address")
	}
	switch {
	case password == "":
		v.Add("password", "is required")
	case len(password) > MaxPasswordBytes:
		v.Add("password", "must be at most 72 bytes")
	}
	if !ValidRole(role) {
		v.Add("role", "must be one of applicant, admin")
	}
	return v.Err()
}

// ValidateSignup applies ValidateRegistration and then restricts the public
// sign-up path to applicants. Admin accounts are provisioned by the seeder.
func ValidateSignup(name, email, password, role string) error {
	err := ValidateRegistration(name, email, password, role)
	if role == RoleApplicant || !ValidRole(role) {
		return err
	}

	v := &domain.ValidationError{}
	if !errors.As(err, &v) {
		v = &domain.ValidationError{}
	}
	v.Add("role", "must be applicant")
	return v.Err()
}

func ValidatePatch(p ProfilePatch) error {
	v := &domain.ValidationError{}
	if p.Name != nil && strings.TrimSpace(*p.Name) == "" {
		v.Add("name", "must not be empty")
	}
	return v.Err()
}

// SplitSkills turns "Go, Rust , C++" into [Go Rust C++], dropping empty entries.
func SplitSkills(raw string) []string {
	out := make([]string, 0)
	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func CleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}
