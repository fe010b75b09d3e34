package application

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const resumeKeySuffix = "_resume"

type Resume struct {
	FileName string `json:"fileName"`
	FileURL  string `json:"fileUrl"`
}

// Application is immutable once stored.
type Application struct {
	ID                uuid.UUID `json:"id"`
	JobID             uuid.UUID `json:"jobId"`
	JobTitle          string    `json:"jobTitle"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Skills            []string  `json:"skills"`
	TenthMark         float64   `json:"tenthMark"`
	TwelfthMark       float64   `json:"twelfthMark"`
	Qualification     string    `json:"qualification"`
	DegreePercentage  float64   `json:"degreePercentage"`
	WillingToRelocate bool      `json:"willingToRelocate"`
	Resume            Resume    `json:"resume"`
	AppliedAt         time.Time `json:"appliedAt"`
}

// Submission is the applicant supplied part of an application, decoded from
// the applicationData form field.
type Submission struct {
	JobID             string   `json:"jobId"`
	JobTitle          string   `json:"jobTitle"`
	Name              string   `json:"name"`
	Email             string   `json:"email"`
	Phone             string   `json:"phone"`
	Skills            []string `json:"skills"`
	TenthMark         *float64 `json:"tenthMark"`
	TwelfthMark       *float64 `json:"twelfthMark"`
	Qualification     string   `json:"qualification"`
	DegreePercentage  *float64 `json:"degreePercentage"`
	WillingToRelocate *bool    `json:"willingToRelocate"`
}

// Normalize trims free text and lowercases the email.
func (s Submission) Normalize() Submission {
	s.JobID = strings.TrimSpace(s.JobID)
	s.JobTitle = strings.TrimSpace(s.JobTitle)
	s.Name = strings.TrimSpace(s.Name)
	s.Email = strings.ToLower(strings.TrimSpace(s.Email))
	s.Phone = strings.TrimSpace(s.Phone)
	s.Qualification = strings.TrimSpace(s.Qualification)
	if s.Skills != nil {
		skills := make([]string, 0, len(s.Skills))
		for _, sk := range s.Skills {
			if sk = strings.TrimSpace(sk); sk != "" {
				skills = append(skills, sk)
			}
		}
		s.Skills = skills
	}
	return s
}

// Build assumes Validate passed.
func (s Submission) Build(id uuid.UUID, resume Resume, appliedAt time.Time) Application {
	jobID, _ := uuid.Parse(s.JobID)
	a := Application{
		ID:            id,
		JobID:         jobID,
		JobTitle:      s.JobTitle,
		Name:          s.Name,
		Email:         s.Email,
		Phone:         s.Phone,
		Skills:        append([]string{}, s.Skills...),
		Qualification: s.Qualification,
		Resume:        resume,
		AppliedAt:     appliedAt.UTC(),
	}
	if s.TenthMark != nil {
		a.TenthMark = *s.TenthMark
	}
	if s.TwelfthMark != nil {
		a.TwelfthMark = *s.TwelfthMark
	}
	if s.DegreePercentage != nil {
		a.DegreePercentage = *s.DegreePercentage
	}
	if s.WillingToRelocate != nil {
		a.WillingToRelocate = *s.WillingToRelocate
	}
	return a
}

// ResumeKey derives the storage destination key from the applicant name:
// "Jane  Q Doe" becomes "Jane_Q_Doe_resume".
func ResumeKey(name string) string {
	base := strings.Join(strings.Fields(name), "_")
	if base == "" {
		base = "applicant"
	}
	return base + resumeKeySuffix
}
