package application

import (
	"regexp"

	"github.com/google/uuid"

	"job-portal/internal/domain"
	"job-portal/internal/domain/user"
)

const PhonePattern = `^[0-9]{10}$`

var phoneRe = regexp.MustCompile(PhonePattern)

// Validate expects a normalized submission.
func (s Submission) Validate() error {
	v := &domain.ValidationError{}

	switch {
	case s.JobID == "":
		v.Add("jobId", "is required")
	default:
		if _, err := uuid.Parse(s.JobID); err != nil {
			v.Add("jobId", "must be a valid job id")
		}
	}
	if s.JobTitle == "" {
		v.Add("jobTitle", "is required")
	}
	if s.Name == "" {
		v.Add("name", "is required")
	}
	switch {
	case s.Email == "":
		v.Add("email", "is required")
	case !user.ValidEmail(s.Email):
		v.Add("email", "Please enter a valid email")
	}
	switch {
	case s.Phone == "":
		v.Add("phone", "is required")
	case !phoneRe.MatchString(s.Phone):
		v.Add("phone", "Please enter a valid 10-digit phone number")
	}
	if s.Skills == nil {
		v.Add("skills", "is required")
	}
	checkPercent(v, "tenthMark", s.TenthMark)
	checkPercent(v, "twelfthMark", s.TwelfthMark)
	checkPercent(v, "degreePercentage", s.DegreePercentage)
	if s.Qualification == "" {
		v.Add("qualification", "is required")
	}

	return v.Err()
}

func checkPercent(v *domain.ValidationError, field string, p *float64) {
	if p == nil {
		v.Add(field, "is required")
		return
	}
	if *p < 0 || *p > 100 {
		v.Add(field, "must be between 0 and 100")
	}
}
