package job

import (
	"strings"

	"job-portal/internal/domain"
)

func ValidExperience(v string) bool {
	for _, e := range ExperienceLevels {
		if e == v {
			return true
		}
	}
	return false
}

// Validate checks a fully built job. Every field except Image is required.
func Validate(j Job) error {
	v := &domain.ValidationError{}
	required := []struct {
		field string
		value string
	}{
		{"company", j.Company},
		{"title", j.Title},
		{"role", j.Role},
		{"location", j.Location},
		{"salary", j.Salary},
		{"description", j.Description},
		{"postingDate", j.PostingDate},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			v.Add(r.field, "is required")
		}
	}

	switch {
	case strings.TrimSpace(j.Experience) == "":
		v.Add("experience", "is required")
	case !ValidExperience(j.Experience):
		v.Add("experience", "must be one of Fresher, 1+ years ... 15+ years")
	}

	if j.Skills == nil {
		v.Add("skills", "is required")
	}

	return v.Err()
}
