package dto

import (
	"strings"

	"job-portal/internal/domain/job"
)

type CreateJobRequest struct {
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Experience  string    `json:"experience"`
	Skills      SkillList `json:"skills"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	PostingDate string    `json:"postingDate"`
}

type UpdateJobRequest struct {
	Company     *string    `json:"company"`
	Title       *string    `json:"title"`
	Role        *string    `json:"role"`
	Location    *string    `json:"location"`
	Experience  *string    `json:"experience"`
	Skills      *SkillList `json:"skills"`
	Salary      *string    `json:"salary"`
	Description *string    `json:"description"`
	Image       *string    `json:"image"`
	PostingDate *string    `json:"postingDate"`
}

func (r UpdateJobRequest) Patch() job.Patch {
	return job.Patch{
		Company:     trimmed(r.Company),
		Title:       trimmed(r.Title),
		Role:        trimmed(r.Role),
		Location:    trimmed(r.Location),
		Experience:  trimmed(r.Experience),
		Skills:      r.Skills.Ptr(),
		Salary:      trimmed(r.Salary),
		Description: trimmed(r.Description),
		Image:       trimmed(r.Image),
		PostingDate: trimmed(r.PostingDate),
	}
}

type DeleteJobResponse struct {
	Message string `json:"message"`
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	s := strings.TrimSpace(*v)
	return &s
}
