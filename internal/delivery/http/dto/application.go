package dto

import (
	"job-portal/internal/domain/application"
)

// ApplyRequest is the JSON carried by the applicationData multipart field.
type ApplyRequest struct {
	JobID             string    `json:"jobId"`
	JobTitle          string    `json:"jobTitle"`
	Name              string    `json:"name"`
	Email             string    `json:"email"`
	Phone             string    `json:"phone"`
	Skills            SkillList `json:"skills"`
	TenthMark         *float64  `json:"tenthMark"`
	TwelfthMark       *float64  `json:"twelfthMark"`
	Qualification     string    `json:"qualification"`
	DegreePercentage  *float64  `json:"degreePercentage"`
	WillingToRelocate *bool     `json:"willingToRelocate"`
}

type ApplyResponse struct {
	Message     string                  `json:"message"`
	Application application.Application `json:"application"`
}

func (r ApplyRequest) Submission() application.Submission {
	return application.Submission{
		JobID:             r.JobID,
		JobTitle:          r.JobTitle,
		Name:              r.Name,
		Email:             r.Email,
		Phone:             r.Phone,
		Skills:            []string(r.Skills),
		TenthMark:         r.TenthMark,
		TwelfthMark:       r.TwelfthMark,
		Qualification:     r.Qualification,
		DegreePercentage:  r.DegreePercentage,
		WillingToRelocate: r.WillingToRelocate,
	}
}
