package job

import (
	"time"

	"github.com/google/uuid"
)

const DefaultImage = "https://via.placeholder.com/100"

// Experience bands accepted for a posting.
var ExperienceLevels = []string{
	"Fresher",
	"1+ years", "2+ years", "3+ years", "4+ years", "5+ years",
	"6+ years", "7+ years", "8+ years", "9+ years", "10+ years",
	"11+ years", "12+ years", "13+ years", "14+ years", "15+ years",
}

type Job struct {
	ID          uuid.UUID `json:"id"`
	Company     string    `json:"company"`
	Title       string    `json:"title"`
	Role        string    `json:"role"`
	Location    string    `json:"location"`
	Experience  string    `json:"experience"`
	Skills      []string  `json:"skills"`
	Salary      string    `json:"salary"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
	PostingDate string    `json:"postingDate"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Patch struct {
	Company     *string
	Title       *string
	Role        *string
	Location    *string
	Experience  *string
	Skills      *[]string
	Salary      *string
	Description *string
	Image       *string
	PostingDate *string
}

func (p Patch) Empty() bool {
	return p.Company == nil && p.Title == nil && p.Role == nil && p.Location == nil &&
		p.Experience == nil && p.Skills == nil && p.Salary == nil && p.Description == nil &&
		p.Image == nil && p.PostingDate == nil
}

func (p Patch) Apply(j Job) Job {
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&j.Company, p.Company)
	set(&j.Title, p.Title)
	set(&j.Role, p.Role)
	set(&j.Location, p.Location)
	set(&j.Experience, p.Experience)
	set(&j.Salary, p.Salary)
	set(&j.Description, p.Description)
	set(&j.Image, p.Image)
	set(&j.PostingDate, p.PostingDate)
	if p.Skills != nil {
		j.Skills = append([]string(nil), (*p.Skills)...)
	}
	return j
}
