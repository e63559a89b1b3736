package dto

import "github.com/GoAbroadHQ/portal_service/internal/domain"

type UniversityQuery struct {
	Country string
	Search  string
	Page    int
	Limit   int
}

type UniversityListResponse struct {
	Universities []domain.University `json:"universities"`
	Total        int64               `json:"total"`
	Pages        int64               `json:"pages"`
}

type UniversityUpsertRequest struct {
	Name        string `json:"name" validate:"required"`
	Country     string `json:"country" validate:"required"`
	City        string `json:"city" validate:"required"`
	Ranking     int    `json:"ranking,omitempty"`
	Description string `json:"description,omitempty"`
	Website     string `json:"website,omitempty"`
	Logo        string `json:"logo,omitempty"`

	Courses               []domain.Course              `json:"courses,omitempty"`
	Scholarships          []domain.Scholarship         `json:"scholarships,omitempty"`
	Facilities            []string                     `json:"facilities,omitempty"`
	AdmissionRequirements domain.AdmissionRequirements `json:"admission_requirements,omitempty"`
	ApplicationDeadlines  []domain.IntakeDeadline      `json:"application_deadlines,omitempty"`

	IsActive *bool `json:"is_active,omitempty"`
}

// ScholarshipMatch is one calculator result: the university plus only the
// scholarships the supplied GPA qualifies for.
type ScholarshipMatch struct {
	ID           uint                 `json:"id"`
	Name         string               `json:"name"`
	Country      string               `json:"country"`
	Scholarships []domain.Scholarship `json:"scholarships"`
}

type UniversitySuggestion struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country"`
}
