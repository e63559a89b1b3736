package domain

import (
	"time"

	"gorm.io/gorm"
)

type University struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"type:varchar(255);not null" json:"name"`
	Country     string `gorm:"type:varchar(100);not null;index" json:"country"`
	City        string `gorm:"type:varchar(100);not null" json:"city"`
	Ranking     int    `json:"ranking,omitempty"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Website     string `gorm:"type:varchar(255)" json:"website,omitempty"`
	Logo        string `gorm:"type:text" json:"logo,omitempty"`

	Courses               []Course              `gorm:"serializer:json;type:jsonb" json:"courses"`
	Scholarships          []Scholarship         `gorm:"serializer:json;type:jsonb" json:"scholarships"`
	Facilities            []string              `gorm:"serializer:json;type:jsonb" json:"facilities,omitempty"`
	AdmissionRequirements AdmissionRequirements `gorm:"serializer:json;type:jsonb" json:"admission_requirements"`
	ApplicationDeadlines  []IntakeDeadline      `gorm:"serializer:json;type:jsonb" json:"application_deadlines,omitempty"`

	// catalog entries are soft-disabled, never deleted
	IsActive bool `gorm:"default:true;index" json:"is_active"`
	gorm.Model
}

type Course struct {
	Name         string             `json:"name"`
	Duration     string             `json:"duration,omitempty"`
	TuitionFee   float64            `json:"tuition_fee,omitempty"`
	Requirements CourseRequirements `json:"requirements,omitempty"`
}

type CourseRequirements struct {
	MinGPA      float64 `json:"min_gpa,omitempty"`
	EnglishTest string  `json:"english_test,omitempty"`
	MinScore    float64 `json:"min_score,omitempty"`
}

type Scholarship struct {
	Name       string  `json:"name"`
	Amount     float64 `json:"amount,omitempty"`
	Percentage float64 `json:"percentage,omitempty"`
	MinGPA     float64 `json:"min_gpa"`
	Criteria   string  `json:"criteria,omitempty"`
}

type AdmissionRequirements struct {
	MinGPA      float64  `json:"min_gpa,omitempty"`
	EnglishTest string   `json:"english_test,omitempty"`
	Documents   []string `json:"documents,omitempty"`
}

type IntakeDeadline struct {
	Intake   string    `json:"intake"`
	Deadline time.Time `json:"deadline"`
}

// QualifyingScholarships returns the scholarships whose minimum GPA is met.
func (u *University) QualifyingScholarships(gpa float64) []Scholarship {
	var out []Scholarship
	for _, s := range u.Scholarships {
		if s.MinGPA <= gpa {
			out = append(out, s)
		}
	}
	return out
}
