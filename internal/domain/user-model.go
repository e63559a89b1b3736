package domain

import "gorm.io/gorm"

type User struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"type:varchar(255);not null" json:"name"`
	Email        string  `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string  `json:"-"`
	Phone        string  `gorm:"type:varchar(50)" json:"phone"`
	IsAdmin      bool    `gorm:"default:false" json:"is_admin"`
	Profile      Profile `gorm:"serializer:json;type:jsonb" json:"profile"`
	gorm.Model
}

// Profile is the KYC sub-document. It is stored as a single JSONB column so
// the whole profile is replaced atomically on every mutation.
type Profile struct {
	DateOfBirth      string           `json:"date_of_birth,omitempty"`
	Nationality      string           `json:"nationality,omitempty"`
	PassportNumber   string           `json:"passport_number,omitempty"`
	Address          string           `json:"address,omitempty"`
	EmergencyContact EmergencyContact `json:"emergency_contact,omitempty"`
	Academic         AcademicRecord   `json:"academic,omitempty"`
	Documents        []DocumentRecord `json:"documents,omitempty"`
	ProfileComplete  bool             `json:"profile_complete"`
}

type EmergencyContact struct {
	Name         string `json:"name,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `json:"relationship,omitempty"`
}

type AcademicRecord struct {
	HighestQualification string   `json:"highest_qualification,omitempty"`
	Institution          string   `json:"institution,omitempty"`
	GPA                  *float64 `json:"gpa,omitempty"`
	GraduationYear       int      `json:"graduation_year,omitempty"`
	FieldOfStudy         string   `json:"field_of_study,omitempty"`
}

// CheckProfileCompletion recomputes and stores the completion flag.
// Document presence is tracked separately and does not gate the flag.
func (p *Profile) CheckProfileCompletion() bool {
	p.ProfileComplete = p.DateOfBirth != "" &&
		p.Nationality != "" &&
		p.Academic.GPA != nil &&
		p.Academic.Institution != ""
	return p.ProfileComplete
}
