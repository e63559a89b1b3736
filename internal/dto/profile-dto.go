package dto

import "github.com/GoAbroadHQ/portal_service/internal/domain"

type UserResponse struct {
	ID      uint           `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	IsAdmin bool           `json:"is_admin"`
	Profile domain.Profile `json:"profile"`
}

// UpdateProfileRequest merges into the stored profile: nil means "leave as
// is", a present value overwrites. Matches the PUT /api/profile/kyc body.
type UpdateProfileRequest struct {
	DateOfBirth    *string `json:"date_of_birth,omitempty"`
	Nationality    *string `json:"nationality,omitempty"`
	PassportNumber *string `json:"passport_number,omitempty"`
	Address        *string `json:"address,omitempty"`

	EmergencyContact *EmergencyContactInput `json:"emergency_contact,omitempty"`
	Academic         *AcademicInput         `json:"academic,omitempty"`
}

type EmergencyContactInput struct {
	Name         *string `json:"name,omitempty"`
	Phone        *string `json:"phone,omitempty"`
	Relationship *string `json:"relationship,omitempty"`
}

type AcademicInput struct {
	HighestQualification *string  `json:"highest_qualification,omitempty"`
	Institution          *string  `json:"institution,omitempty"`
	GPA                  *float64 `json:"gpa,omitempty"`
	GraduationYear       *int     `json:"graduation_year,omitempty"`
	FieldOfStudy         *string  `json:"field_of_study,omitempty"`
}

type ProfileStatusResponse struct {
	ProfileComplete bool           `json:"profile_complete"`
	Profile         domain.Profile `json:"profile"`
}

type PendingDocumentsResponse struct {
	Pending  []string `json:"pending"`
	Total    int      `json:"total"`
	Uploaded int      `json:"uploaded"`
}
