package dto

import "github.com/GoAbroadHQ/portal_service/internal/domain"

type ApplicationSubmitRequest struct {
	UniversityID     *uint  `json:"university_id,omitempty"`
	CustomUniversity string `json:"custom_university,omitempty"`
	Course           string `json:"course" validate:"required"`
	Intake           string `json:"intake" validate:"required"`

	PersonalInfo domain.PersonalInfo `json:"personal_info"`
	AcademicInfo domain.AcademicInfo `json:"academic_info"`
}

// FileInput is a fully-read multipart file handed from handler to service.
type FileInput struct {
	DocType     string
	Filename    string
	ContentType string
	Data        []byte
}

type StatusUpdateRequest struct {
	Status     string `json:"status" validate:"required"`
	AdminNotes string `json:"admin_notes,omitempty"`
}

type AdminApplicationResponse struct {
	domain.Application
	ApplicantName  string `json:"applicant_name"`
	ApplicantEmail string `json:"applicant_email"`
	UniversityName string `json:"university_name,omitempty"`
}

type StatsResponse struct {
	TotalApplications    int64 `json:"total_applications"`
	PendingApplications  int64 `json:"pending_applications"`
	ApprovedApplications int64 `json:"approved_applications"`
	RejectedApplications int64 `json:"rejected_applications"`
}
