package domain

import (
	"time"

	"gorm.io/gorm"
)

type ApplicationStatus string

const (
	StatusApplied           ApplicationStatus = "applied"
	StatusUnderReview       ApplicationStatus = "under-review"
	StatusOfferReceived     ApplicationStatus = "offer-received"
	StatusEnrolled          ApplicationStatus = "enrolled"
	StatusReportedToCollege ApplicationStatus = "reported-to-college"
	StatusRejected          ApplicationStatus = "rejected"
)

// statusOrder holds the forward progression. Rejected sits outside the
// order and is reachable from any non-terminal state.
var statusOrder = map[ApplicationStatus]int{
	StatusApplied:           0,
	StatusUnderReview:       1,
	StatusOfferReceived:     2,
	StatusEnrolled:          3,
	StatusReportedToCollege: 4,
}

func ValidStatus(s ApplicationStatus) bool {
	if s == StatusRejected {
		return true
	}
	_, ok := statusOrder[s]
	return ok
}

func TerminalStatus(s ApplicationStatus) bool {
	return s == StatusRejected || s == StatusReportedToCollege
}

// CanTransition reports whether an admin may move an application from one
// status to another: forward moves only (skipping stages is allowed), and
// rejection from any non-terminal state. Terminal states are frozen.
func CanTransition(from, to ApplicationStatus) bool {
	if !ValidStatus(from) || !ValidStatus(to) || from == to {
		return false
	}
	if TerminalStatus(from) {
		return false
	}
	if to == StatusRejected {
		return true
	}
	return statusOrder[to] > statusOrder[from]
}

type PersonalInfo struct {
	FullName       string `json:"full_name"`
	DateOfBirth    string `json:"date_of_birth"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passport_number"`
}

type AcademicInfo struct {
	HighestQualification string  `json:"highest_qualification"`
	Institution          string  `json:"institution"`
	GPA                  float64 `json:"gpa"`
	GraduationYear       int     `json:"graduation_year"`
}

type Application struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	UserID           uint   `gorm:"not null;index" json:"user_id"`
	UniversityID     *uint  `json:"university_id,omitempty"`
	CustomUniversity string `gorm:"type:varchar(255)" json:"custom_university,omitempty"`
	Course           string `gorm:"type:varchar(255);not null" json:"course"`
	Intake           string `gorm:"type:varchar(100);not null" json:"intake"`

	// snapshots copied from the profile at submission time, never live-linked
	PersonalInfo PersonalInfo     `gorm:"serializer:json;type:jsonb" json:"personal_info"`
	AcademicInfo AcademicInfo     `gorm:"serializer:json;type:jsonb" json:"academic_info"`
	Documents    []DocumentRecord `gorm:"serializer:json;type:jsonb" json:"documents"`

	Status     ApplicationStatus `gorm:"type:varchar(30);not null;default:applied" json:"status"`
	AdminNotes string            `gorm:"type:text" json:"admin_notes"`

	ApplicationFee float64    `json:"application_fee,omitempty"`
	IsPaid         bool       `gorm:"default:false" json:"is_paid"`
	OfferLetter    string     `gorm:"type:text" json:"offer_letter,omitempty"`
	EnrollmentDate *time.Time `json:"enrollment_date,omitempty"`

	gorm.Model
}
