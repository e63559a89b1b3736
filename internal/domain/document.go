package domain

import "time"

type DocumentSource string

const (
	DocumentSourceKYC    DocumentSource = "kyc"
	DocumentSourceUpload DocumentSource = "upload"
)

type DocumentStatus string

const (
	DocumentStatusPending  DocumentStatus = "pending"
	DocumentStatusUploaded DocumentStatus = "uploaded"
	DocumentStatusVerified DocumentStatus = "verified"
)

// DocumentRecord is the single shape for every stored document reference,
// whether it was captured during KYC or attached to an application.
// PublicID is the storage handle used for deletion: the cloudinary public
// id or the relative path under the local upload dir.
type DocumentRecord struct {
	Source     DocumentSource `json:"source"`
	Type       string         `json:"type"`
	Name       string         `json:"name"`
	URL        string         `json:"url"`
	PublicID   string         `json:"public_id,omitempty"`
	Status     DocumentStatus `json:"status"`
	UploadedAt time.Time      `json:"uploaded_at"`
}
