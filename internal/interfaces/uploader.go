package interfaces

import "context"

type UploadResult struct {
	URL      string
	PublicID string
}

// Uploader is the storage indirection: one backend is chosen at process
// start (cloudinary or local disk) and injected everywhere files move.
type Uploader interface {
	Upload(ctx context.Context, folder, filename string, data []byte, contentType string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}
