package handlers

import (
	"fmt"
	"mime/multipart"

	"github.com/GoAbroadHQ/portal_service/internal/dto"
	"github.com/GoAbroadHQ/portal_service/pkg/utils"
)

const maxUploadSize = 10 * 1024 * 1024 // per-file ceiling

// readFormFile drains one multipart file into memory, enforcing the size
// ceiling while reading.
func readFormFile(fh *multipart.FileHeader, docType string, maxSize int64) (*dto.FileInput, error) {
	if fh.Size > maxSize {
		return nil, fmt.Errorf("file %s too large (max %d bytes)", fh.Filename, maxSize)
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("cannot open uploaded file %s", fh.Filename)
	}
	defer f.Close()

	data, err := utils.ReadAllLimit(f, maxSize)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", fh.Filename, err)
	}

	return &dto.FileInput{
		DocType:     docType,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}
