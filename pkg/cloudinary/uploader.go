package cloudinary

import (
	"bytes"
	"context"
	"path"
	"strings"

	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	cld "github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

type CloudinaryUploader struct {
	cld *cld.Cloudinary
}

func NewCloudinaryUploader(cloud *cld.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cloud}
}

func (u *CloudinaryUploader) Upload(
	ctx context.Context,
	folder string,
	filename string,
	data []byte,
	contentType string,
) (*interfaces.UploadResult, error) {

	rt := resourceType(contentType)
	res, err := u.cld.Upload.Upload(
		ctx,
		bytes.NewReader(data),
		uploader.UploadParams{
			Folder:       folder,
			PublicID:     uniquePublicID(filename, rt),
			ResourceType: rt,
		},
	)
	if err != nil {
		return nil, err
	}

	return &interfaces.UploadResult{
		URL:      res.SecureURL,
		PublicID: res.PublicID,
	}, nil
}

func (u *CloudinaryUploader) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	_, err := u.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID,
	})
	return err
}

// uniquePublicID keeps the client's filename readable but appends a random
// suffix so two uploads of the same name never overwrite each other. Raw
// assets keep their extension because cloudinary serves them verbatim.
func uniquePublicID(filename, resourceType string) string {
	ext := path.Ext(filename)
	base := strings.TrimSuffix(filename, ext)
	if base == "" {
		base = "file"
	}
	id := base + "-" + uuid.NewString()
	if resourceType == "raw" {
		id += ext
	}
	return id
}

// PDFs and word documents must go up as raw assets or cloudinary mangles them.
func resourceType(contentType string) string {
	if strings.HasPrefix(contentType, "image/") {
		return "image"
	}
	return "raw"
}
