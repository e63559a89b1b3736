package cloudinary

import (
	"github.com/cloudinary/cloudinary-go/v2"
)

// New reads CLOUDINARY_URL from the environment.
func New(cloudinaryURL string) (*cloudinary.Cloudinary, error) {
	if cloudinaryURL != "" {
		return cloudinary.NewFromURL(cloudinaryURL)
	}
	return cloudinary.New()
}
