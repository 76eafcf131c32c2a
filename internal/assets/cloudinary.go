package assets

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/google/uuid"
)

// Uploader pushes storefront images to Cloudinary and hands back the
// secure URL referenced by the product document.
type Uploader struct {
	cld    *cloudinary.Cloudinary
	preset string
}

func NewUploader(cloudName, apiKey, apiSecret, preset string) (*Uploader, error) {
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, err
	}
	return &Uploader{cld: cld, preset: preset}, nil
}

// UploadImage uploads a single image and returns its secure URL.
func (u *Uploader) UploadImage(ctx context.Context, file io.Reader, folder string) (string, error) {
	unique := true
	overwrite := false

	result, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder:         folder,
		PublicID:       uuid.NewString(),
		ResourceType:   "image",
		UploadPreset:   u.preset,
		UniqueFilename: &unique,
		Overwrite:      &overwrite,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if result.SecureURL == "" {
		return "", fmt.Errorf("upload successful but no URL returned")
	}

	return result.SecureURL, nil
}
