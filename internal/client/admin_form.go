package client

import (
	"context"
	"io"
	"log"

	"github.com/hidestyle/storefront/internal/models"
)

// ImageUploader is the side-channel to the external asset host.
type ImageUploader interface {
	UploadImage(ctx context.Context, file io.Reader, folder string) (string, error)
}

// AdminForm mirrors the admin panel's product form: field state built up
// by the caller, an image upload side-channel, and a final submit that
// creates or updates depending on whether the product already has an id.
type AdminForm struct {
	Product models.Product

	catalog  *CatalogClient
	uploader ImageUploader
}

// NewAdminForm starts a form. Pass the existing product when editing, or
// nil when adding a new one.
func NewAdminForm(catalog *CatalogClient, uploader ImageUploader, existing *models.Product) *AdminForm {
	f := &AdminForm{catalog: catalog, uploader: uploader}
	if existing != nil {
		f.Product = *existing
	}
	if f.Product.Images == nil {
		f.Product.Images = []string{}
	}
	return f
}

// AttachImage uploads one file to the asset host immediately. On success
// the returned URL is appended to the form's image list; on failure the
// form state is left unchanged and the error is only logged.
func (f *AdminForm) AttachImage(ctx context.Context, file io.Reader) {
	url, err := f.uploader.UploadImage(ctx, file, "products")
	if err != nil {
		log.Printf("image upload failed: %v", err)
		return
	}
	f.Product.Images = append(f.Product.Images, url)
}

// Submit sends the form to the catalog API. The caller decides what to do
// with a failure; the form state is preserved either way.
func (f *AdminForm) Submit(ctx context.Context) (models.Product, error) {
	saved, err := f.catalog.Save(ctx, f.Product)
	if err != nil {
		return models.Product{}, err
	}
	f.Product = saved
	return saved, nil
}
