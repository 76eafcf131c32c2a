package repo

import (
	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sort orders accepted by List. Anything else normalizes to SortNewest.
const (
	SortNewest    = "newest"
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortFeatured  = "featured"
)

// NormalizeSort maps an arbitrary sort string onto the supported set,
// falling back to newest-first.
func NormalizeSort(s string) string {
	switch s {
	case SortPriceAsc, SortPriceDesc, SortFeatured:
		return s
	default:
		return SortNewest
	}
}

// ListOptions narrows and orders a product listing. Category is an
// exact-match filter; empty means all categories.
type ListOptions struct {
	Category string
	Sort     string
}

// ProductRepository defines the interface for catalog data operations.
type ProductRepository interface {
	Create(product models.Product) (models.Product, error)
	List(opts ListOptions) ([]models.Product, error)
	GetByID(id primitive.ObjectID) (models.Product, error)
	Update(product models.Product) (models.Product, error)
	Delete(id primitive.ObjectID) error
}
