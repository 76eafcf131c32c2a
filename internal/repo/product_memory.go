package repo

import (
	"sort"

	"github.com/hidestyle/storefront/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// InMemoryProductRepository is an in-memory implementation of ProductRepository.
type InMemoryProductRepository struct {
	products []models.Product
}

// NewInMemoryProductRepository creates a new instance of InMemoryProductRepository.
func NewInMemoryProductRepository() *InMemoryProductRepository {
	return &InMemoryProductRepository{
		products: []models.Product{},
	}
}

// Create adds a new product to the repository, assigning its identifier.
func (r *InMemoryProductRepository) Create(product models.Product) (models.Product, error) {
	product.ID = primitive.NewObjectID()
	r.products = append(r.products, product)
	return product, nil
}

// List retrieves products matching the category filter in the given sort order.
func (r *InMemoryProductRepository) List(opts ListOptions) ([]models.Product, error) {
	matched := []models.Product{}
	for _, p := range r.products {
		if opts.Category != "" && p.Category != opts.Category {
			continue
		}
		matched = append(matched, p)
	}
	sortProducts(matched, NormalizeSort(opts.Sort))
	return matched, nil
}

func sortProducts(products []models.Product, order string) {
	switch order {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortFeatured:
		sort.SliceStable(products, func(i, j int) bool {
			if products[i].Featured != products[j].Featured {
				return products[i].Featured
			}
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].CreatedAt.After(products[j].CreatedAt)
		})
	}
}

// GetByID retrieves a product by its ID.
func (r *InMemoryProductRepository) GetByID(id primitive.ObjectID) (models.Product, error) {
	for _, p := range r.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Update replaces the mutable fields of an existing product.
func (r *InMemoryProductRepository) Update(product models.Product) (models.Product, error) {
	for i, p := range r.products {
		if p.ID == product.ID {
			product.CreatedAt = p.CreatedAt
			r.products[i] = product
			return product, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the repository by its ID.
func (r *InMemoryProductRepository) Delete(id primitive.ObjectID) error {
	for i, p := range r.products {
		if p.ID == id {
			r.products = append(r.products[:i], r.products[i+1:]...)
			return nil
		}
	}
	return ErrProductNotFound
}

func (r *InMemoryProductRepository) Clear() {
	r.products = []models.Product{}
}
