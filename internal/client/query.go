package client

import (
	"strings"

	"github.com/hidestyle/storefront/internal/models"
)

// MaxPriceCeiling is the upper bound of the shop page's price slider.
const MaxPriceCeiling = 5000

// FilterByMaxPrice restricts a fetched set to products priced at or below
// the ceiling. Pure and idempotent; layered on top of the server-side
// category/sort filter, never sent to the server.
func FilterByMaxPrice(products []models.Product, ceiling float64) []models.Product {
	filtered := []models.Product{}
	for _, p := range products {
		if p.Price <= ceiling {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Search applies the admin dashboard's case-insensitive substring match
// against product name or category.
func Search(products []models.Product, query string) []models.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return products
	}

	matched := []models.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Category), q) {
			matched = append(matched, p)
		}
	}
	return matched
}
