package repo

// CatalogStats backs the admin dashboard summary cards.
type CatalogStats struct {
	TotalProducts   int `json:"total_products"`
	TotalStock      int `json:"total_stock"`
	FeaturedCount   int `json:"featured_count"`
	OutOfStockCount int `json:"out_of_stock_count"`
}

type StatsRepository interface {
	GetCatalogStats() (CatalogStats, error)
}

// ProductStatsRepository derives catalog stats from any ProductRepository.
type ProductStatsRepository struct {
	products ProductRepository
}

func NewProductStatsRepository(products ProductRepository) *ProductStatsRepository {
	return &ProductStatsRepository{products: products}
}

func (r *ProductStatsRepository) GetCatalogStats() (CatalogStats, error) {
	s := CatalogStats{}

	products, err := r.products.List(ListOptions{})
	if err != nil {
		return s, err
	}

	s.TotalProducts = len(products)
	for _, p := range products {
		s.TotalStock += p.Stock
		if p.Featured {
			s.FeaturedCount++
		}
		if p.Stock == 0 {
			s.OutOfStockCount++
		}
	}

	return s, nil
}
