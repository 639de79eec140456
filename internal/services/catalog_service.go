package services

import (
	"sort"
	"strings"

	"ecofinds/internal/domain"
	"ecofinds/internal/search"
	"ecofinds/internal/store"
)

// CatalogService is the single entry point from request parameters to an
// ordered result list: snapshot -> search -> filter -> stable sort.
type CatalogService struct {
	Products *store.Products
}

func NewCatalogService(products *store.Products) *CatalogService {
	return &CatalogService{Products: products}
}

// QueryParams are the recognized catalog query inputs. Unknown sort keys fall
// back to "newest"; unknown filter values simply match nothing.
type QueryParams struct {
	Q       string
	Filters search.Filters
	Sort    string // newest | oldest | price-low | price-high
}

func (s *CatalogService) Query(p QueryParams) []domain.Product {
	products := s.Products.All()
	if strings.TrimSpace(p.Q) != "" {
		products = search.Search(p.Q, products)
	}
	if !p.Filters.Empty() {
		products = search.Filter(p.Filters, products)
	}
	sortProducts(products, p.Sort)
	return products
}

func (s *CatalogService) Get(id string) (domain.Product, bool) {
	return s.Products.Get(id)
}

// sortProducts orders in place. The sort is stable so ties keep their prior
// relative order.
func sortProducts(products []domain.Product, key string) {
	switch key {
	case "price-low":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price < products[j].Price })
	case "price-high":
		sort.SliceStable(products, func(i, j int) bool { return products[i].Price > products[j].Price })
	case "oldest":
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.Before(products[j].CreatedAt) })
	default: // newest
		sort.SliceStable(products, func(i, j int) bool { return products[i].CreatedAt.After(products[j].CreatedAt) })
	}
}
