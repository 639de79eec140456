package search

import (
	"strings"

	"ecofinds/internal/domain"
)

// Filters holds the structured predicates of a catalog query. Zero values
// impose no constraint; price bounds use pointers so an explicit 0 still
// constrains.
type Filters struct {
	Category  string
	Condition string
	MinPrice  *float64
	MaxPrice  *float64
	Location  string
}

func (f Filters) Empty() bool {
	return f.Category == "" && f.Condition == "" && f.MinPrice == nil && f.MaxPrice == nil && f.Location == ""
}

// Filter keeps the candidates satisfying every present predicate. Category and
// condition compare case-insensitively; location is a case-insensitive
// substring match. Input order is preserved and the input is never mutated.
func Filter(f Filters, candidates []domain.Product) []domain.Product {
	if f.Empty() {
		return candidates
	}
	out := make([]domain.Product, 0, len(candidates))
	for _, p := range candidates {
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.Condition != "" && !strings.EqualFold(p.Condition, f.Condition) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Location != "" && !strings.Contains(strings.ToLower(p.Location), strings.ToLower(f.Location)) {
			continue
		}
		out = append(out, p)
	}
	return out
}
