// Package search implements the catalog text matcher and structured filters:
// a recall-biased substring scan over a small in-memory candidate set. There
// is deliberately no index, no stemming and no scoring; ordering is left to
// the query orchestrator.
package search

import (
	"strings"

	"ecofinds/internal/domain"
)

// Search returns the candidates whose title, description or category match
// the query. An empty or all-whitespace query is a pass-through, not an
// exclusion. Matching candidates keep their relative order.
func Search(query string, candidates []domain.Product) []domain.Product {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return candidates
	}

	terms := Expand(q)
	words := strings.Fields(q)

	out := make([]domain.Product, 0, len(candidates))
	for _, p := range candidates {
		if matches(p, terms, words) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p domain.Product, terms, words []string) bool {
	text := strings.ToLower(p.Title + " " + p.Description + " " + p.Category)

	// Exact or synonym-expanded term anywhere in the searchable text.
	for _, t := range terms {
		if strings.Contains(text, t) {
			return true
		}
	}
	// Individual query words; words of 1-2 chars are too noisy to count.
	for _, w := range words {
		if len(w) > 2 && strings.Contains(text, w) {
			return true
		}
	}
	return false
}
