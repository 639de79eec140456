package search

import "strings"

// synonyms widens common query terms for better recall on a small catalog.
// Static configuration data, not learned from product content.
var synonyms = map[string][]string{
	"phone":   {"iphone", "android", "mobile", "smartphone", "cell"},
	"laptop":  {"macbook", "computer", "notebook", "pc"},
	"book":    {"novel", "reading", "literature", "textbook"},
	"jacket":  {"coat", "outerwear", "clothing", "apparel"},
	"vintage": {"antique", "retro", "classic", "old"},
	"table":   {"furniture", "desk", "surface"},
	"pot":     {"planter", "container", "garden", "plant"},
	"racket":  {"tennis", "sports", "equipment"},
}

// Expand returns the lowercased query plus every related term from the synonym
// table. Lookup is symmetric: a table key found inside the query pulls in its
// values, and a value found inside the query pulls in the key and its siblings.
// Callers treat the result as a set; order carries no meaning.
func Expand(query string) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	terms := []string{query}
	seen := map[string]bool{query: true}
	add := func(t string) {
		if !seen[t] {
			seen[t] = true
			terms = append(terms, t)
		}
	}
	for key, values := range synonyms {
		if strings.Contains(query, key) {
			for _, v := range values {
				add(v)
			}
		}
		for _, v := range values {
			if strings.Contains(query, v) {
				add(key)
				for _, w := range values {
					add(w)
				}
				break
			}
		}
	}
	return terms
}
