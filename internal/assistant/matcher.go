package assistant

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/avabot/assistant/internal/catalog"
)

// matchThreshold is the hard similarity cutoff: a product whose partial-ratio
// score against the query is 70 or above is a candidate, 69 is not. It is a
// named constant for clarity, not a tunable.
const matchThreshold = 70

// Matcher finds catalog products whose names fuzzily match a query. Partial
// ratio scoring is tolerant of the query carrying extra words beyond the
// product name ("I want to buy a blue shirt" still scores high against
// "blue shirt").
type Matcher struct {
	products catalog.Catalog

	// score computes a 0-100 similarity between the query and a lowercased
	// product name. Swappable in tests to pin down the threshold behavior.
	score func(query, name string) int
}

// NewMatcher builds a matcher over an immutable product catalog.
func NewMatcher(products catalog.Catalog) *Matcher {
	return &Matcher{
		products: products,
		score:    fuzzy.PartialRatio,
	}
}

// Match returns the products scoring at or above the threshold, in catalog
// order. When a price range is given, a candidate is kept only if its price
// lies within the inclusive [Low, High] bound; a perfect name match priced
// outside the range is still excluded. An empty result is a normal outcome.
func (m *Matcher) Match(query string, priceRange *PriceRange) []catalog.Product {
	var matched []catalog.Product
	for _, p := range m.products {
		if m.score(query, strings.ToLower(p.Name)) < matchThreshold {
			continue
		}
		if priceRange != nil {
			if p.Price < float64(priceRange.Low) || p.Price > float64(priceRange.High) {
				continue
			}
		}
		matched = append(matched, p)
	}
	return matched
}
