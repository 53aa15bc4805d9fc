// Package catalog holds the in-memory product catalog.
//
// The catalog is loaded once from a JSON file at process startup and is never
// mutated afterwards, so the same Catalog value can be shared across
// concurrent request handlers without any locking.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultCurrency is rendered for products that do not declare their own.
const DefaultCurrency = "₦"

// Product is a single catalog entry. Only Name and Price are required in the
// source file; the remaining fields render as "N/A" when absent. Duplicate
// names are permitted.
type Product struct {
	Name           string  `json:"name"`
	Price          float64 `json:"price"`
	Currency       string  `json:"currency,omitempty"`
	Specifications string  `json:"specifications,omitempty"`
	Features       string  `json:"features,omitempty"`
	Description    string  `json:"description,omitempty"`
}

// Catalog is an ordered, read-only sequence of products. Match results
// preserve this order.
type Catalog []Product

// Load reads and validates the product catalog from a JSON file. A missing or
// malformed file is a startup-aborting error; there is no lazy reload.
func Load(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	var products Catalog
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	for i, p := range products {
		if p.Name == "" {
			return nil, fmt.Errorf("catalog entry %d has no name", i)
		}
		if p.Price < 0 {
			return nil, fmt.Errorf("catalog entry %q has a negative price", p.Name)
		}
	}

	return products, nil
}
