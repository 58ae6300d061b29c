// Package search filters a category's product list by free-text query. The
// filter is pure and synchronous: the category page recomputes it on every
// keystroke over already-loaded data.
package search

import (
	"strings"

	"github.com/apexgrid/gridwear/internal/catalog"
)

// Filter returns the products whose name or description contains the query
// as a case-insensitive substring, preserving input order. An empty or
// all-whitespace query returns the input unfiltered.
func Filter(products []catalog.Product, query string) []catalog.Product {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return products
	}

	out := []catalog.Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.Description), query) {
			out = append(out, p)
		}
	}
	return out
}
