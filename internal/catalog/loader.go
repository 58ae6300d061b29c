package catalog

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type catalogFile struct {
	Categories []Category    `yaml:"categories"`
	Products   []productSpec `yaml:"products"`
}

// productSpec carries the price as a string so the file can say "89" or
// "89.50" without floating-point parsing in between.
type productSpec struct {
	ID          int    `yaml:"id"`
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Image       string `yaml:"image"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// Load reads a catalog from a YAML file. The file replaces the built-in seed
// data entirely; it is read once at startup and the result is immutable.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}

	products := make([]Product, 0, len(f.Products))
	for _, spec := range f.Products {
		price, err := decimal.NewFromString(spec.Price)
		if err != nil {
			return nil, fmt.Errorf("invalid price %q for product %q: %w", spec.Price, spec.Name, err)
		}
		products = append(products, Product{
			ID:          spec.ID,
			Name:        spec.Name,
			Price:       price,
			Image:       spec.Image,
			Category:    spec.Category,
			Description: spec.Description,
		})
	}

	c, err := New(f.Categories, products)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog in %s: %w", path, err)
	}
	return c, nil
}
