package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// Product is a single catalog item. Products are reference data: built once at
// startup and never mutated afterwards.
type Product struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
}

// Category groups products on the home page. Clickable gates whether the
// category can be browsed; non-clickable categories render as "coming soon".
type Category struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Image       string `json:"image" yaml:"image"`
	Clickable   bool   `json:"is_clickable" yaml:"is_clickable"`
}

// Catalog holds the fixed set of categories and products. It has no
// create/update/delete operations.
type Catalog struct {
	categories []Category
	products   []Product
	byID       map[int]int // product id -> index into products
}

// New builds a catalog from the given categories and products, preserving
// their order for all listing operations.
func New(categories []Category, products []Product) (*Catalog, error) {
	c := &Catalog{
		categories: make([]Category, len(categories)),
		products:   make([]Product, len(products)),
		byID:       make(map[int]int, len(products)),
	}
	copy(c.categories, categories)
	copy(c.products, products)

	seen := make(map[string]bool, len(categories))
	for _, cat := range c.categories {
		if cat.ID == "" {
			return nil, errors.New("category with empty id")
		}
		if seen[cat.ID] {
			return nil, errors.New("duplicate category id: " + cat.ID)
		}
		seen[cat.ID] = true
	}

	for i, p := range c.products {
		if _, dup := c.byID[p.ID]; dup {
			return nil, errors.New("duplicate product id in catalog: " + p.Name)
		}
		c.byID[p.ID] = i
	}
	return c, nil
}

// Categories returns all categories in catalog order.
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	copy(out, c.categories)
	return out
}

// CategoryByID returns the category with the given id, or ErrCategoryNotFound.
func (c *Catalog) CategoryByID(id string) (*Category, error) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			cat := c.categories[i]
			return &cat, nil
		}
	}
	return nil, ErrCategoryNotFound
}

// ProductsByCategory returns every product whose category matches, in catalog
// insertion order. No match yields an empty slice, not an error.
func (c *Catalog) ProductsByCategory(categoryID string) []Product {
	out := []Product{}
	for _, p := range c.products {
		if p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out
}

// ProductByID returns the product with the given id, or ErrProductNotFound.
func (c *Catalog) ProductByID(id int) (*Product, error) {
	i, ok := c.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	p := c.products[i]
	return &p, nil
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

// Len reports the number of products in the catalog.
func (c *Catalog) Len() int {
	return len(c.products)
}
