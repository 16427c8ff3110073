package product

import (
	"strings"

	"github.com/lromero/ecom-admin/internal/model"
)

// Filter is the user-entered criteria for the products table. Empty values
// match everything; active criteria are ANDed.
type Filter struct {
	Search     string
	CategoryID string
	Status     string
}

// Filtered returns the display subset of items. Pure: the input slice is
// never modified and a fresh slice is returned on every call.
func Filtered(items []model.Product, f Filter) []model.Product {
	q := strings.ToLower(f.Search)
	out := make([]model.Product, 0, len(items))
	for _, p := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(p.Name), q) &&
			!strings.Contains(strings.ToLower(p.SKU), q) &&
			!strings.Contains(strings.ToLower(p.Brand), q) {
			continue
		}
		if f.CategoryID != "" && p.CategoryID != f.CategoryID {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Row is a product joined with its category name for display.
type Row struct {
	model.Product
	CategoryName string `json:"categoryName"`
	LowStock     bool   `json:"lowStock"`
}

// Rows resolves each product's categoryId by linear scan; unresolved
// references render as "N/A".
func Rows(items []model.Product, categories []model.Category) []Row {
	rows := make([]Row, 0, len(items))
	for _, p := range items {
		name := "N/A"
		for _, c := range categories {
			if c.ID == p.CategoryID {
				name = c.Name
				break
			}
		}
		rows = append(rows, Row{Product: p, CategoryName: name, LowStock: p.LowStock()})
	}
	return rows
}
