package review

import (
	"strings"

	"github.com/lromero/ecom-admin/internal/model"
)

// Filter is the user-entered criteria for the reviews table. Rating 0 means
// "any rating".
type Filter struct {
	Search string
	Rating int
	Status string
}

// Row is a review joined with the product and customer names it references.
type Row struct {
	model.Review
	ProductName  string `json:"productName"`
	CustomerName string `json:"customerName"`
}

// Rows resolves both foreign keys by linear scan; unresolved references
// render as "Unknown".
func Rows(items []model.Review, products []model.Product, customers []model.Customer) []Row {
	rows := make([]Row, 0, len(items))
	for _, r := range items {
		row := Row{Review: r, ProductName: "Unknown", CustomerName: "Unknown"}
		for _, p := range products {
			if p.ID == r.ProductID {
				row.ProductName = p.Name
				break
			}
		}
		for _, c := range customers {
			if c.ID == r.CustomerID {
				row.CustomerName = c.FullName()
				break
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Filtered matches search against title, comment and the joined product and
// customer names, ANDed with the rating and status filters. It works on
// joined rows because the search fields include the joins. Pure.
func Filtered(rows []Row, f Filter) []Row {
	q := strings.ToLower(f.Search)
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Title), q) &&
			!strings.Contains(strings.ToLower(r.Comment), q) &&
			!strings.Contains(strings.ToLower(r.ProductName), q) &&
			!strings.Contains(strings.ToLower(r.CustomerName), q) {
			continue
		}
		if f.Rating != 0 && r.Rating != f.Rating {
			continue
		}
		if f.Status != "" && r.Status != f.Status {
			continue
		}
		out = append(out, r)
	}
	return out
}
