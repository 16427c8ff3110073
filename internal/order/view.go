package order

import (
	"strings"

	"github.com/lromero/ecom-admin/internal/model"
)

// Filter is the user-entered criteria for the orders table.
type Filter struct {
	Search string
	Status string
}

// Filtered matches search against the order number, ANDed with the status
// filter. Pure.
func Filtered(items []model.Order, f Filter) []model.Order {
	q := strings.ToLower(f.Search)
	out := make([]model.Order, 0, len(items))
	for _, o := range items {
		if q != "" && !strings.Contains(strings.ToLower(o.OrderNumber), q) {
			continue
		}
		if f.Status != "" && o.Status != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out
}

// Row is an order joined with its customer's display name.
type Row struct {
	model.Order
	CustomerName string `json:"customerName"`
}

// Rows resolves each order's customerId by linear scan; unresolved
// references render as "Unknown" rather than dropping the row.
func Rows(items []model.Order, customers []model.Customer) []Row {
	rows := make([]Row, 0, len(items))
	for _, o := range items {
		name := "Unknown"
		for _, c := range customers {
			if c.ID == o.CustomerID {
				name = c.FullName()
				break
			}
		}
		rows = append(rows, Row{Order: o, CustomerName: name})
	}
	return rows
}
