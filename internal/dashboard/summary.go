// Package dashboard computes the cross-store aggregates for the summary
// view. Everything here is pure and reads store snapshots only.
package dashboard

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/lromero/ecom-admin/internal/model"
)

type DailySales struct {
	Date  string          `json:"date"`
	Sales decimal.Decimal `json:"sales"`
}

type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

type Summary struct {
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	ActiveProducts     int             `json:"activeProducts"`
	PendingOrders      int             `json:"pendingOrders"`
	SalesByDay         []DailySales    `json:"salesByDay"`
	ProductsByCategory []CategoryCount `json:"productsByCategory"`
}

// Build aggregates revenue and counts across the three collections.
func Build(orders []model.Order, products []model.Product, categories []model.Category) Summary {
	s := Summary{TotalRevenue: decimal.Zero}
	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(o.Total)
		if o.Status == model.OrderStatusPending {
			s.PendingOrders++
		}
	}
	for _, p := range products {
		if p.Status == model.ProductStatusActive {
			s.ActiveProducts++
		}
	}
	s.SalesByDay = salesByDay(orders)
	s.ProductsByCategory = productsByCategory(products, categories)
	return s
}

// salesByDay groups order totals by orderDate, sorts the dates ascending and
// keeps the last 7 distinct dates.
func salesByDay(orders []model.Order) []DailySales {
	byDate := make(map[string]decimal.Decimal)
	for _, o := range orders {
		byDate[o.OrderDate] = byDate[o.OrderDate].Add(o.Total)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	if len(dates) > 7 {
		dates = dates[len(dates)-7:]
	}
	out := make([]DailySales, 0, len(dates))
	for _, d := range dates {
		out = append(out, DailySales{Date: d, Sales: byDate[d]})
	}
	return out
}

// productsByCategory counts products per categoryId, labeled with the
// category name, in category order.
func productsByCategory(products []model.Product, categories []model.Category) []CategoryCount {
	out := make([]CategoryCount, 0, len(categories))
	for _, c := range categories {
		n := 0
		for _, p := range products {
			if p.CategoryID == c.ID {
				n++
			}
		}
		out = append(out, CategoryCount{Name: c.Name, Count: n})
	}
	return out
}
