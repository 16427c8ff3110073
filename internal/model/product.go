package model

import "github.com/shopspring/decimal"

const (
	ProductStatusActive   = "Active"
	ProductStatusInactive = "Inactive"
)

// Product mirrors the backend's product document. Monetary values travel as
// JSON strings (NUMERIC -> string) to avoid rounding errors.
type Product struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	SKU               string            `json:"sku"`
	Price             decimal.Decimal   `json:"price"`
	CostPrice         *decimal.Decimal  `json:"costPrice,omitempty"`
	Stock             int               `json:"stock"`
	LowStockThreshold int               `json:"lowStockThreshold"`
	CategoryID        string            `json:"categoryId"`
	Brand             string            `json:"brand,omitempty"`
	Status            string            `json:"status"`
	Featured          bool              `json:"featured"`
	Rating            float64           `json:"rating"`
	ReviewCount       int               `json:"reviewCount"`
	Images            []string          `json:"images"`
	Tags              []string          `json:"tags"`
	Specifications    map[string]string `json:"specifications"`
	Description       string            `json:"description"`
	CreatedAt         string            `json:"createdAt"`
	UpdatedAt         string            `json:"updatedAt"`
}

func (p Product) EntityID() string { return p.ID }

// LowStock is derived, never stored.
func (p Product) LowStock() bool { return p.Stock < p.LowStockThreshold }
