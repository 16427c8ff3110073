package model

import "github.com/shopspring/decimal"

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"

	PaymentStatusPending  = "Pending"
	PaymentStatusPaid     = "Paid"
	PaymentStatusRefunded = "Refunded"
)

// OrderItem is a single product+quantity line within an order.
type OrderItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Order totals are supplied by the caller and echoed by the backend; the
// client never re-derives Total from the items.
type Order struct {
	ID                string          `json:"id"`
	OrderNumber       string          `json:"orderNumber"`
	CustomerID        string          `json:"customerId"`
	Items             []OrderItem     `json:"items"`
	OrderDate         string          `json:"orderDate"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Tax               decimal.Decimal `json:"tax"`
	Shipping          decimal.Decimal `json:"shipping"`
	Discount          decimal.Decimal `json:"discount"`
	Total             decimal.Decimal `json:"total"`
	Status            string          `json:"status"`
	PaymentMethod     string          `json:"paymentMethod"`
	PaymentStatus     string          `json:"paymentStatus"`
	ShippingMethod    string          `json:"shippingMethod"`
	TrackingNumber    *string         `json:"trackingNumber"`
	EstimatedDelivery *string         `json:"estimatedDelivery"`
	ActualDelivery    *string         `json:"actualDelivery"`
	CouponCode        *string         `json:"couponCode"`
	Notes             string          `json:"notes"`
}

func (o Order) EntityID() string { return o.ID }
