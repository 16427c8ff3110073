package order

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/ecom-admin/internal/model"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func sampleOrders() []model.Order {
	return []model.Order{
		{ID: "o1", OrderNumber: "ORD-2026-000123", CustomerID: "u1", Status: model.OrderStatusPending},
		{ID: "o2", OrderNumber: "ORD-2026-000456", CustomerID: "missing", Status: model.OrderStatusShipped},
	}
}

func TestFilteredMatchesOrderNumber(t *testing.T) {
	got := Filtered(sampleOrders(), Filter{Search: "ord-2026-000456"})
	require.Len(t, got, 1)
	assert.Equal(t, "o2", got[0].ID)
}

func TestFilteredByStatus(t *testing.T) {
	got := Filtered(sampleOrders(), Filter{Status: model.OrderStatusPending})
	require.Len(t, got, 1)
	assert.Equal(t, "o1", got[0].ID)
}

func TestRowsJoinCustomerName(t *testing.T) {
	customers := []model.Customer{{ID: "u1", FirstName: "Ana", LastName: "García"}}
	rows := Rows(sampleOrders(), customers)
	require.Len(t, rows, 2)
	assert.Equal(t, "Ana García", rows[0].CustomerName)
	assert.Equal(t, "Unknown", rows[1].CustomerName, "unresolved customer renders Unknown, row kept")
}

func TestNumberFor(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	n := NumberFor(now)
	assert.Regexp(t, `^ORD-2026-\d{6}$`, n)
}

func TestCreateDefaults(t *testing.T) {
	got := WithCreateDefaults(model.Order{CustomerID: "u1"})

	assert.NotEmpty(t, got.ID)
	assert.Regexp(t, `^ORD-\d{4}-\d{6}$`, got.OrderNumber)
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, got.OrderDate)
	assert.NotNil(t, got.Items)
	assert.Nil(t, got.TrackingNumber)
	assert.Nil(t, got.EstimatedDelivery)
	assert.Nil(t, got.ActualDelivery)
	assert.Equal(t, model.OrderStatusPending, got.Status)
}

func TestCreateDefaultsKeepCallerTotals(t *testing.T) {
	form := model.Order{
		CustomerID: "u1",
		Subtotal:   dec("30.00"),
		Tax:        dec("3.00"),
		Shipping:   dec("2.50"),
		Total:      dec("35.50"),
		Status:     model.OrderStatusProcessing,
	}
	got := WithCreateDefaults(form)
	assert.True(t, got.Total.Equal(dec("35.50")), "total is caller-supplied, never re-derived")
	assert.Equal(t, model.OrderStatusProcessing, got.Status)
}
