package order

import (
	"fmt"
	"strconv"
	"time"

	"github.com/lromero/ecom-admin/internal/model"
)

const dateLayout = "2006-01-02"

// NumberFor builds the client-generated order number:
// ORD-<year>-<last 6 digits of epoch millis>. Uniqueness comes from the
// millisecond clock, same as the original dashboard.
func NumberFor(now time.Time) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	return fmt.Sprintf("ORD-%d-%s", now.Year(), ms[len(ms)-6:])
}

// WithCreateDefaults fills the order number, order date and the nullable
// fulfilment fields before an order form is POSTed. Totals are caller
// supplied and passed through untouched.
func WithCreateDefaults(form model.Order) model.Order {
	now := time.Now()
	form.ID = strconv.FormatInt(now.UnixMilli(), 10)
	form.OrderNumber = NumberFor(now)
	form.OrderDate = now.Format(dateLayout)
	if form.Items == nil {
		form.Items = []model.OrderItem{}
	}
	form.TrackingNumber = nil
	form.EstimatedDelivery = nil
	form.ActualDelivery = nil
	if form.Status == "" {
		form.Status = model.OrderStatusPending
	}
	return form
}
