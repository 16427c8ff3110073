package customer

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lromero/ecom-admin/internal/model"
)

const dateLayout = "2006-01-02"

// WithCreateDefaults fills server-computed counters, the join date, a random
// pravatar avatar and the notification preferences, and mirrors the shipping
// address into billing, before a customer form is POSTed.
func WithCreateDefaults(form model.Customer) model.Customer {
	now := time.Now()
	form.ID = strconv.FormatInt(now.UnixMilli(), 10)
	form.TotalOrders = 0
	form.TotalSpent = decimal.Zero
	form.AverageOrderValue = decimal.Zero
	form.JoinDate = now.Format(dateLayout)
	form.LastOrderDate = nil
	form.Avatar = fmt.Sprintf("https://i.pravatar.cc/150?img=%d", rand.Intn(70))
	form.Preferences = model.Preferences{
		Newsletter:        true,
		SmsNotification:   false,
		EmailNotification: true,
	}
	if form.Tags == nil {
		form.Tags = []string{}
	}
	form.BillingAddress = form.ShippingAddress
	if form.MembershipTier == "" {
		form.MembershipTier = model.TierBronze
	}
	return form
}
