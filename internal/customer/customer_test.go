package customer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lromero/ecom-admin/internal/model"
)

func sampleCustomers() []model.Customer {
	return []model.Customer{
		{ID: "u1", FirstName: "Ana", LastName: "García", Email: "ana@example.com", MembershipTier: model.TierGold, Status: model.CustomerStatusActive},
		{ID: "u2", FirstName: "Bruno", LastName: "Reyes", Email: "bruno@example.com", MembershipTier: model.TierBronze, Status: model.CustomerStatusInactive},
		{ID: "u3", FirstName: "Carla", LastName: "Anand", Email: "carla@shop.io", MembershipTier: model.TierGold, Status: model.CustomerStatusInactive},
	}
}

func TestFilteredSearchesNameAndEmail(t *testing.T) {
	got := Filtered(sampleCustomers(), Filter{Search: "BRUNO"})
	require.Len(t, got, 1)
	assert.Equal(t, "u2", got[0].ID)

	got = Filtered(sampleCustomers(), Filter{Search: "shop.io"})
	require.Len(t, got, 1)
	assert.Equal(t, "u3", got[0].ID)

	// "an" hits Ana (first), Anand (last) and ana@ (email)
	assert.Len(t, Filtered(sampleCustomers(), Filter{Search: "an"}), 2)
}

func TestFilteredCombinesTierAndStatus(t *testing.T) {
	got := Filtered(sampleCustomers(), Filter{Tier: model.TierGold, Status: model.CustomerStatusInactive})
	require.Len(t, got, 1)
	assert.Equal(t, "u3", got[0].ID)
}

func TestCreateDefaults(t *testing.T) {
	ship := model.Address{Street: "1 Main St", City: "Lima", Country: "PE"}
	got := WithCreateDefaults(model.Customer{
		FirstName:       "Ana",
		Email:           "ana@example.com",
		ShippingAddress: ship,
		TotalOrders:     9,
	})

	assert.NotEmpty(t, got.ID)
	assert.Zero(t, got.TotalOrders, "server-computed counters reset")
	assert.True(t, got.TotalSpent.IsZero())
	assert.True(t, got.AverageOrderValue.IsZero())
	assert.Regexp(t, `^\d{4}-\d{2}-\d{2}$`, got.JoinDate)
	assert.Nil(t, got.LastOrderDate)
	assert.True(t, strings.HasPrefix(got.Avatar, "https://i.pravatar.cc/150?img="), got.Avatar)
	assert.Equal(t, model.Preferences{Newsletter: true, SmsNotification: false, EmailNotification: true}, got.Preferences)
	assert.Equal(t, ship, got.BillingAddress, "billing mirrors shipping at creation")
	assert.Equal(t, model.TierBronze, got.MembershipTier)
	assert.NotNil(t, got.Tags)
}
