package model

import "github.com/shopspring/decimal"

const (
	CustomerStatusActive   = "Active"
	CustomerStatusInactive = "Inactive"

	TierBronze   = "Bronze"
	TierSilver   = "Silver"
	TierGold     = "Gold"
	TierPlatinum = "Platinum"
)

type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type Preferences struct {
	Newsletter        bool `json:"newsletter"`
	SmsNotification   bool `json:"smsNotification"`
	EmailNotification bool `json:"emailNotification"`
}

type Customer struct {
	ID                string          `json:"id"`
	FirstName         string          `json:"firstName"`
	LastName          string          `json:"lastName"`
	Email             string          `json:"email"`
	Phone             string          `json:"phone"`
	DateOfBirth       string          `json:"dateOfBirth"`
	Gender            string          `json:"gender"`
	MembershipTier    string          `json:"membershipTier"`
	Status            string          `json:"status"`
	TotalOrders       int             `json:"totalOrders"`
	TotalSpent        decimal.Decimal `json:"totalSpent"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	JoinDate          string          `json:"joinDate"`
	LastOrderDate     *string         `json:"lastOrderDate"`
	ShippingAddress   Address         `json:"shippingAddress"`
	BillingAddress    Address         `json:"billingAddress"`
	Avatar            string          `json:"avatar"`
	Preferences       Preferences     `json:"preferences"`
	Tags              []string        `json:"tags"`
	Notes             string          `json:"notes"`
}

func (c Customer) EntityID() string { return c.ID }

func (c Customer) FullName() string { return c.FirstName + " " + c.LastName }
