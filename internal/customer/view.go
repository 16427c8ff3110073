package customer

import (
	"strings"

	"github.com/lromero/ecom-admin/internal/model"
)

// Filter is the user-entered criteria for the customers table.
type Filter struct {
	Search string
	Tier   string
	Status string
}

// Filtered matches search against first name, last name and email,
// case-insensitively, ANDed with the tier and status filters. Pure.
func Filtered(items []model.Customer, f Filter) []model.Customer {
	q := strings.ToLower(f.Search)
	out := make([]model.Customer, 0, len(items))
	for _, c := range items {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.FirstName), q) &&
			!strings.Contains(strings.ToLower(c.LastName), q) &&
			!strings.Contains(strings.ToLower(c.Email), q) {
			continue
		}
		if f.Tier != "" && c.MembershipTier != f.Tier {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, c)
	}
	return out
}
