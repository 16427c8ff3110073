package category

import (
	"strings"

	"github.com/lromero/ecom-admin/internal/model"
)

// Filtered matches category names case-insensitively; an empty search
// matches everything. Pure, never mutates items.
func Filtered(items []model.Category, search string) []model.Category {
	q := strings.ToLower(search)
	out := make([]model.Category, 0, len(items))
	for _, c := range items {
		if q != "" && !strings.Contains(strings.ToLower(c.Name), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}
