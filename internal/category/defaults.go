package category

import (
	"strconv"
	"time"

	"github.com/lromero/ecom-admin/internal/model"
)

// PlaceholderImage backs categories created without an image.
const PlaceholderImage = "https://images.unsplash.com/photo-1498049794561-7780e7231661?w=400"

const defaultDisplayOrder = 999

// WithCreateDefaults fills server-computed fields and SEO fallbacks before a
// category form is POSTed.
func WithCreateDefaults(form model.Category) model.Category {
	form.ID = strconv.FormatInt(time.Now().UnixMilli(), 10)
	form.ProductCount = 0
	if form.Image == "" {
		form.Image = PlaceholderImage
	}
	if form.DisplayOrder == 0 {
		form.DisplayOrder = defaultDisplayOrder
	}
	if form.SeoTitle == "" {
		form.SeoTitle = form.Name
	}
	if form.SeoDescription == "" {
		form.SeoDescription = form.Description
	}
	return form
}
