package product

import (
	"strconv"
	"time"

	"github.com/lromero/ecom-admin/internal/model"
)

const dateLayout = "2006-01-02"

// PlaceholderImage backs products created without any image.
const PlaceholderImage = "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"

const defaultLowStockThreshold = 20

func today() string { return time.Now().Format(dateLayout) }

// WithCreateDefaults fills the server-computed and optional fields of a
// product form before it is POSTed. The id is a client-side placeholder only;
// whatever id the server echoes back is authoritative.
func WithCreateDefaults(form model.Product) model.Product {
	now := time.Now()
	form.ID = strconv.FormatInt(now.UnixMilli(), 10)
	form.Rating = 0
	form.ReviewCount = 0
	if form.Tags == nil {
		form.Tags = []string{}
	}
	if len(form.Images) == 0 {
		form.Images = []string{PlaceholderImage}
	}
	if form.Specifications == nil {
		form.Specifications = map[string]string{}
	}
	if form.LowStockThreshold == 0 {
		form.LowStockThreshold = defaultLowStockThreshold
	}
	d := now.Format(dateLayout)
	form.CreatedAt = d
	form.UpdatedAt = d
	return form
}
