package product

import (
	"context"

	"go.uber.org/zap"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/model"
	"github.com/lromero/ecom-admin/internal/store"
)

// Store binds the generic resource store to the product endpoints and applies
// the create/update defaulting rules before dispatch.
type Store struct {
	*store.Store[model.Product]
}

func NewStore(c *api.Client, log *zap.Logger) *Store {
	return &Store{store.New[model.Product](store.Actions[model.Product]{
		List:   c.ListProducts,
		Create: c.CreateProduct,
		Update: c.UpdateProduct,
		Delete: c.DeleteProduct,
	}, store.AppendOnCreate(), store.WithLogger(log))}
}

func (s *Store) Create(ctx context.Context, form model.Product) (model.Product, error) {
	return s.Store.Create(ctx, WithCreateDefaults(form))
}

// Update stamps updatedAt into every product patch, like the original form
// submit did.
func (s *Store) Update(ctx context.Context, id string, patch map[string]any) (model.Product, error) {
	if patch == nil {
		patch = map[string]any{}
	}
	patch["updatedAt"] = today()
	return s.Store.Update(ctx, id, patch)
}
