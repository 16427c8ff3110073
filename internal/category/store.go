package category

import (
	"context"

	"go.uber.org/zap"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/model"
	"github.com/lromero/ecom-admin/internal/store"
)

// Store binds the generic store to the category endpoints. Creates do not
// append: the controller refetches the whole list afterwards.
type Store struct {
	*store.Store[model.Category]
}

func NewStore(c *api.Client, log *zap.Logger) *Store {
	return &Store{store.New[model.Category](store.Actions[model.Category]{
		List:   c.ListCategories,
		Create: c.CreateCategory,
		Update: c.UpdateCategory,
		Delete: c.DeleteCategory,
	}, store.WithLogger(log))}
}

func (s *Store) Create(ctx context.Context, form model.Category) (model.Category, error) {
	return s.Store.Create(ctx, WithCreateDefaults(form))
}
