package order

import (
	"context"

	"go.uber.org/zap"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/model"
	"github.com/lromero/ecom-admin/internal/store"
)

// Store binds the generic store to the order endpoints; successful creates
// append the server echo.
type Store struct {
	*store.Store[model.Order]
}

func NewStore(c *api.Client, log *zap.Logger) *Store {
	return &Store{store.New[model.Order](store.Actions[model.Order]{
		List:   c.ListOrders,
		Create: c.CreateOrder,
		Update: c.UpdateOrder,
		Delete: c.DeleteOrder,
	}, store.AppendOnCreate(), store.WithLogger(log))}
}

func (s *Store) Create(ctx context.Context, form model.Order) (model.Order, error) {
	return s.Store.Create(ctx, WithCreateDefaults(form))
}
