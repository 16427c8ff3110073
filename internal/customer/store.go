package customer

import (
	"context"

	"go.uber.org/zap"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/model"
	"github.com/lromero/ecom-admin/internal/store"
)

// Store binds the generic store to the customer endpoints. Like categories,
// creates rely on a follow-up refetch instead of appending.
type Store struct {
	*store.Store[model.Customer]
}

func NewStore(c *api.Client, log *zap.Logger) *Store {
	return &Store{store.New[model.Customer](store.Actions[model.Customer]{
		List:   c.ListCustomers,
		Create: c.CreateCustomer,
		Update: c.UpdateCustomer,
		Delete: c.DeleteCustomer,
	}, store.WithLogger(log))}
}

func (s *Store) Create(ctx context.Context, form model.Customer) (model.Customer, error) {
	return s.Store.Create(ctx, WithCreateDefaults(form))
}
