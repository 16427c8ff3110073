package review

import (
	"go.uber.org/zap"

	"github.com/lromero/ecom-admin/internal/api"
	"github.com/lromero/ecom-admin/internal/model"
	"github.com/lromero/ecom-admin/internal/store"
)

// Store binds the generic store to the review endpoints. Reviews are
// read/delete only: no create or update actions exist, and the generic
// store rejects them with ErrReadOnly.
type Store struct {
	*store.Store[model.Review]
}

func NewStore(c *api.Client, log *zap.Logger) *Store {
	return &Store{store.New[model.Review](store.Actions[model.Review]{
		List:   c.ListReviews,
		Delete: c.DeleteReview,
	}, store.WithLogger(log))}
}
