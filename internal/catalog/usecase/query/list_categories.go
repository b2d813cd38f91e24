package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// ListCategoriesQuery represents the query to list categories
type ListCategoriesQuery struct {
	Limit  int
	Offset int
}

// ListCategoriesHandler handles list categories query
type ListCategoriesHandler struct {
	store domain.Store
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(store domain.Store) *ListCategoriesHandler {
	return &ListCategoriesHandler{store: store}
}

// Handle executes the list categories query
func (h *ListCategoriesHandler) Handle(ctx context.Context, q ListCategoriesQuery) ([]domain.Category, error) {
	if q.Limit <= 0 {
		q.Limit = 50
	}
	return h.store.WithContext(ctx).Categories().FindAll(q.Limit, q.Offset)
}
