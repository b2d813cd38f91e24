package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// GetSupplierQuery represents the query to get a supplier by id
type GetSupplierQuery struct {
	ID uint
}

// GetSupplierHandler handles get supplier query
type GetSupplierHandler struct {
	store domain.Store
}

// NewGetSupplierHandler creates a new get supplier handler
func NewGetSupplierHandler(store domain.Store) *GetSupplierHandler {
	return &GetSupplierHandler{store: store}
}

// Handle executes the get supplier query
func (h *GetSupplierHandler) Handle(ctx context.Context, q GetSupplierQuery) (*domain.Supplier, error) {
	return h.store.WithContext(ctx).Suppliers().FindByID(q.ID)
}
