package command

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// CreateSupplierCommand represents the command to create a supplier
type CreateSupplierCommand struct {
	Name        string
	Description string
	ContactInfo string
}

// CreateSupplierHandler handles supplier creation command
type CreateSupplierHandler struct {
	store domain.Store
}

// NewCreateSupplierHandler creates a new create supplier handler
func NewCreateSupplierHandler(store domain.Store) *CreateSupplierHandler {
	return &CreateSupplierHandler{store: store}
}

// Handle executes the create supplier command
func (h *CreateSupplierHandler) Handle(ctx context.Context, cmd CreateSupplierCommand) (*domain.Supplier, error) {
	if cmd.Name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	supplier := &domain.Supplier{
		Name:        cmd.Name,
		Description: cmd.Description,
		ContactInfo: cmd.ContactInfo,
	}
	if err := h.store.WithContext(ctx).Suppliers().Create(supplier); err != nil {
		return nil, err
	}

	return supplier, nil
}
