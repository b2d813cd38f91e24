package command

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// UpdateSupplierCommand represents a partial supplier update keyed by id.
// Nil fields are left untouched.
type UpdateSupplierCommand struct {
	ID          uint
	Name        *string
	Description *string
	ContactInfo *string
}

// UpdateSupplierHandler handles supplier update command
type UpdateSupplierHandler struct {
	store domain.Store
}

// NewUpdateSupplierHandler creates a new update supplier handler
func NewUpdateSupplierHandler(store domain.Store) *UpdateSupplierHandler {
	return &UpdateSupplierHandler{store: store}
}

// Handle executes the update supplier command
func (h *UpdateSupplierHandler) Handle(ctx context.Context, cmd UpdateSupplierCommand) (*domain.Supplier, error) {
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, domain.NewValidationError("name", "name cannot be empty")
	}

	var supplier *domain.Supplier
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		var err error
		supplier, err = tx.Suppliers().FindByID(cmd.ID)
		if err != nil {
			return err
		}

		if cmd.Name != nil {
			supplier.Name = *cmd.Name
		}
		if cmd.Description != nil {
			supplier.Description = *cmd.Description
		}
		if cmd.ContactInfo != nil {
			supplier.ContactInfo = *cmd.ContactInfo
		}

		return tx.Suppliers().Update(supplier)
	})
	if err != nil {
		return nil, err
	}

	return supplier, nil
}
