package command

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// DeleteSupplierCommand represents the command to delete a supplier by id
type DeleteSupplierCommand struct {
	ID uint
}

// DeleteSupplierHandler handles supplier deletion command
type DeleteSupplierHandler struct {
	store domain.Store
}

// NewDeleteSupplierHandler creates a new delete supplier handler
func NewDeleteSupplierHandler(store domain.Store) *DeleteSupplierHandler {
	return &DeleteSupplierHandler{store: store}
}

// Handle executes the delete supplier command. Deletion is refused while any
// product references the supplier.
func (h *DeleteSupplierHandler) Handle(ctx context.Context, cmd DeleteSupplierCommand) error {
	return h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		supplier, err := tx.Suppliers().FindByID(cmd.ID)
		if err != nil {
			return err
		}

		count, err := tx.Products().CountBySupplier(supplier.ID)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrSupplierInUse
		}

		return tx.Suppliers().Delete(supplier.ID)
	})
}
