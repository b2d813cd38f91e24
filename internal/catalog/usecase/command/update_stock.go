package command

import (
	"context"
	"errors"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// UpdateStockCommand sets the stock quantity for a product, keyed by sku
type UpdateStockCommand struct {
	SKU      string
	Quantity int
}

// UpdateStockHandler handles stock update command
type UpdateStockHandler struct {
	store domain.Store
}

// NewUpdateStockHandler creates a new update stock handler
func NewUpdateStockHandler(store domain.Store) *UpdateStockHandler {
	return &UpdateStockHandler{store: store}
}

// Handle executes the update stock command. The stock row normally exists
// from product creation; it is re-created here if missing.
func (h *UpdateStockHandler) Handle(ctx context.Context, cmd UpdateStockCommand) (*domain.ProductStock, error) {
	if cmd.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "quantity cannot be negative")
	}

	var stock *domain.ProductStock
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		product, err := tx.Products().FindBySKU(cmd.SKU)
		if err != nil {
			return err
		}

		stock, err = tx.Stock().FindByProductID(product.ID)
		if errors.Is(err, domain.ErrStockNotFound) {
			stock = &domain.ProductStock{ProductID: product.ID}
			if err := tx.Stock().Create(stock); err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		stock.Quantity = cmd.Quantity
		return tx.Stock().Update(stock)
	})
	if err != nil {
		return nil, err
	}

	return stock, nil
}
