package command

import (
	"context"
	"errors"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product by sku
type DeleteProductCommand struct {
	SKU string
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	store domain.Store
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(store domain.Store) *DeleteProductHandler {
	return &DeleteProductHandler{store: store}
}

// Handle executes the delete product command. Deletion is refused while the
// product has stock on hand; otherwise the product and all of its dependents
// (stock, rating, reviews, price history) are removed in one transaction.
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	return h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		product, err := tx.Products().FindBySKU(cmd.SKU)
		if err != nil {
			return err
		}

		stock, err := tx.Stock().FindByProductID(product.ID)
		if err != nil && !errors.Is(err, domain.ErrStockNotFound) {
			return err
		}
		if stock != nil && stock.Quantity > 0 {
			return domain.ErrProductHasStock
		}

		if err := tx.Stock().DeleteByProductID(product.ID); err != nil {
			return err
		}
		if err := tx.Ratings().DeleteByProductID(product.ID); err != nil {
			return err
		}
		if err := tx.Reviews().DeleteByProductID(product.ID); err != nil {
			return err
		}
		if err := tx.PriceHistory().DeleteByProductID(product.ID); err != nil {
			return err
		}
		return tx.Products().Delete(product.ID)
	})
}
