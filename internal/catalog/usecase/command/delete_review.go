package command

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/pkg/cache"
)

// DeleteReviewCommand represents the command to delete a review. The owner
// may delete their own review; admins may delete any.
type DeleteReviewCommand struct {
	ID      uint
	UserID  uint
	IsAdmin bool
}

// DeleteReviewHandler handles review deletion command
type DeleteReviewHandler struct {
	store   domain.Store
	engine  *consistency.Engine
	ratings *cache.RatingCache
}

// NewDeleteReviewHandler creates a new delete review handler
func NewDeleteReviewHandler(store domain.Store, engine *consistency.Engine, ratings *cache.RatingCache) *DeleteReviewHandler {
	return &DeleteReviewHandler{store: store, engine: engine, ratings: ratings}
}

// Handle executes the delete review command and recomputes the product's
// rating aggregate from the remaining reviews in the same transaction.
func (h *DeleteReviewHandler) Handle(ctx context.Context, cmd DeleteReviewCommand) error {
	var sku string
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		review, err := tx.Reviews().FindByID(cmd.ID)
		if err != nil {
			return err
		}
		if review.UserID != cmd.UserID && !cmd.IsAdmin {
			return domain.ErrNotReviewOwner
		}

		product, err := tx.Products().FindByID(review.ProductID)
		if err != nil {
			return err
		}
		sku = product.SKU

		if err := tx.Reviews().Delete(review.ID); err != nil {
			return err
		}
		return h.engine.RecomputeRating(tx, review.ProductID)
	})
	if err != nil {
		return err
	}

	h.ratings.Invalidate(ctx, sku)
	return nil
}
