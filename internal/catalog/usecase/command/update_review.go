package command

import (
	"context"
	"fmt"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/pkg/cache"
)

// UpdateReviewCommand represents a partial review update keyed by review id.
// Only the review's owner may change it.
type UpdateReviewCommand struct {
	ID      uint
	Rating  *int
	Comment *string
	UserID  uint
}

// UpdateReviewHandler handles review update command
type UpdateReviewHandler struct {
	store   domain.Store
	engine  *consistency.Engine
	ratings *cache.RatingCache
}

// NewUpdateReviewHandler creates a new update review handler
func NewUpdateReviewHandler(store domain.Store, engine *consistency.Engine, ratings *cache.RatingCache) *UpdateReviewHandler {
	return &UpdateReviewHandler{store: store, engine: engine, ratings: ratings}
}

// Handle executes the update review command and recomputes the product's
// rating aggregate in the same transaction.
func (h *UpdateReviewHandler) Handle(ctx context.Context, cmd UpdateReviewCommand) (*domain.Review, error) {
	if cmd.Rating != nil && (*cmd.Rating < domain.MinRating || *cmd.Rating > domain.MaxRating) {
		return nil, domain.NewValidationError("rating",
			fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}

	var (
		review *domain.Review
		sku    string
	)
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		var err error
		review, err = tx.Reviews().FindByID(cmd.ID)
		if err != nil {
			return err
		}
		if review.UserID != cmd.UserID {
			return domain.ErrNotReviewOwner
		}

		product, err := tx.Products().FindByID(review.ProductID)
		if err != nil {
			return err
		}
		sku = product.SKU

		if cmd.Rating != nil {
			review.Rating = *cmd.Rating
		}
		if cmd.Comment != nil {
			review.Comment = *cmd.Comment
		}

		if err := tx.Reviews().Update(review); err != nil {
			return err
		}
		return h.engine.RecomputeRating(tx, review.ProductID)
	})
	if err != nil {
		return nil, err
	}

	h.ratings.Invalidate(ctx, sku)
	return review, nil
}
