package command

import (
	"context"
	"fmt"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/kafka"
	"github.com/tair/catalog-api/pkg/cache"
	"github.com/tair/catalog-api/pkg/logger"
)

// CreateReviewCommand represents the command to create a review. The product
// is addressed by sku; the reviewer is the authenticated caller, never
// client-supplied.
type CreateReviewCommand struct {
	ProductSKU string
	Rating     int
	Comment    string
	UserID     uint
}

// CreateReviewHandler handles review creation command
type CreateReviewHandler struct {
	store   domain.Store
	engine  *consistency.Engine
	ratings *cache.RatingCache
	events  EventPublisher
}

// NewCreateReviewHandler creates a new create review handler
func NewCreateReviewHandler(store domain.Store, engine *consistency.Engine, ratings *cache.RatingCache, events EventPublisher) *CreateReviewHandler {
	return &CreateReviewHandler{store: store, engine: engine, ratings: ratings, events: events}
}

// Handle executes the create review command. The review write and the rating
// recomputation share one transaction; the cached rating is dropped after
// commit.
func (h *CreateReviewHandler) Handle(ctx context.Context, cmd CreateReviewCommand) (*domain.Review, error) {
	if cmd.Rating < domain.MinRating || cmd.Rating > domain.MaxRating {
		return nil, domain.NewValidationError("rating",
			fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}
	if cmd.UserID == 0 {
		return nil, domain.NewValidationError("user", "acting user is required")
	}

	var review *domain.Review
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		product, err := tx.Products().FindBySKU(cmd.ProductSKU)
		if err != nil {
			return err
		}

		review = &domain.Review{
			ProductID: product.ID,
			UserID:    cmd.UserID,
			Rating:    cmd.Rating,
			Comment:   cmd.Comment,
		}
		if err := tx.Reviews().Create(review); err != nil {
			return err
		}

		return h.engine.RecomputeRating(tx, product.ID)
	})
	if err != nil {
		return nil, err
	}

	h.ratings.Invalidate(ctx, cmd.ProductSKU)

	if h.events != nil {
		event := kafka.ReviewCreatedEvent{
			ReviewID:  review.ID,
			ProductID: review.ProductID,
			SKU:       cmd.ProductSKU,
			Rating:    review.Rating,
			UserID:    cmd.UserID,
		}
		if err := h.events.PublishReviewCreated(ctx, event); err != nil {
			logger.Logger.Warn().Err(err).Str("sku", cmd.ProductSKU).Msg("Failed to publish review.created")
		}
	}

	return review, nil
}
