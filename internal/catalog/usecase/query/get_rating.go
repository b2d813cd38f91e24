package query

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/pkg/cache"
)

// GetRatingQuery represents the query to get a product's rating by sku
type GetRatingQuery struct {
	SKU string
}

// RatingResult is the derived rating aggregate for a product
type RatingResult struct {
	SKU           string          `json:"sku"`
	AverageRating decimal.Decimal `json:"average_rating"`
	RatingsCount  int             `json:"ratings_count"`
}

// GetRatingHandler handles get rating query with a read-through cache
type GetRatingHandler struct {
	store   domain.Store
	ratings *cache.RatingCache
}

// NewGetRatingHandler creates a new get rating handler
func NewGetRatingHandler(store domain.Store, ratings *cache.RatingCache) *GetRatingHandler {
	return &GetRatingHandler{store: store, ratings: ratings}
}

// Handle executes the get rating query. Cache entries are written on miss and
// invalidated by the review commands after every recomputation.
func (h *GetRatingHandler) Handle(ctx context.Context, q GetRatingQuery) (*RatingResult, error) {
	if entry := h.ratings.Get(ctx, q.SKU); entry != nil {
		if average, err := decimal.NewFromString(entry.AverageRating); err == nil {
			return &RatingResult{
				SKU:           entry.SKU,
				AverageRating: average,
				RatingsCount:  entry.RatingsCount,
			}, nil
		}
	}

	store := h.store.WithContext(ctx)

	product, err := store.Products().FindBySKU(q.SKU)
	if err != nil {
		return nil, err
	}

	rating, err := store.Ratings().FindByProductID(product.ID)
	if err != nil {
		return nil, err
	}

	result := &RatingResult{
		SKU:           product.SKU,
		AverageRating: rating.AverageRating,
		RatingsCount:  rating.RatingsCount,
	}

	h.ratings.Set(ctx, q.SKU, cache.RatingEntry{
		SKU:           result.SKU,
		AverageRating: result.AverageRating.StringFixed(2),
		RatingsCount:  result.RatingsCount,
		CachedAt:      float64(time.Now().UnixMilli()) / 1000,
	})

	return result, nil
}
