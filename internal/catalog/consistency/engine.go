// Package consistency keeps derived records (stock, rating aggregates, price
// history) synchronized with their source entities. The lifecycle and review
// services invoke the engine explicitly, inside the same transaction as the
// triggering write, so callers always observe a fully consistent state.
package consistency

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// Engine applies the derived-state rules. It is stateless; every method
// operates on the transaction-bound store it is handed.
type Engine struct{}

// NewEngine creates a consistency engine
func NewEngine() *Engine {
	return &Engine{}
}

// EnsureStock creates the one-to-one stock record for a newly created
// product, with quantity zero. Calling it again for the same product is a
// no-op, so non-creation saves cannot produce a second row.
func (e *Engine) EnsureStock(tx domain.Store, productID uint) error {
	_, err := tx.Stock().FindByProductID(productID)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrStockNotFound) {
		return err
	}

	return tx.Stock().Create(&domain.ProductStock{
		ProductID: productID,
		Quantity:  0,
	})
}

// RecomputeRating rebuilds the rating aggregate for a product from its full
// current review set: mean rating rounded to two decimals (0.00 when no
// reviews remain) and the review count. The product row is locked first so
// recomputation cannot interleave with another write to the same product's
// reviews. Always a full recompute, never an incremental adjustment.
func (e *Engine) RecomputeRating(tx domain.Store, productID uint) error {
	if _, err := tx.Products().FindByIDForUpdate(productID); err != nil {
		return err
	}

	reviews, err := tx.Reviews().FindByProductID(productID)
	if err != nil {
		return err
	}

	average := decimal.Zero
	if len(reviews) > 0 {
		sum := int64(0)
		for _, review := range reviews {
			sum += int64(review.Rating)
		}
		average = decimal.NewFromInt(sum).DivRound(decimal.NewFromInt(int64(len(reviews))), 2)
	}

	return tx.Ratings().Upsert(&domain.ProductRating{
		ProductID:     productID,
		AverageRating: average,
		RatingsCount:  len(reviews),
	})
}

// RecordPriceChange appends a price history entry attributed to the acting
// user. Callers invoke it on product creation (old price zero) and on updates
// only when the price actually changed.
func (e *Engine) RecordPriceChange(tx domain.Store, productID uint, oldPrice, newPrice decimal.Decimal, userID uint) error {
	return tx.PriceHistory().Create(&domain.PriceHistory{
		ProductID: productID,
		OldPrice:  oldPrice,
		NewPrice:  newPrice,
		UserID:    userID,
	})
}
