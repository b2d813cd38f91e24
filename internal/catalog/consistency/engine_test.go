package consistency_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/internal/catalog/storetest"
)

func seedProduct(t *testing.T, store *storetest.Store, sku string) *domain.Product {
	t.Helper()
	product := &domain.Product{
		Name:  "Widget",
		Price: decimal.RequireFromString("10.99"),
		SKU:   sku,
	}
	require.NoError(t, store.Products().Create(product))
	return product
}

func TestEnsureStockCreatesExactlyOnce(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := seedProduct(t, store, "WID-1")

	require.NoError(t, engine.EnsureStock(store, product.ID))

	stock, err := store.Stock().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.Quantity)

	// a later non-creation save must not reset the quantity
	stock.Quantity = 25
	require.NoError(t, store.Stock().Update(stock))

	require.NoError(t, engine.EnsureStock(store, product.ID))

	stock, err = store.Stock().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 25, stock.Quantity)
}

func TestRecomputeRatingAveragesAllReviews(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := seedProduct(t, store, "WID-1")

	for i, rating := range []int{5, 6, 7} {
		require.NoError(t, store.Reviews().Create(&domain.Review{
			ProductID: product.ID,
			UserID:    uint(i + 1),
			Rating:    rating,
		}))
	}

	require.NoError(t, engine.RecomputeRating(store, product.ID))

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.Equal(decimal.RequireFromString("6.00")),
		"got %s", aggregate.AverageRating)
	assert.Equal(t, 3, aggregate.RatingsCount)
}

func TestRecomputeRatingAfterDeletion(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := seedProduct(t, store, "WID-1")

	var last *domain.Review
	for i, rating := range []int{5, 6, 7} {
		last = &domain.Review{ProductID: product.ID, UserID: uint(i + 1), Rating: rating}
		require.NoError(t, store.Reviews().Create(last))
	}
	require.NoError(t, engine.RecomputeRating(store, product.ID))

	require.NoError(t, store.Reviews().Delete(last.ID))
	require.NoError(t, engine.RecomputeRating(store, product.ID))

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.Equal(decimal.RequireFromString("5.50")),
		"got %s", aggregate.AverageRating)
	assert.Equal(t, 2, aggregate.RatingsCount)
}

func TestRecomputeRatingWithNoReviews(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := seedProduct(t, store, "WID-1")

	require.NoError(t, engine.RecomputeRating(store, product.ID))

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.IsZero())
	assert.Equal(t, 0, aggregate.RatingsCount)
}

func TestRecomputeRatingIsIdempotent(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := seedProduct(t, store, "WID-1")

	require.NoError(t, store.Reviews().Create(&domain.Review{
		ProductID: product.ID, UserID: 1, Rating: 8,
	}))

	require.NoError(t, engine.RecomputeRating(store, product.ID))
	require.NoError(t, engine.RecomputeRating(store, product.ID))

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.Equal(decimal.RequireFromString("8.00")))
	assert.Equal(t, 1, aggregate.RatingsCount)
}

func TestRecomputeRatingUnknownProduct(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()

	err := engine.RecomputeRating(store, 404)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestRecordPriceChangeAppends(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := seedProduct(t, store, "WID-1")

	require.NoError(t, engine.RecordPriceChange(store, product.ID,
		decimal.Zero, decimal.RequireFromString("10.99"), 7))
	require.NoError(t, engine.RecordPriceChange(store, product.ID,
		decimal.RequireFromString("10.99"), decimal.RequireFromString("15.99"), 7))

	entries, err := store.PriceHistory().FindByProductID(product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	// newest first
	assert.True(t, entries[0].NewPrice.Equal(decimal.RequireFromString("15.99")))
	assert.True(t, entries[1].OldPrice.IsZero())
	assert.Equal(t, uint(7), entries[0].UserID)
}
