package query_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/internal/catalog/storetest"
	"github.com/tair/catalog-api/internal/catalog/usecase/command"
	"github.com/tair/catalog-api/internal/catalog/usecase/query"
	"github.com/tair/catalog-api/pkg/cache"
)

func seed(t *testing.T, store *storetest.Store, sku, price string) *domain.Product {
	t.Helper()
	handler := command.NewCreateProductHandler(store, consistency.NewEngine(), nil)
	product, err := handler.Handle(context.Background(), command.CreateProductCommand{
		Name:   "Widget " + sku,
		Price:  decimal.RequireFromString(price),
		SKU:    sku,
		UserID: 1,
	})
	require.NoError(t, err)
	return product
}

func TestGetProductBySKU(t *testing.T) {
	store := storetest.New()
	seed(t, store, "WID-1", "10.99")

	handler := query.NewGetProductHandler(store)
	product, err := handler.Handle(context.Background(), query.GetProductQuery{SKU: "WID-1"})
	require.NoError(t, err)
	assert.Equal(t, "WID-1", product.SKU)

	_, err = handler.Handle(context.Background(), query.GetProductQuery{SKU: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestListProductsPagination(t *testing.T) {
	store := storetest.New()
	for _, sku := range []string{"A", "B", "C"} {
		seed(t, store, sku, "1.00")
	}

	handler := query.NewListProductsHandler(store)

	page, err := handler.Handle(context.Background(), query.ListProductsQuery{Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	rest, err := handler.Handle(context.Background(), query.ListProductsQuery{Limit: 2, Offset: 2})
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestGetCategoryResolvesParent(t *testing.T) {
	store := storetest.New()
	parentHandler := command.NewCreateCategoryHandler(store)
	_, err := parentHandler.Handle(context.Background(), command.CreateCategoryCommand{Name: "eletrônicos"})
	require.NoError(t, err)
	_, err = parentHandler.Handle(context.Background(), command.CreateCategoryCommand{
		Name: "notebooks", ParentName: "eletrônicos",
	})
	require.NoError(t, err)

	handler := query.NewGetCategoryHandler(store)

	// lookup is case-insensitive
	result, err := handler.Handle(context.Background(), query.GetCategoryQuery{Name: "Notebooks"})
	require.NoError(t, err)
	assert.True(t, result.Category.IsSubcategory())
	require.NotNil(t, result.Parent)
	assert.Equal(t, "eletrônicos", result.Parent.Name)

	root, err := handler.Handle(context.Background(), query.GetCategoryQuery{Name: "eletrônicos"})
	require.NoError(t, err)
	assert.Nil(t, root.Parent)
}

func TestListStockResolvesSKUs(t *testing.T) {
	store := storetest.New()
	seed(t, store, "WID-1", "10.99")
	seed(t, store, "WID-2", "5.00")

	handler := query.NewListStockHandler(store)
	items, err := handler.Handle(context.Background(), query.ListStockQuery{})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "WID-1", items[0].SKU)
	assert.Equal(t, 0, items[0].Quantity)
}

func TestGetStockBySKU(t *testing.T) {
	store := storetest.New()
	seed(t, store, "WID-1", "10.99")

	handler := query.NewGetStockHandler(store)
	item, err := handler.Handle(context.Background(), query.GetStockQuery{SKU: "WID-1"})
	require.NoError(t, err)
	assert.Equal(t, "WID-1", item.SKU)

	_, err = handler.Handle(context.Background(), query.GetStockQuery{SKU: "NOPE"})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestGetRatingFallsThroughToStore(t *testing.T) {
	store := storetest.New()
	product := seed(t, store, "WID-1", "10.99")

	engine := consistency.NewEngine()
	require.NoError(t, store.Reviews().Create(&domain.Review{
		ProductID: product.ID, UserID: 1, Rating: 8,
	}))
	require.NoError(t, engine.RecomputeRating(store, product.ID))

	// cache is disabled (no redis client), so every read hits the store
	handler := query.NewGetRatingHandler(store, cache.NewRatingCache(nil))
	result, err := handler.Handle(context.Background(), query.GetRatingQuery{SKU: "WID-1"})
	require.NoError(t, err)
	assert.Equal(t, "WID-1", result.SKU)
	assert.True(t, result.AverageRating.Equal(decimal.RequireFromString("8.00")))
	assert.Equal(t, 1, result.RatingsCount)
}

func TestGetPriceHistoryNewestFirst(t *testing.T) {
	store := storetest.New()
	product := seed(t, store, "WID-1", "10.99")

	update := command.NewUpdateProductHandler(store, consistency.NewEngine(), nil)
	newPrice := decimal.RequireFromString("15.99")
	_, err := update.Handle(context.Background(), command.UpdateProductCommand{
		SKU: "WID-1", Price: &newPrice, UserID: 1,
	})
	require.NoError(t, err)

	handler := query.NewGetPriceHistoryHandler(store)
	entries, err := handler.Handle(context.Background(), query.GetPriceHistoryQuery{SKU: "WID-1"})
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, product.ID, entries[0].ProductID)
	assert.True(t, entries[0].NewPrice.Equal(newPrice))
	assert.True(t, entries[1].OldPrice.IsZero())
}
