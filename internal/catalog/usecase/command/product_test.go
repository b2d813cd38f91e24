package command_test

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
)

func createProduct(t *testing.T, store *storetest.Store, sku, price string) *domain.Product {
	t.Helper()
	handler := command.NewCreateProductHandler(store, consistency.NewEngine(), nil)
	product, err := handler.Handle(context.Background(), command.CreateProductCommand{
		Name:   "Widget",
		Price:  decimal.RequireFromString(price),
		SKU:    sku,
		UserID: 1,
	})
	require.NoError(t, err)
	return product
}

func TestCreateProductInitializesDerivedState(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")

	stock, err := store.Stock().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stock.Quantity)

	entries, err := store.PriceHistory().FindByProductID(product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, entries[0].OldPrice.IsZero())
	assert.True(t, entries[0].NewPrice.Equal(decimal.RequireFromString("10.99")))
	assert.Equal(t, uint(1), entries[0].UserID)
}

func TestCreateProductDefaultsToSentinelCategory(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")

	require.NotNil(t, product.CategoryID)
	category, err := store.Categories().FindByID(*product.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultCategoryName, category.Name)

	// a second product reuses the sentinel instead of creating another
	second := createProduct(t, store, "WID-2", "5.00")
	assert.Equal(t, *product.CategoryID, *second.CategoryID)
}

func TestCreateProductExplicitCategoryMustExist(t *testing.T) {
	store := storetest.New()
	handler := command.NewCreateProductHandler(store, consistency.NewEngine(), nil)

	_, err := handler.Handle(context.Background(), command.CreateProductCommand{
		Name:         "Widget",
		Price:        decimal.RequireFromString("10.99"),
		SKU:          "WID-1",
		CategoryName: "eletrônicos",
		UserID:       1,
	})
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestCreateProductRejectsDuplicateSKU(t *testing.T) {
	store := storetest.New()
	createProduct(t, store, "WID-1", "10.99")

	handler := command.NewCreateProductHandler(store, consistency.NewEngine(), nil)
	_, err := handler.Handle(context.Background(), command.CreateProductCommand{
		Name:   "Other",
		Price:  decimal.RequireFromString("1.00"),
		SKU:    "WID-1",
		UserID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSKUExists)
}

func TestCreateProductValidation(t *testing.T) {
	store := storetest.New()
	handler := command.NewCreateProductHandler(store, consistency.NewEngine(), nil)

	tests := []struct {
		name string
		cmd  command.CreateProductCommand
	}{
		{"missing name", command.CreateProductCommand{SKU: "X", Price: decimal.NewFromInt(1), UserID: 1}},
		{"missing sku", command.CreateProductCommand{Name: "X", Price: decimal.NewFromInt(1), UserID: 1}},
		{"negative price", command.CreateProductCommand{Name: "X", SKU: "X", Price: decimal.NewFromInt(-1), UserID: 1}},
		{"missing user", command.CreateProductCommand{Name: "X", SKU: "X", Price: decimal.NewFromInt(1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := handler.Handle(context.Background(), tt.cmd)
			assert.True(t, domain.IsValidation(err), "want validation error, got %v", err)
		})
	}
}

func TestUpdateProductRecordsPriceChange(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")

	handler := command.NewUpdateProductHandler(store, consistency.NewEngine(), nil)
	newPrice := decimal.RequireFromString("15.99")
	updated, err := handler.Handle(context.Background(), command.UpdateProductCommand{
		SKU:    "WID-1",
		Price:  &newPrice,
		UserID: 2,
	})
	require.NoError(t, err)
	assert.True(t, updated.Price.Equal(newPrice))

	entries, err := store.PriceHistory().FindByProductID(product.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.True(t, entries[0].OldPrice.Equal(decimal.RequireFromString("10.99")))
	assert.True(t, entries[0].NewPrice.Equal(newPrice))
	assert.Equal(t, uint(2), entries[0].UserID)
}

func TestUpdateProductWithoutPriceChangeAddsNoHistory(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")

	handler := command.NewUpdateProductHandler(store, consistency.NewEngine(), nil)

	name := "Renamed"
	_, err := handler.Handle(context.Background(), command.UpdateProductCommand{
		SKU:    "WID-1",
		Name:   &name,
		UserID: 2,
	})
	require.NoError(t, err)

	// saving the same price again must not append either
	samePrice := decimal.RequireFromString("10.99")
	_, err = handler.Handle(context.Background(), command.UpdateProductCommand{
		SKU:    "WID-1",
		Price:  &samePrice,
		UserID: 2,
	})
	require.NoError(t, err)

	entries, err := store.PriceHistory().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdateProductSKUConflict(t *testing.T) {
	store := storetest.New()
	createProduct(t, store, "WID-1", "10.99")
	createProduct(t, store, "WID-2", "5.00")

	handler := command.NewUpdateProductHandler(store, consistency.NewEngine(), nil)
	taken := "WID-2"
	_, err := handler.Handle(context.Background(), command.UpdateProductCommand{
		SKU:    "WID-1",
		NewSKU: &taken,
		UserID: 1,
	})
	assert.ErrorIs(t, err, domain.ErrSKUExists)
}

func TestDeleteProductBlockedByStock(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")

	stock, err := store.Stock().FindByProductID(product.ID)
	require.NoError(t, err)
	stock.Quantity = 3
	require.NoError(t, store.Stock().Update(stock))

	handler := command.NewDeleteProductHandler(store)
	err = handler.Handle(context.Background(), command.DeleteProductCommand{SKU: "WID-1"})
	assert.ErrorIs(t, err, domain.ErrProductHasStock)

	// product must survive the refused deletion
	_, err = store.Products().FindBySKU("WID-1")
	assert.NoError(t, err)
}

func TestDeleteProductRemovesDependents(t *testing.T) {
	store := storetest.New()
	engine := consistency.NewEngine()
	product := createProduct(t, store, "WID-1", "10.99")

	require.NoError(t, store.Reviews().Create(&domain.Review{
		ProductID: product.ID, UserID: 1, Rating: 9,
	}))
	require.NoError(t, engine.RecomputeRating(store, product.ID))

	handler := command.NewDeleteProductHandler(store)
	require.NoError(t, handler.Handle(context.Background(), command.DeleteProductCommand{SKU: "WID-1"}))

	_, err := store.Products().FindBySKU("WID-1")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	_, err = store.Stock().FindByProductID(product.ID)
	assert.ErrorIs(t, err, domain.ErrStockNotFound)
	_, err = store.Ratings().FindByProductID(product.ID)
	assert.ErrorIs(t, err, domain.ErrRatingNotFound)

	reviews, err := store.Reviews().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	entries, err := store.PriceHistory().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
