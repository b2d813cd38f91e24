package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/internal/catalog/storetest"
	"github.com/tair/catalog-api/internal/catalog/usecase/command"
)

func TestUpdateStockSetsQuantity(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")

	handler := command.NewUpdateStockHandler(store)
	stock, err := handler.Handle(context.Background(), command.UpdateStockCommand{
		SKU:      "WID-1",
		Quantity: 40,
	})
	require.NoError(t, err)
	assert.Equal(t, 40, stock.Quantity)
	assert.Equal(t, product.ID, stock.ProductID)

	stored, err := store.Stock().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, 40, stored.Quantity)
}

func TestUpdateStockRejectsNegativeQuantity(t *testing.T) {
	store := storetest.New()
	createProduct(t, store, "WID-1", "10.99")

	handler := command.NewUpdateStockHandler(store)
	_, err := handler.Handle(context.Background(), command.UpdateStockCommand{
		SKU:      "WID-1",
		Quantity: -1,
	})
	assert.True(t, domain.IsValidation(err), "got %v", err)
}

func TestUpdateStockUnknownProduct(t *testing.T) {
	store := storetest.New()

	handler := command.NewUpdateStockHandler(store)
	_, err := handler.Handle(context.Background(), command.UpdateStockCommand{
		SKU:      "NOPE",
		Quantity: 1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateStockRecreatesMissingRow(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")
	require.NoError(t, store.Stock().DeleteByProductID(product.ID))

	handler := command.NewUpdateStockHandler(store)
	stock, err := handler.Handle(context.Background(), command.UpdateStockCommand{
		SKU:      "WID-1",
		Quantity: 5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, stock.Quantity)
}
