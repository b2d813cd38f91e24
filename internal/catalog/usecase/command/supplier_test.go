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

func TestCreateSupplier(t *testing.T) {
	store := storetest.New()
	handler := command.NewCreateSupplierHandler(store)

	supplier, err := handler.Handle(context.Background(), command.CreateSupplierCommand{
		Name:        "Acme",
		ContactInfo: "acme@example.com",
	})
	require.NoError(t, err)
	assert.NotZero(t, supplier.ID)

	_, err = handler.Handle(context.Background(), command.CreateSupplierCommand{})
	assert.True(t, domain.IsValidation(err))
}

func TestUpdateSupplierPartial(t *testing.T) {
	store := storetest.New()
	created, err := command.NewCreateSupplierHandler(store).Handle(context.Background(),
		command.CreateSupplierCommand{Name: "Acme", Description: "tools"})
	require.NoError(t, err)

	handler := command.NewUpdateSupplierHandler(store)
	contact := "sales@acme.example"
	updated, err := handler.Handle(context.Background(), command.UpdateSupplierCommand{
		ID:          created.ID,
		ContactInfo: &contact,
	})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.Name)
	assert.Equal(t, "tools", updated.Description)
	assert.Equal(t, contact, updated.ContactInfo)
}

func TestDeleteSupplierBlockedByProducts(t *testing.T) {
	store := storetest.New()
	supplier, err := command.NewCreateSupplierHandler(store).Handle(context.Background(),
		command.CreateSupplierCommand{Name: "Acme"})
	require.NoError(t, err)

	require.NoError(t, store.Products().Create(&domain.Product{
		Name: "Widget", SKU: "WID-1", SupplierID: &supplier.ID,
	}))

	handler := command.NewDeleteSupplierHandler(store)
	err = handler.Handle(context.Background(), command.DeleteSupplierCommand{ID: supplier.ID})
	assert.ErrorIs(t, err, domain.ErrSupplierInUse)

	_, err = store.Suppliers().FindByID(supplier.ID)
	assert.NoError(t, err)
}

func TestDeleteSupplierWithoutProducts(t *testing.T) {
	store := storetest.New()
	supplier, err := command.NewCreateSupplierHandler(store).Handle(context.Background(),
		command.CreateSupplierCommand{Name: "Acme"})
	require.NoError(t, err)

	handler := command.NewDeleteSupplierHandler(store)
	require.NoError(t, handler.Handle(context.Background(), command.DeleteSupplierCommand{ID: supplier.ID}))

	_, err = store.Suppliers().FindByID(supplier.ID)
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}
