package command

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/tair/catalog-api/internal/catalog/consistency"
	"github.com/tair/catalog-api/internal/catalog/domain"
	"github.com/tair/catalog-api/kafka"
	"github.com/tair/catalog-api/pkg/logger"
)

// UpdateProductCommand represents a partial product update keyed by sku.
// Nil fields are left untouched.
type UpdateProductCommand struct {
	SKU          string
	Name         *string
	Description  *string
	Price        *decimal.Decimal
	NewSKU       *string
	CategoryName *string
	SupplierID   *uint
	UserID       uint
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	store  domain.Store
	engine *consistency.Engine
	events EventPublisher
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(store domain.Store, engine *consistency.Engine, events EventPublisher) *UpdateProductHandler {
	return &UpdateProductHandler{store: store, engine: engine, events: events}
}

// Handle executes the update product command. The old price is captured
// before the save; a price history entry is appended only when the price
// actually changed, in the same transaction as the save.
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.Price != nil && cmd.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "price cannot be negative")
	}
	if cmd.NewSKU != nil && *cmd.NewSKU == "" {
		return nil, domain.NewValidationError("sku", "sku cannot be empty")
	}
	if cmd.Name != nil && *cmd.Name == "" {
		return nil, domain.NewValidationError("name", "name cannot be empty")
	}

	var (
		product      *domain.Product
		oldPrice     decimal.Decimal
		priceChanged bool
	)
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		var err error
		product, err = tx.Products().FindBySKU(cmd.SKU)
		if err != nil {
			return err
		}

		if cmd.CategoryName != nil {
			category, err := tx.Categories().FindByName(domain.NormalizeCategoryName(*cmd.CategoryName))
			if err != nil {
				return err
			}
			product.CategoryID = &category.ID
		}

		if cmd.SupplierID != nil {
			if _, err := tx.Suppliers().FindByID(*cmd.SupplierID); err != nil {
				return err
			}
			product.SupplierID = cmd.SupplierID
		}

		if cmd.NewSKU != nil && *cmd.NewSKU != product.SKU {
			if _, err := tx.Products().FindBySKU(*cmd.NewSKU); err == nil {
				return domain.ErrSKUExists
			} else if !errors.Is(err, domain.ErrProductNotFound) {
				return err
			}
			product.SKU = *cmd.NewSKU
		}

		if cmd.Name != nil {
			product.Name = *cmd.Name
		}
		if cmd.Description != nil {
			product.Description = *cmd.Description
		}

		oldPrice = product.Price
		if cmd.Price != nil {
			product.Price = cmd.Price.Round(2)
		}

		if err := tx.Products().Update(product); err != nil {
			return err
		}

		priceChanged = !oldPrice.Equal(product.Price)
		if priceChanged {
			return h.engine.RecordPriceChange(tx, product.ID, oldPrice, product.Price, cmd.UserID)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if priceChanged && h.events != nil {
		event := kafka.PriceChangedEvent{
			ProductID: product.ID,
			SKU:       product.SKU,
			OldPrice:  oldPrice.StringFixed(2),
			NewPrice:  product.Price.StringFixed(2),
			UserID:    cmd.UserID,
		}
		if err := h.events.PublishPriceChanged(ctx, event); err != nil {
			logger.Logger.Warn().Err(err).Str("sku", product.SKU).Msg("Failed to publish product.price_changed")
		}
	}

	return product, nil
}
