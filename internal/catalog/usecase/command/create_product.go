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

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name         string
	Description  string
	Price        decimal.Decimal
	SKU          string
	CategoryName string // optional; the sentinel category is used when empty
	SupplierID   *uint
	UserID       uint // acting user, attributed on the price history entry
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	store  domain.Store
	engine *consistency.Engine
	events EventPublisher
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(store domain.Store, engine *consistency.Engine, events EventPublisher) *CreateProductHandler {
	return &CreateProductHandler{store: store, engine: engine, events: events}
}

// Handle executes the create product command. The product row, its stock
// record and the initial price history entry are written in one transaction.
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	if cmd.SKU == "" {
		return nil, domain.NewValidationError("sku", "sku is required")
	}
	if cmd.Price.IsNegative() {
		return nil, domain.NewValidationError("price", "price cannot be negative")
	}
	if cmd.UserID == 0 {
		return nil, domain.NewValidationError("user", "acting user is required")
	}

	var product *domain.Product
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		if _, err := tx.Products().FindBySKU(cmd.SKU); err == nil {
			return domain.ErrSKUExists
		} else if !errors.Is(err, domain.ErrProductNotFound) {
			return err
		}

		categoryID, err := resolveCategory(tx, cmd.CategoryName)
		if err != nil {
			return err
		}

		if cmd.SupplierID != nil {
			if _, err := tx.Suppliers().FindByID(*cmd.SupplierID); err != nil {
				return err
			}
		}

		product = &domain.Product{
			Name:        cmd.Name,
			Description: cmd.Description,
			Price:       cmd.Price.Round(2),
			SKU:         cmd.SKU,
			SupplierID:  cmd.SupplierID,
			CategoryID:  categoryID,
		}
		if err := tx.Products().Create(product); err != nil {
			return err
		}

		if err := h.engine.EnsureStock(tx, product.ID); err != nil {
			return err
		}
		return h.engine.RecordPriceChange(tx, product.ID, decimal.Zero, product.Price, cmd.UserID)
	})
	if err != nil {
		return nil, err
	}

	if h.events != nil {
		event := kafka.ProductCreatedEvent{
			ProductID: product.ID,
			SKU:       product.SKU,
			Name:      product.Name,
			Price:     product.Price.StringFixed(2),
			UserID:    cmd.UserID,
		}
		if err := h.events.PublishProductCreated(ctx, event); err != nil {
			logger.Logger.Warn().Err(err).Str("sku", product.SKU).Msg("Failed to publish product.created")
		}
	}

	return product, nil
}

// resolveCategory maps an optional category name to a category reference.
// An empty name resolves to the sentinel category, created on demand; an
// explicit name must already exist.
func resolveCategory(tx domain.Store, name string) (*uint, error) {
	if name == "" {
		category, err := tx.Categories().FindByName(domain.DefaultCategoryName)
		if errors.Is(err, domain.ErrCategoryNotFound) {
			category = &domain.Category{Name: domain.DefaultCategoryName}
			if err := tx.Categories().Create(category); err != nil {
				return nil, err
			}
		} else if err != nil {
			return nil, err
		}
		return &category.ID, nil
	}

	category, err := tx.Categories().FindByName(domain.NormalizeCategoryName(name))
	if err != nil {
		return nil, err
	}
	return &category.ID, nil
}
