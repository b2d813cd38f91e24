package command

import (
	"context"
	"errors"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// CreateCategoryCommand represents the command to create a category. The
// parent, when given, is referenced by its (normalized) name.
type CreateCategoryCommand struct {
	Name        string
	Description string
	ParentName  string
}

// CreateCategoryHandler handles category creation command
type CreateCategoryHandler struct {
	store domain.Store
}

// NewCreateCategoryHandler creates a new create category handler
func NewCreateCategoryHandler(store domain.Store) *CreateCategoryHandler {
	return &CreateCategoryHandler{store: store}
}

// Handle executes the create category command. Names are lowercased before
// persistence, which makes the uniqueness check case-insensitive.
func (h *CreateCategoryHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) (*domain.Category, error) {
	name := domain.NormalizeCategoryName(cmd.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}

	var category *domain.Category
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		if _, err := tx.Categories().FindByName(name); err == nil {
			return domain.ErrCategoryExists
		} else if !errors.Is(err, domain.ErrCategoryNotFound) {
			return err
		}

		var parentID *uint
		if cmd.ParentName != "" {
			parent, err := tx.Categories().FindByName(domain.NormalizeCategoryName(cmd.ParentName))
			if err != nil {
				return err
			}
			parentID = &parent.ID
		}

		category = &domain.Category{
			Name:        name,
			Description: cmd.Description,
			ParentID:    parentID,
		}
		return tx.Categories().Create(category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}
