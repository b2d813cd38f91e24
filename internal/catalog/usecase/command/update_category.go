package command

import (
	"context"
	"errors"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// UpdateCategoryCommand represents a partial category update keyed by the
// (normalized) current name. Nil fields are left untouched.
type UpdateCategoryCommand struct {
	Name        string
	NewName     *string
	Description *string
	ParentName  *string
}

// UpdateCategoryHandler handles category update command
type UpdateCategoryHandler struct {
	store domain.Store
}

// NewUpdateCategoryHandler creates a new update category handler
func NewUpdateCategoryHandler(store domain.Store) *UpdateCategoryHandler {
	return &UpdateCategoryHandler{store: store}
}

// Handle executes the update category command. Renames re-normalize and
// re-check uniqueness; reparenting rejects any parent inside the category's
// own subtree so the hierarchy stays acyclic.
func (h *UpdateCategoryHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) (*domain.Category, error) {
	var category *domain.Category
	err := h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		var err error
		category, err = tx.Categories().FindByName(domain.NormalizeCategoryName(cmd.Name))
		if err != nil {
			return err
		}

		if cmd.NewName != nil {
			newName := domain.NormalizeCategoryName(*cmd.NewName)
			if newName == "" {
				return domain.NewValidationError("name", "name cannot be empty")
			}
			if newName != category.Name {
				if _, err := tx.Categories().FindByName(newName); err == nil {
					return domain.ErrCategoryExists
				} else if !errors.Is(err, domain.ErrCategoryNotFound) {
					return err
				}
				category.Name = newName
			}
		}

		if cmd.Description != nil {
			category.Description = *cmd.Description
		}

		if cmd.ParentName != nil {
			if *cmd.ParentName == "" {
				// promote to root
				category.ParentID = nil
			} else {
				parent, err := tx.Categories().FindByName(domain.NormalizeCategoryName(*cmd.ParentName))
				if err != nil {
					return err
				}
				subtree, err := collectSubtree(tx, category.ID)
				if err != nil {
					return err
				}
				for _, id := range subtree {
					if id == parent.ID {
						return domain.NewValidationError("parent_name", "parent cannot be the category itself or one of its descendants")
					}
				}
				category.ParentID = &parent.ID
			}
		}

		return tx.Categories().Update(category)
	})
	if err != nil {
		return nil, err
	}

	return category, nil
}
