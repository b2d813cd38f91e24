package query

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// GetCategoryQuery represents the query to get a category by name
type GetCategoryQuery struct {
	Name string
}

// GetCategoryHandler handles get category query
type GetCategoryHandler struct {
	store domain.Store
}

// NewGetCategoryHandler creates a new get category handler
func NewGetCategoryHandler(store domain.Store) *GetCategoryHandler {
	return &GetCategoryHandler{store: store}
}

// CategoryResult pairs a category with its resolved parent name
type CategoryResult struct {
	Category *domain.Category
	Parent   *domain.Category
}

// Handle executes the get category query, resolving the parent when present
func (h *GetCategoryHandler) Handle(ctx context.Context, q GetCategoryQuery) (*CategoryResult, error) {
	store := h.store.WithContext(ctx)

	category, err := store.Categories().FindByName(domain.NormalizeCategoryName(q.Name))
	if err != nil {
		return nil, err
	}

	result := &CategoryResult{Category: category}
	if category.ParentID != nil {
		parent, err := store.Categories().FindByID(*category.ParentID)
		if err == nil {
			result.Parent = parent
		}
	}

	return result, nil
}
