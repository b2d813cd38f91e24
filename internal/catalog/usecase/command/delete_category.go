package command

import (
	"context"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// DeleteCategoryCommand represents the command to delete a category by name
type DeleteCategoryCommand struct {
	Name string
}

// DeleteCategoryHandler handles category deletion command
type DeleteCategoryHandler struct {
	store domain.Store
}

// NewDeleteCategoryHandler creates a new delete category handler
func NewDeleteCategoryHandler(store domain.Store) *DeleteCategoryHandler {
	return &DeleteCategoryHandler{store: store}
}

// Handle executes the delete category command. Deleting a category cascades
// to its whole subtree, but only after checking that no product references
// the category or any of its descendants; a single referencing product
// blocks the entire deletion.
func (h *DeleteCategoryHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	return h.store.WithContext(ctx).InTransaction(func(tx domain.Store) error {
		category, err := tx.Categories().FindByName(domain.NormalizeCategoryName(cmd.Name))
		if err != nil {
			return err
		}

		subtree, err := collectSubtree(tx, category.ID)
		if err != nil {
			return err
		}

		count, err := tx.Products().CountByCategories(subtree)
		if err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrCategoryInUse
		}

		return tx.Categories().DeleteByIDs(subtree)
	})
}

// collectSubtree returns the ids of a category and all of its descendants.
// The visited set guards against malformed parent links.
func collectSubtree(tx domain.Store, rootID uint) ([]uint, error) {
	visited := map[uint]bool{rootID: true}
	ids := []uint{rootID}

	for queue := []uint{rootID}; len(queue) > 0; {
		id := queue[0]
		queue = queue[1:]

		children, err := tx.Categories().FindChildren(id)
		if err != nil {
			return nil, err
		}
		for _, child := range children {
			if visited[child.ID] {
				continue
			}
			visited[child.ID] = true
			ids = append(ids, child.ID)
			queue = append(queue, child.ID)
		}
	}

	return ids, nil
}
