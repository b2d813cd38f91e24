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
	"github.com/tair/catalog-api/pkg/cache"
)

func newReviewHandlers(store *storetest.Store) (*command.CreateReviewHandler, *command.UpdateReviewHandler, *command.DeleteReviewHandler) {
	engine := consistency.NewEngine()
	ratings := cache.NewRatingCache(nil)
	return command.NewCreateReviewHandler(store, engine, ratings, nil),
		command.NewUpdateReviewHandler(store, engine, ratings),
		command.NewDeleteReviewHandler(store, engine, ratings)
}

func TestCreateReviewRecomputesRating(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")
	create, _, _ := newReviewHandlers(store)

	for user, rating := range map[uint]int{1: 5, 2: 6, 3: 7} {
		_, err := create.Handle(context.Background(), command.CreateReviewCommand{
			ProductSKU: "WID-1",
			Rating:     rating,
			UserID:     user,
		})
		require.NoError(t, err)
	}

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.Equal(decimal.RequireFromString("6.00")),
		"got %s", aggregate.AverageRating)
	assert.Equal(t, 3, aggregate.RatingsCount)
}

func TestCreateReviewValidation(t *testing.T) {
	store := storetest.New()
	createProduct(t, store, "WID-1", "10.99")
	create, _, _ := newReviewHandlers(store)

	for _, rating := range []int{-1, 11} {
		_, err := create.Handle(context.Background(), command.CreateReviewCommand{
			ProductSKU: "WID-1",
			Rating:     rating,
			UserID:     1,
		})
		assert.True(t, domain.IsValidation(err), "rating %d: got %v", rating, err)
	}

	_, err := create.Handle(context.Background(), command.CreateReviewCommand{
		ProductSKU: "NOPE",
		Rating:     5,
		UserID:     1,
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestUpdateReviewOwnerOnly(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")
	create, update, _ := newReviewHandlers(store)

	review, err := create.Handle(context.Background(), command.CreateReviewCommand{
		ProductSKU: "WID-1", Rating: 4, UserID: 1,
	})
	require.NoError(t, err)

	rating := 9
	_, err = update.Handle(context.Background(), command.UpdateReviewCommand{
		ID: review.ID, Rating: &rating, UserID: 2,
	})
	assert.ErrorIs(t, err, domain.ErrNotReviewOwner)

	updated, err := update.Handle(context.Background(), command.UpdateReviewCommand{
		ID: review.ID, Rating: &rating, UserID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, updated.Rating)

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.Equal(decimal.RequireFromString("9.00")))
}

func TestDeleteReviewRecomputesFromRemaining(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")
	create, _, del := newReviewHandlers(store)

	first, err := create.Handle(context.Background(), command.CreateReviewCommand{
		ProductSKU: "WID-1", Rating: 5, UserID: 1,
	})
	require.NoError(t, err)
	_, err = create.Handle(context.Background(), command.CreateReviewCommand{
		ProductSKU: "WID-1", Rating: 7, UserID: 2,
	})
	require.NoError(t, err)

	require.NoError(t, del.Handle(context.Background(), command.DeleteReviewCommand{
		ID: first.ID, UserID: 1,
	}))

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.Equal(decimal.RequireFromString("7.00")))
	assert.Equal(t, 1, aggregate.RatingsCount)
}

func TestDeleteReviewAuthorization(t *testing.T) {
	store := storetest.New()
	createProduct(t, store, "WID-1", "10.99")
	create, _, del := newReviewHandlers(store)

	review, err := create.Handle(context.Background(), command.CreateReviewCommand{
		ProductSKU: "WID-1", Rating: 5, UserID: 1,
	})
	require.NoError(t, err)

	err = del.Handle(context.Background(), command.DeleteReviewCommand{ID: review.ID, UserID: 2})
	assert.ErrorIs(t, err, domain.ErrNotReviewOwner)

	// admins may delete anyone's review
	require.NoError(t, del.Handle(context.Background(), command.DeleteReviewCommand{
		ID: review.ID, UserID: 2, IsAdmin: true,
	}))

	_, err = store.Reviews().FindByID(review.ID)
	assert.ErrorIs(t, err, domain.ErrReviewNotFound)
}

func TestDeleteLastReviewZeroesAggregate(t *testing.T) {
	store := storetest.New()
	product := createProduct(t, store, "WID-1", "10.99")
	create, _, del := newReviewHandlers(store)

	review, err := create.Handle(context.Background(), command.CreateReviewCommand{
		ProductSKU: "WID-1", Rating: 8, UserID: 1,
	})
	require.NoError(t, err)

	require.NoError(t, del.Handle(context.Background(), command.DeleteReviewCommand{
		ID: review.ID, UserID: 1,
	}))

	aggregate, err := store.Ratings().FindByProductID(product.ID)
	require.NoError(t, err)
	assert.True(t, aggregate.AverageRating.IsZero())
	assert.Equal(t, 0, aggregate.RatingsCount)
}
