package command

import (
	"context"

	"github.com/tair/catalog-api/kafka"
)

// EventPublisher publishes catalog domain events after a write commits.
// Implemented by kafka.Publisher; a nil publisher disables events.
type EventPublisher interface {
	PublishProductCreated(ctx context.Context, event kafka.ProductCreatedEvent) error
	PublishPriceChanged(ctx context.Context, event kafka.PriceChangedEvent) error
	PublishReviewCreated(ctx context.Context, event kafka.ReviewCreatedEvent) error
}
