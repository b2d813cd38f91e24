package kafka

import "time"

// ProductCreatedEvent is emitted after a product (and its derived records)
// has been committed
type ProductCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	SKU       string    `json:"sku"`
	Name      string    `json:"name"`
	Price     string    `json:"price"`
	UserID    uint      `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// PriceChangedEvent is emitted after a price-changing product update commits
type PriceChangedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ProductID uint      `json:"product_id"`
	SKU       string    `json:"sku"`
	OldPrice  string    `json:"old_price"`
	NewPrice  string    `json:"new_price"`
	UserID    uint      `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// ReviewCreatedEvent is emitted after a review and its rating recomputation
// commit
type ReviewCreatedEvent struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	ReviewID  uint      `json:"review_id"`
	ProductID uint      `json:"product_id"`
	SKU       string    `json:"sku"`
	Rating    int       `json:"rating"`
	UserID    uint      `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}

// Event types
const (
	EventTypeProductCreated = "product.created"
	EventTypePriceChanged   = "product.price_changed"
	EventTypeReviewCreated  = "review.created"
)

// Kafka topics
const (
	TopicProductCreated = "product-created"
	TopicPriceChanged   = "product-price-changed"
	TopicReviewCreated  = "review-created"
)
