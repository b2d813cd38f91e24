package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rating bounds for reviews
const (
	MinRating = 0
	MaxRating = 10
)

// Review is a user's rating of a product. The product is identified by sku at
// the API boundary and resolved to its internal reference before persistence.
type Review struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ProductID  uint      `json:"product_id" gorm:"not null;index"`
	UserID     uint      `json:"user_id" gorm:"not null;index"`
	Rating     int       `json:"rating" gorm:"not null"`
	Comment    string    `json:"comment"`
	ReviewDate time.Time `json:"review_date" gorm:"autoCreateTime"`
}

// TableName specifies the table name
func (Review) TableName() string {
	return "reviews"
}

// ProductRating holds the derived rating aggregate for a product. It is
// recomputed from the full review set on every review write, never adjusted
// incrementally.
type ProductRating struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	ProductID     uint            `json:"product_id" gorm:"uniqueIndex;not null"`
	AverageRating decimal.Decimal `json:"average_rating" gorm:"type:decimal(3,2);not null;default:0"`
	RatingsCount  int             `json:"ratings_count" gorm:"not null;default:0"`
}

// TableName specifies the table name
func (ProductRating) TableName() string {
	return "product_ratings"
}

// ReviewRepository defines the contract for review data access
type ReviewRepository interface {
	Create(review *Review) error
	FindByID(id uint) (*Review, error)
	FindByProductID(productID uint) ([]Review, error)
	Update(review *Review) error
	Delete(id uint) error
	DeleteByProductID(productID uint) error
}

// RatingRepository defines the contract for rating aggregate data access
type RatingRepository interface {
	FindByProductID(productID uint) (*ProductRating, error)
	// Upsert creates the aggregate row for a product or overwrites both
	// derived fields when it already exists
	Upsert(rating *ProductRating) error
	DeleteByProductID(productID uint) error
}
