package domain

import "time"

// ProductStock tracks the on-hand quantity for a product. Exactly one row
// exists per product; it is created automatically when the product is created
// and never authored directly by a client.
type ProductStock struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	ProductID   uint      `json:"product_id" gorm:"uniqueIndex;not null"`
	Quantity    int       `json:"quantity" gorm:"not null;default:0"`
	LastUpdated time.Time `json:"last_updated" gorm:"autoUpdateTime"`
}

// TableName specifies the table name
func (ProductStock) TableName() string {
	return "product_stock"
}

// StockRepository defines the contract for stock data access
type StockRepository interface {
	Create(stock *ProductStock) error
	FindByProductID(productID uint) (*ProductStock, error)
	FindAll(limit, offset int) ([]ProductStock, error)
	Update(stock *ProductStock) error
	DeleteByProductID(productID uint) error
}
