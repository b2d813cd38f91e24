package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents the product entity. Products are addressed by their SKU
// at the API boundary; the numeric ID stays internal.
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"not null"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	SKU         string          `json:"sku" gorm:"uniqueIndex;not null"`
	SupplierID  *uint           `json:"supplier_id"`
	CategoryID  *uint           `json:"category_id"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// PriceHistory is an append-only log of price changes. Every price-changing
// write produces exactly one row, including the initial creation (old price 0).
type PriceHistory struct {
	ID         uint            `json:"id" gorm:"primaryKey"`
	ProductID  uint            `json:"product_id" gorm:"not null;index"`
	OldPrice   decimal.Decimal `json:"old_price" gorm:"type:decimal(10,2);not null"`
	NewPrice   decimal.Decimal `json:"new_price" gorm:"type:decimal(10,2);not null"`
	ChangeDate time.Time       `json:"change_date" gorm:"autoCreateTime"`
	UserID     uint            `json:"user_id" gorm:"not null"`
}

// TableName specifies the table name
func (PriceHistory) TableName() string {
	return "price_history"
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	// FindByIDForUpdate locks the product row for the duration of the
	// surrounding transaction. Derived-state recomputation locks the product
	// so concurrent review writes serialize.
	FindByIDForUpdate(id uint) (*Product, error)
	FindBySKU(sku string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	Delete(id uint) error
	Count() (int64, error)
	CountBySupplier(supplierID uint) (int64, error)
	CountByCategories(categoryIDs []uint) (int64, error)
}

// PriceHistoryRepository defines the contract for price history data access
type PriceHistoryRepository interface {
	Create(entry *PriceHistory) error
	FindByProductID(productID uint) ([]PriceHistory, error)
	DeleteByProductID(productID uint) error
}
