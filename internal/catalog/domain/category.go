package domain

import (
	"strings"
	"time"
)

// DefaultCategoryName is the sentinel category assigned to products created
// without an explicit category. It is created on demand.
const DefaultCategoryName = "uncategorized"

// Category represents a product category. Names are normalized to lowercase
// before persistence, which makes them case-insensitively unique. A category
// without a parent is a root.
type Category struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	ParentID    *uint     `json:"parent_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Category) TableName() string {
	return "categories"
}

// IsSubcategory reports whether the category has a parent
func (c *Category) IsSubcategory() bool {
	return c.ParentID != nil
}

// NormalizeCategoryName lowercases and trims a category name. All lookups and
// writes go through this so "Eletrônicos" and "eletrônicos" collide.
func NormalizeCategoryName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CategoryRepository defines the contract for category data access
type CategoryRepository interface {
	Create(category *Category) error
	FindByID(id uint) (*Category, error)
	// FindByName expects an already-normalized name
	FindByName(name string) (*Category, error)
	FindAll(limit, offset int) ([]Category, error)
	FindChildren(parentID uint) ([]Category, error)
	Update(category *Category) error
	DeleteByIDs(ids []uint) error
}
