package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

// GormStore implements domain.Store on top of a GORM connection. A store
// obtained through InTransaction is bound to the transaction handle, so every
// repository it hands out shares the same unit of work.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a store backed by the given GORM connection
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// AutoMigrate creates or updates the catalog schema
func (s *GormStore) AutoMigrate() error {
	return s.db.AutoMigrate(
		&domain.Product{},
		&domain.Category{},
		&domain.Supplier{},
		&domain.ProductStock{},
		&domain.ProductRating{},
		&domain.PriceHistory{},
		&domain.Review{},
	)
}

// WithContext binds the store to a request context
func (s *GormStore) WithContext(ctx context.Context) domain.Store {
	return &GormStore{db: s.db.WithContext(ctx)}
}

// InTransaction runs fn inside a single database transaction
func (s *GormStore) InTransaction(fn func(tx domain.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) Products() domain.ProductRepository {
	return &GormProductRepository{db: s.db}
}

func (s *GormStore) Categories() domain.CategoryRepository {
	return &GormCategoryRepository{db: s.db}
}

func (s *GormStore) Suppliers() domain.SupplierRepository {
	return &GormSupplierRepository{db: s.db}
}

func (s *GormStore) Stock() domain.StockRepository {
	return &GormStockRepository{db: s.db}
}

func (s *GormStore) Reviews() domain.ReviewRepository {
	return &GormReviewRepository{db: s.db}
}

func (s *GormStore) Ratings() domain.RatingRepository {
	return &GormRatingRepository{db: s.db}
}

func (s *GormStore) PriceHistory() domain.PriceHistoryRepository {
	return &GormPriceHistoryRepository{db: s.db}
}
