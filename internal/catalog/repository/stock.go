package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

type GormStockRepository struct {
	db *gorm.DB
}

func (r *GormStockRepository) Create(stock *domain.ProductStock) error {
	return r.db.Create(stock).Error
}

func (r *GormStockRepository) FindByProductID(productID uint) (*domain.ProductStock, error) {
	var stock domain.ProductStock
	err := r.db.Where("product_id = ?", productID).First(&stock).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStockNotFound
		}
		return nil, err
	}
	return &stock, nil
}

func (r *GormStockRepository) FindAll(limit, offset int) ([]domain.ProductStock, error) {
	var stocks []domain.ProductStock
	err := r.db.Limit(limit).Offset(offset).Find(&stocks).Error
	return stocks, err
}

func (r *GormStockRepository) Update(stock *domain.ProductStock) error {
	return r.db.Save(stock).Error
}

func (r *GormStockRepository) DeleteByProductID(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.ProductStock{}).Error
}
