package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

type GormSupplierRepository struct {
	db *gorm.DB
}

func (r *GormSupplierRepository) Create(supplier *domain.Supplier) error {
	return r.db.Create(supplier).Error
}

func (r *GormSupplierRepository) FindByID(id uint) (*domain.Supplier, error) {
	var supplier domain.Supplier
	err := r.db.First(&supplier, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSupplierNotFound
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *GormSupplierRepository) FindAll(limit, offset int) ([]domain.Supplier, error) {
	var suppliers []domain.Supplier
	err := r.db.Limit(limit).Offset(offset).Find(&suppliers).Error
	return suppliers, err
}

func (r *GormSupplierRepository) Update(supplier *domain.Supplier) error {
	return r.db.Save(supplier).Error
}

func (r *GormSupplierRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Supplier{}, id).Error
}
