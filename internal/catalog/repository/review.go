package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tair/catalog-api/internal/catalog/domain"
)

type GormReviewRepository struct {
	db *gorm.DB
}

func (r *GormReviewRepository) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

func (r *GormReviewRepository) FindByID(id uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *GormReviewRepository) FindByProductID(productID uint) ([]domain.Review, error) {
	var reviews []domain.Review
	err := r.db.Where("product_id = ?", productID).Find(&reviews).Error
	return reviews, err
}

func (r *GormReviewRepository) Update(review *domain.Review) error {
	return r.db.Save(review).Error
}

func (r *GormReviewRepository) Delete(id uint) error {
	return r.db.Delete(&domain.Review{}, id).Error
}

func (r *GormReviewRepository) DeleteByProductID(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.Review{}).Error
}

type GormRatingRepository struct {
	db *gorm.DB
}

func (r *GormRatingRepository) FindByProductID(productID uint) (*domain.ProductRating, error) {
	var rating domain.ProductRating
	err := r.db.Where("product_id = ?", productID).First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *GormRatingRepository) Upsert(rating *domain.ProductRating) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"average_rating", "ratings_count"}),
	}).Create(rating).Error
}

func (r *GormRatingRepository) DeleteByProductID(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.ProductRating{}).Error
}

type GormPriceHistoryRepository struct {
	db *gorm.DB
}

func (r *GormPriceHistoryRepository) Create(entry *domain.PriceHistory) error {
	return r.db.Create(entry).Error
}

func (r *GormPriceHistoryRepository) FindByProductID(productID uint) ([]domain.PriceHistory, error) {
	var entries []domain.PriceHistory
	err := r.db.Where("product_id = ?", productID).Order("change_date DESC").Find(&entries).Error
	return entries, err
}

func (r *GormPriceHistoryRepository) DeleteByProductID(productID uint) error {
	return r.db.Where("product_id = ?", productID).Delete(&domain.PriceHistory{}).Error
}
