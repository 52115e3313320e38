package repository

import (
	"iphone_store/internal/domain/review/model"

	"gorm.io/gorm"
)

// ReviewRepository 评价数据访问接口
type ReviewRepository interface {
	Create(review *model.Review) error
	GetByID(id uint) (*model.Review, error)
	ListByProduct(productID uint, offset, limit int) ([]model.Review, int64, error)
	Update(review *model.Review) error
	Deactivate(id uint, updatedBy string) error
	AverageRating(productID uint) (float64, int64, error)
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *model.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*model.Review, error) {
	var review model.Review
	err := r.db.Preload("User").
		Where("id = ? AND is_active = ?", id, true).
		First(&review).Error
	if err != nil {
		return nil, err
	}
	return &review, nil
}

// ListByProduct 按商品分页查评价，新的在前
func (r *reviewRepository) ListByProduct(productID uint, offset, limit int) ([]model.Review, int64, error) {
	var reviews []model.Review
	var total int64

	q := r.db.Model(&model.Review{}).Where("product_id = ? AND is_active = ?", productID, true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Preload("User").
		Where("product_id = ? AND is_active = ?", productID, true).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&reviews).Error
	if err != nil {
		return nil, 0, err
	}
	return reviews, total, nil
}

func (r *reviewRepository) Update(review *model.Review) error {
	return r.db.Model(&model.Review{}).Where("id = ?", review.ID).
		Updates(map[string]interface{}{
			"rating":     review.Rating,
			"comment":    review.Comment,
			"updated_by": review.UpdatedBy,
		}).Error
}

// Deactivate 软删除
func (r *reviewRepository) Deactivate(id uint, updatedBy string) error {
	return r.db.Model(&model.Review{}).Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_by": updatedBy,
		}).Error
}

// AverageRating 商品的平均评分与评价数，没有评价时平均分为 0
func (r *reviewRepository) AverageRating(productID uint) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.Model(&model.Review{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("product_id = ? AND is_active = ?", productID, true).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
