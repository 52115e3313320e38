package repository

import (
	"strings"

	"iphone_store/internal/domain/category/model"

	"gorm.io/gorm"
)

// CategoryRepository 接口定义
type CategoryRepository interface {
	Create(category *model.Category) error
	GetByID(id uint) (*model.Category, error)
	NameExists(name string, excludeID uint) (bool, error)
	GetList(offset, limit int) ([]model.Category, int64, error)
	Update(category *model.Category) error
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	return r.db.Create(category).Error
}

func (r *categoryRepository) GetByID(id uint) (*model.Category, error) {
	var category model.Category
	if err := r.db.Where("id = ? AND is_active = ?", id, true).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// NameExists 名称是否被占用，excludeID 用于更新时排除自身
func (r *categoryRepository) NameExists(name string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&model.Category{}).Where("LOWER(category_name) = ?", strings.ToLower(strings.TrimSpace(name)))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *categoryRepository) GetList(offset, limit int) ([]model.Category, int64, error) {
	var categories []model.Category
	var total int64

	if err := r.db.Model(&model.Category{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("is_active = ?", true).
		Order("category_name ASC").Offset(offset).Limit(limit).Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (r *categoryRepository) Update(category *model.Category) error {
	return r.db.Save(category).Error
}
