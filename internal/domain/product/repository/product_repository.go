package repository

import (
	"strings"

	"iphone_store/internal/domain/product/model"

	"gorm.io/gorm"
)

// ListFilter 商品列表过滤条件
type ListFilter struct {
	Search     string // 按名称模糊匹配，不区分大小写
	CategoryID uint   // 0 表示全部分类
	Offset     int
	Limit      int
}

// ProductRepository 接口定义
type ProductRepository interface {
	Create(product *model.Product) error
	GetByID(id uint) (*model.Product, error)
	SkuExists(sku string, excludeID uint) (bool, error)
	GetList(filter ListFilter) ([]model.Product, int64, error)
	Update(product *model.Product) error
	AddImage(image *model.ProductImage) error
	GetImage(imageID uint) (*model.ProductImage, error)
	DeleteImage(imageID uint) error
}

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *model.Product) error {
	return r.db.Create(product).Error
}

func (r *productRepository) GetByID(id uint) (*model.Product, error) {
	var product model.Product
	if err := r.db.Preload("Category").Preload("Images").
		Where("id = ? AND is_active = ?", id, true).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

// SkuExists SKU 是否被占用（不区分大小写），excludeID 用于更新时排除自身
func (r *productRepository) SkuExists(sku string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.Model(&model.Product{}).Where("LOWER(sku) = ?", strings.ToLower(strings.TrimSpace(sku)))
	if excludeID > 0 {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *productRepository) GetList(filter ListFilter) ([]model.Product, int64, error) {
	var products []model.Product
	var total int64

	q := r.db.Model(&model.Product{}).Where("is_active = ?", true)
	if filter.Search != "" {
		q = q.Where("product_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.CategoryID > 0 {
		q = q.Where("category_id = ?", filter.CategoryID)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Preload("Category").Preload("Images").
		Order("created_at DESC").Offset(filter.Offset).Limit(filter.Limit).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (r *productRepository) Update(product *model.Product) error {
	return r.db.Save(product).Error
}

func (r *productRepository) AddImage(image *model.ProductImage) error {
	return r.db.Create(image).Error
}

func (r *productRepository) GetImage(imageID uint) (*model.ProductImage, error) {
	var image model.ProductImage
	if err := r.db.First(&image, imageID).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *productRepository) DeleteImage(imageID uint) error {
	return r.db.Delete(&model.ProductImage{}, imageID).Error
}
