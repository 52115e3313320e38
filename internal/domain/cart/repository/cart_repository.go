package repository

import (
	"iphone_store/internal/domain/cart/model"

	"gorm.io/gorm"
)

// CartRepository 接口定义
type CartRepository interface {
	Create(cart *model.Cart) error
	GetByID(id uint) (*model.Cart, error)
	// GetByUserAndProduct 查找该用户该商品的购物车行，包含已停用的行
	GetByUserAndProduct(userID, productID uint) (*model.Cart, error)
	// GetActiveByUser 该用户所有有效行，带商品信息
	GetActiveByUser(userID uint) ([]model.Cart, error)
	Update(cart *model.Cart) error
	Delete(cart *model.Cart) error
	// DeactivateByUser 停用该用户所有有效行，返回受影响行数
	DeactivateByUser(userID uint) (int64, error)
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *model.Cart) error {
	return r.db.Create(cart).Error
}

func (r *cartRepository) GetByID(id uint) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.Preload("Product").First(&cart, id).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetByUserAndProduct(userID, productID uint) (*model.Cart, error) {
	var cart model.Cart
	if err := r.db.Where("user_id = ? AND product_id = ?", userID, productID).First(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetActiveByUser(userID uint) ([]model.Cart, error) {
	var carts []model.Cart
	err := r.db.Preload("Product").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("updated_at DESC").
		Find(&carts).Error
	return carts, err
}

func (r *cartRepository) Update(cart *model.Cart) error {
	return r.db.Save(cart).Error
}

func (r *cartRepository) Delete(cart *model.Cart) error {
	return r.db.Delete(cart).Error
}

func (r *cartRepository) DeactivateByUser(userID uint) (int64, error) {
	result := r.db.Model(&model.Cart{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
