package repository

import (
	cartModel "iphone_store/internal/domain/cart/model"
	"iphone_store/internal/domain/order/model"

	"gorm.io/gorm"
)

// OrderRepository 接口定义
// WithinTx 返回一个绑定到事务的仓库，结账的全部写入都走它
type OrderRepository interface {
	WithinTx(fn func(tx OrderRepository) error) error

	// 结账事务内使用
	ActiveCartLines(userID uint) ([]cartModel.Cart, error)
	DeactivateCartLines(lineIDs []uint) (int64, error)
	CreateAddress(address *model.OrderAddress) error
	Create(order *model.Order) error
	CreateDetail(detail *model.OrderDetail) error
	UpdateTotal(orderID uint, total float64) error

	GetByID(id uint) (*model.Order, error)
	ListByUser(userID uint, offset, limit int) ([]model.Order, int64, error)
	ListAll(offset, limit int) ([]model.Order, int64, error)
	UpdateStatus(order *model.Order) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

// WithinTx 在单个数据库事务里执行 fn，fn 返回错误则整体回滚
func (r *orderRepository) WithinTx(fn func(tx OrderRepository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&orderRepository{db: tx})
	})
}

// ActiveCartLines 取用户全部有效购物车行，带商品价格
func (r *orderRepository) ActiveCartLines(userID uint) ([]cartModel.Cart, error) {
	var carts []cartModel.Cart
	err := r.db.Preload("Product").
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&carts).Error
	return carts, err
}

// DeactivateCartLines 按行 ID 停用购物车行
// 只停用结账开头读到的那些行，不能按 user_id 整体停用：
// 并发场景下用户可能刚加了新行，按用户停用会把没下单的行一并吞掉，
// 还会让受影响行数失去"这些行没被别的结账消费过"的含义
func (r *orderRepository) DeactivateCartLines(lineIDs []uint) (int64, error) {
	result := r.db.Model(&cartModel.Cart{}).
		Where("id IN ? AND is_active = ?", lineIDs, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) CreateAddress(address *model.OrderAddress) error {
	return r.db.Create(address).Error
}

func (r *orderRepository) Create(order *model.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) CreateDetail(detail *model.OrderDetail) error {
	return r.db.Create(detail).Error
}

func (r *orderRepository) UpdateTotal(orderID uint, total float64) error {
	return r.db.Model(&model.Order{}).Where("id = ?", orderID).Update("total", total).Error
}

func (r *orderRepository) GetByID(id uint) (*model.Order, error) {
	var order model.Order
	err := r.db.
		Preload("User").
		Preload("OrderAddress").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Where("id = ? AND is_active = ?", id, true).
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(userID uint, offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	q := r.db.Model(&model.Order{}).Where("user_id = ? AND is_active = ?", userID, true)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("User").
		Preload("OrderAddress").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Where("user_id = ? AND is_active = ?", userID, true).
		Order("order_date DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

func (r *orderRepository) ListAll(offset, limit int) ([]model.Order, int64, error) {
	var orders []model.Order
	var total int64

	if err := r.db.Model(&model.Order{}).Where("is_active = ?", true).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("User").
		Preload("OrderAddress").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Where("is_active = ?", true).
		Order("order_date DESC").
		Offset(offset).Limit(limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// UpdateStatus 只落状态与审计字段，不整行 Save，避免覆盖并发写
func (r *orderRepository) UpdateStatus(order *model.Order) error {
	return r.db.Model(&model.Order{}).Where("id = ?", order.ID).
		Updates(map[string]interface{}{
			"status":     order.Status,
			"updated_by": order.UpdatedBy,
		}).Error
}
