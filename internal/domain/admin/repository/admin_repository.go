package repository

import (
	orderModel "iphone_store/internal/domain/order/model"
	productModel "iphone_store/internal/domain/product/model"
	userModel "iphone_store/internal/domain/user/model"

	"gorm.io/gorm"
)

// AdminRepository 后台统计查询接口，只读
type AdminRepository interface {
	CountOrders() (int64, error)
	CountOrdersByStatus(status orderModel.OrderStatus) (int64, error)
	CountActiveProducts() (int64, error)
	CountCustomers() (int64, error)
	SumRevenue() (float64, error)
	RecentOrders(limit int) ([]orderModel.Order, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountOrders() (int64, error) {
	var count int64
	err := r.db.Model(&orderModel.Order{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountOrdersByStatus(status orderModel.OrderStatus) (int64, error) {
	var count int64
	err := r.db.Model(&orderModel.Order{}).
		Where("status = ? AND is_active = ?", status, true).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) CountActiveProducts() (int64, error) {
	var count int64
	err := r.db.Model(&productModel.Product{}).Where("is_active = ?", true).Count(&count).Error
	return count, err
}

// CountCustomers 只统计普通用户，管理员不算客户
func (r *adminRepository) CountCustomers() (int64, error) {
	var count int64
	err := r.db.Model(&userModel.User{}).
		Where("role_id = ? AND is_active = ?", userModel.RoleIDUser, true).
		Count(&count).Error
	return count, err
}

// SumRevenue 营收口径：已送达订单的总额（含运费）
func (r *adminRepository) SumRevenue() (float64, error) {
	var revenue float64
	err := r.db.Model(&orderModel.Order{}).
		Select("COALESCE(SUM(total), 0)").
		Where("status = ? AND is_active = ?", orderModel.StatusDelivered, true).
		Scan(&revenue).Error
	return revenue, err
}

func (r *adminRepository) RecentOrders(limit int) ([]orderModel.Order, error) {
	var orders []orderModel.Order
	err := r.db.
		Preload("User").
		Preload("OrderDetails").
		Preload("OrderDetails.Product").
		Where("is_active = ?", true).
		Order("order_date DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
