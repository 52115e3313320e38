package service

import (
	"iphone_store/internal/domain/admin/repository"
	orderModel "iphone_store/internal/domain/order/model"
	orderService "iphone_store/internal/domain/order/service"
)

// Statistics 后台仪表盘统计
type Statistics struct {
	TotalOrders      int64   `json:"totalOrders"`
	ActiveProducts   int64   `json:"activeProducts"`
	Customers        int64   `json:"customers"`
	Revenue          float64 `json:"revenue"`
	PendingOrders    int64   `json:"pendingOrders"`
	ProcessingOrders int64   `json:"processingOrders"`
	CompletedOrders  int64   `json:"completedOrders"`
	CancelledOrders  int64   `json:"cancelledOrders"`
}

// AdminService 后台服务接口
type AdminService interface {
	GetStatistics() (*Statistics, error)
	RecentOrders(count int) ([]orderService.OrderView, error)
}

type adminService struct {
	repo repository.AdminRepository
}

func NewAdminService(repo repository.AdminRepository) AdminService {
	return &adminService{repo: repo}
}

// GetStatistics 汇总仪表盘指标
// 处理中 = 已确认 + 备货中 + 配送中
func (s *adminService) GetStatistics() (*Statistics, error) {
	stats := &Statistics{}

	var err error
	if stats.TotalOrders, err = s.repo.CountOrders(); err != nil {
		return nil, err
	}
	if stats.ActiveProducts, err = s.repo.CountActiveProducts(); err != nil {
		return nil, err
	}
	if stats.Customers, err = s.repo.CountCustomers(); err != nil {
		return nil, err
	}
	if stats.Revenue, err = s.repo.SumRevenue(); err != nil {
		return nil, err
	}

	if stats.PendingOrders, err = s.repo.CountOrdersByStatus(orderModel.StatusPendingConfirmation); err != nil {
		return nil, err
	}
	for _, status := range []orderModel.OrderStatus{
		orderModel.StatusConfirmed,
		orderModel.StatusPreparing,
		orderModel.StatusShipping,
	} {
		count, err := s.repo.CountOrdersByStatus(status)
		if err != nil {
			return nil, err
		}
		stats.ProcessingOrders += count
	}
	if stats.CompletedOrders, err = s.repo.CountOrdersByStatus(orderModel.StatusDelivered); err != nil {
		return nil, err
	}
	if stats.CancelledOrders, err = s.repo.CountOrdersByStatus(orderModel.StatusCancelled); err != nil {
		return nil, err
	}

	return stats, nil
}

// RecentOrders 最近 N 笔订单，复用订单模块的展示映射
func (s *adminService) RecentOrders(count int) ([]orderService.OrderView, error) {
	if count <= 0 {
		count = 10
	}
	if count > 100 {
		count = 100
	}

	orders, err := s.repo.RecentOrders(count)
	if err != nil {
		return nil, err
	}
	return orderService.ToOrderViews(orders), nil
}
