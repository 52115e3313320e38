package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"iphone_store/internal/domain/order/model"
	"iphone_store/internal/domain/order/repository"
	userRepo "iphone_store/internal/domain/user/repository"

	"gorm.io/gorm"
)

// 业务错误，由 handler 映射为响应码
var (
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrIncompleteDelivery   = errors.New("incomplete delivery info")
	ErrUserNotFound         = errors.New("user not found")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCartConflict         = errors.New("cart lines consumed by a concurrent checkout")
	ErrBrokenCartLine       = errors.New("cart line references a missing product")
	ErrOrderNotFound        = errors.New("order not found")
	ErrNotOwner             = errors.New("order belongs to another user")
	ErrUnknownStatus        = errors.New("unknown order status")
	ErrIllegalTransition    = errors.New("illegal status transition")
	ErrAlreadyDelivered     = errors.New("delivered order cannot be cancelled")
)

// CheckoutInput 结账入参，运费和总价不收客户端的值，一律服务端重算
type CheckoutInput struct {
	Recipient     string
	PhoneNumber   string
	AddressDetail string
	City          string
	District      string
	Ward          string
	PaymentMethod string
}

// CheckoutResult 结账结果
type CheckoutResult struct {
	OrderID   uint    `json:"orderId"`
	OrderCode string  `json:"orderCode"`
	Total     float64 `json:"total"`
}

// OrderService 订单服务接口
type OrderService interface {
	// CreateFromCart 把用户的有效购物车原子地转成一笔订单
	CreateFromCart(userID uint, in CheckoutInput) (*CheckoutResult, error)
	Get(id uint) (*OrderView, error)
	ListByUser(userID uint, page, limit int) ([]OrderView, int64, error)
	ListAll(page, limit int) ([]OrderView, int64, error)
	// UpdateStatus 管理员推进状态机
	UpdateStatus(orderID uint, status string) (*OrderView, error)
	// Cancel 用户取消自己的未送达订单
	Cancel(orderID, userID uint) error
}

type orderService struct {
	repo  repository.OrderRepository
	users userRepo.UserRepository
}

func NewOrderService(repo repository.OrderRepository, users userRepo.UserRepository) OrderService {
	return &orderService{repo: repo, users: users}
}

// CreateFromCart 结账流程：
//  1. 校验支付方式与收货信息
//  2. 事务内读购物车、算总价、写地址/订单/明细、停用购物车行
//  3. 任一步失败整体回滚，不留半截订单或半清空的购物车
func (s *orderService) CreateFromCart(userID uint, in CheckoutInput) (*CheckoutResult, error) {
	method, ok := model.NormalizePaymentMethod(in.PaymentMethod)
	if !ok {
		return nil, ErrInvalidPaymentMethod
	}

	if strings.TrimSpace(in.Recipient) == "" ||
		strings.TrimSpace(in.PhoneNumber) == "" ||
		strings.TrimSpace(in.AddressDetail) == "" {
		return nil, ErrIncompleteDelivery
	}

	if _, err := s.users.GetByID(userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	var result CheckoutResult

	err := s.repo.WithinTx(func(tx repository.OrderRepository) error {
		lines, err := tx.ActiveCartLines(userID)
		if err != nil {
			return err
		}
		if len(lines) == 0 {
			return ErrEmptyCart
		}
		// 商品引用断裂按数据完整性错误处理，不静默跳过
		lineIDs := make([]uint, 0, len(lines))
		for _, line := range lines {
			if line.Product == nil {
				return ErrBrokenCartLine
			}
			lineIDs = append(lineIDs, line.ID)
		}

		// 运费是服务端策略，客户端传什么都不认
		shipping := model.ShippingPriceFor(method)

		address := &model.OrderAddress{
			UserID:        userID,
			Recipient:     strings.TrimSpace(in.Recipient),
			PhoneNumber:   strings.TrimSpace(in.PhoneNumber),
			AddressDetail: strings.TrimSpace(in.AddressDetail),
			City:          in.City,
			District:      in.District,
			Ward:          in.Ward,
		}
		address.IsActive = true
		address.CreatedBy = fmt.Sprintf("User_%d", userID)
		if err := tx.CreateAddress(address); err != nil {
			return err
		}

		order := &model.Order{
			OrderCode:      model.NewOrderCode(),
			UserID:         userID,
			OrderAddressID: address.ID,
			OrderDate:      time.Now().UTC(),
			Total:          0, // 占位，明细落库后回填
			ShippingPrice:  shipping,
			PaymentMethod:  method,
			Status:         model.StatusPendingConfirmation,
		}
		order.IsActive = true
		order.CreatedBy = fmt.Sprintf("User_%d", userID)
		if err := tx.Create(order); err != nil {
			return err
		}

		// 明细价格取商品当前价并冻结
		var total float64
		for _, line := range lines {
			detail := &model.OrderDetail{
				OrderID:   order.ID,
				ProductID: line.ProductID,
				Quantity:  line.Quantity,
				Price:     line.Product.Price,
			}
			detail.IsActive = true
			detail.CreatedBy = fmt.Sprintf("User_%d", userID)
			if err := tx.CreateDetail(detail); err != nil {
				return err
			}
			total += float64(line.Quantity) * line.Product.Price
		}

		total += shipping
		if err := tx.UpdateTotal(order.ID, total); err != nil {
			return err
		}

		// 按第一步读到的行 ID 条件停用，并要求全部命中：
		// 并发结账时先提交的事务会把行停掉，后到的停用数就对不上，
		// 整个事务回滚，同一批购物车行只能换来一笔订单
		affected, err := tx.DeactivateCartLines(lineIDs)
		if err != nil {
			return err
		}
		if affected != int64(len(lineIDs)) {
			return ErrCartConflict
		}

		result = CheckoutResult{
			OrderID:   order.ID,
			OrderCode: order.OrderCode,
			Total:     total,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (s *orderService) Get(id uint) (*OrderView, error) {
	order, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	view := ToOrderView(order)
	return &view, nil
}

func (s *orderService) ListByUser(userID uint, page, limit int) ([]OrderView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	orders, total, err := s.repo.ListByUser(userID, (page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderViews(orders), total, nil
}

func (s *orderService) ListAll(page, limit int) ([]OrderView, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 20
	}
	orders, total, err := s.repo.ListAll((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}
	return ToOrderViews(orders), total, nil
}

// UpdateStatus 管理员更新订单状态，未知状态和非法流转都在写入前拒绝
func (s *orderService) UpdateStatus(orderID uint, status string) (*OrderView, error) {
	next, ok := model.ParseStatus(status)
	if !ok {
		return nil, ErrUnknownStatus
	}

	order, err := s.repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, ErrIllegalTransition
	}

	order.Status = next
	order.UpdatedBy = "Admin"
	if err := s.repo.UpdateStatus(order); err != nil {
		return nil, err
	}

	view := ToOrderView(order)
	return &view, nil
}

// Cancel 用户取消自己的订单，已送达的拒绝
func (s *orderService) Cancel(orderID, userID uint) error {
	order, err := s.repo.GetByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	if order.UserID != userID {
		return ErrNotOwner
	}
	if order.Status == model.StatusDelivered {
		return ErrAlreadyDelivered
	}
	if !order.Status.CanTransitionTo(model.StatusCancelled) {
		return ErrIllegalTransition
	}

	order.Status = model.StatusCancelled
	order.UpdatedBy = fmt.Sprintf("User_%d", userID)
	return s.repo.UpdateStatus(order)
}
