package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/order/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/pkg/response"
	"iphone_store/pkg/utils"

	"github.com/gin-gonic/gin"
)

// OrderHandler 订单处理器
type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

// CheckoutInput 结账输入
// 客户端传来的运费/总价字段一律忽略，服务端重算
type CheckoutInput struct {
	Recipient     string `json:"recipient" binding:"required"`
	PhoneNumber   string `json:"phoneNumber" binding:"required"`
	AddressDetail string `json:"addressDetail" binding:"required"`
	City          string `json:"city"`
	District      string `json:"district"`
	Ward          string `json:"ward"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
}

// StatusInput 状态更新输入
type StatusInput struct {
	Status string `json:"status" binding:"required"`
}

// CreateFromCart 结账：把当前用户的购物车转为订单
func (h *OrderHandler) CreateFromCart(c *gin.Context) {
	var input CheckoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	// 用户身份只信任认证上下文，不信请求体
	userID := middleware.GetUserID(c)

	result, err := h.service.CreateFromCart(userID, service.CheckoutInput{
		Recipient:     input.Recipient,
		PhoneNumber:   input.PhoneNumber,
		AddressDetail: input.AddressDetail,
		City:          input.City,
		District:      input.District,
		Ward:          input.Ward,
		PaymentMethod: input.PaymentMethod,
	})
	if err != nil {
		switch err {
		case service.ErrInvalidPaymentMethod:
			response.Fail(c, response.ErrInvalidPayment, "Invalid payment method")
		case service.ErrIncompleteDelivery:
			response.Fail(c, response.ErrIncompleteDelivery, "Please provide recipient, phone number and address")
		case service.ErrEmptyCart:
			response.Fail(c, response.ErrEmptyCart, "Cart is empty")
		case service.ErrCartConflict:
			response.Fail(c, response.ErrCartConflict, "Cart was changed by another request, please try again")
		case service.ErrBrokenCartLine:
			response.Fail(c, response.ErrBrokenCartLine, "Cart contains a product that no longer exists")
		case service.ErrUserNotFound:
			response.Error(c, http.StatusUnauthorized, response.ErrUserNotFound, "You must be logged in to place an order")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to place order")
		}
		return
	}

	response.OK(c, result, "Order placed, awaiting confirmation")
}

// Get 订单详情，本人或管理员可见
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid order id")
		return
	}

	view, err := h.service.Get(uint(id))
	if err != nil {
		if err == service.ErrOrderNotFound {
			response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "Order not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch order")
		return
	}

	// 非管理员只能看自己的订单，他人订单按不存在处理
	if middleware.GetRole(c) != middleware.RoleAdmin && view.UserID != middleware.GetUserID(c) {
		response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "Order not found")
		return
	}
	response.OK(c, view, "")
}

// ListMine 当前用户的订单历史（分页，新的在前）
func (h *OrderHandler) ListMine(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	views, total, err := h.service.ListByUser(middleware.GetUserID(c), p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch orders")
		return
	}
	response.OK(c, utils.NewPagedResult(views, p.Page, p.Limit, total), "")
}

// ListAll 管理员查看全部订单（分页）
func (h *OrderHandler) ListAll(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	views, total, err := h.service.ListAll(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch orders")
		return
	}
	response.OK(c, utils.NewPagedResult(views, p.Page, p.Limit, total), "")
}

// UpdateStatus 管理员推进订单状态
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid order id")
		return
	}

	var input StatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	view, err := h.service.UpdateStatus(uint(id), input.Status)
	if err != nil {
		switch err {
		case service.ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "Order not found")
		case service.ErrUnknownStatus:
			response.Fail(c, response.ErrInvalidOrderStatus, "Unknown order status")
		case service.ErrIllegalTransition:
			response.Fail(c, response.ErrIllegalTransition, "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update status")
		}
		return
	}
	response.OK(c, view, "Order status updated to "+view.Status)
}

// Cancel 用户取消自己的订单
func (h *OrderHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid order id")
		return
	}

	if err := h.service.Cancel(uint(id), middleware.GetUserID(c)); err != nil {
		switch err {
		case service.ErrOrderNotFound:
			response.Error(c, http.StatusNotFound, response.ErrOrderNotFound, "Order not found")
		case service.ErrNotOwner:
			response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Cannot cancel another user's order")
		case service.ErrAlreadyDelivered:
			response.Fail(c, response.ErrOrderAlreadyShipped, "Delivered orders cannot be cancelled")
		case service.ErrIllegalTransition:
			response.Fail(c, response.ErrIllegalTransition, "Order is already in a terminal state")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to cancel order")
		}
		return
	}
	response.OK(c, true, "Order cancelled")
}
