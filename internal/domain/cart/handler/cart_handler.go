package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/cart/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/pkg/response"

	"github.com/gin-gonic/gin"
)

// CartHandler 购物车处理器
type CartHandler struct {
	service service.CartService
}

func NewCartHandler(s service.CartService) *CartHandler {
	return &CartHandler{service: s}
}

// AddInput 加购输入
type AddInput struct {
	ProductID uint `json:"productId" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,gt=0"`
}

// UpdateInput 数量更新输入
type UpdateInput struct {
	Quantity int `json:"quantity" binding:"required"`
}

// Add 加入购物车
func (h *CartHandler) Add(c *gin.Context) {
	var input AddInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	cart, err := h.service.Add(middleware.GetUserID(c), input.ProductID, input.Quantity)
	if err != nil {
		h.writeServiceError(c, err, "Failed to add to cart")
		return
	}
	response.OK(c, cart, "Added to cart")
}

// List 当前用户的购物车
func (h *CartHandler) List(c *gin.Context) {
	carts, err := h.service.GetActive(middleware.GetUserID(c))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch cart")
		return
	}
	response.OK(c, carts, "")
}

// Get 单行详情
func (h *CartHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid cart id")
		return
	}

	cart, err := h.service.Get(middleware.GetUserID(c), uint(id))
	if err != nil {
		h.writeServiceError(c, err, "Failed to fetch cart item")
		return
	}
	response.OK(c, cart, "")
}

// Update 更新数量
func (h *CartHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid cart id")
		return
	}

	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	cart, err := h.service.UpdateQuantity(middleware.GetUserID(c), uint(id), input.Quantity)
	if err != nil {
		h.writeServiceError(c, err, "Failed to update cart item")
		return
	}
	response.OK(c, cart, "Cart updated")
}

// Delete 移除单行
func (h *CartHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid cart id")
		return
	}

	if err := h.service.Remove(middleware.GetUserID(c), uint(id)); err != nil {
		h.writeServiceError(c, err, "Failed to remove cart item")
		return
	}
	response.OK(c, true, "Removed from cart")
}

// Clear 清空当前用户购物车
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.service.Clear(middleware.GetUserID(c)); err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to clear cart")
		return
	}
	response.OK(c, true, "Cart cleared")
}

func (h *CartHandler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case service.ErrCartItemNotFound:
		response.Error(c, http.StatusNotFound, response.ErrCartItemNotFound, "Cart item not found")
	case service.ErrProductNotFound:
		response.Fail(c, response.ErrProductNotFound, "Product does not exist")
	case service.ErrInvalidQuantity:
		response.Fail(c, response.ErrInvalidParam, "Quantity must be a positive integer")
	case service.ErrNotOwner:
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Cart item belongs to another user")
	default:
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, fallback)
	}
}
