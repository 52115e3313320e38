package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/review/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/pkg/response"
	"iphone_store/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler 评价处理器
type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// CreateInput 创建评价输入
type CreateInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

// UpdateInput 修改评价输入
type UpdateInput struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

// Create 创建评价
func (h *ReviewHandler) Create(c *gin.Context) {
	var input CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	view, err := h.service.Create(middleware.GetUserID(c), input.ProductID, input.Rating, input.Comment)
	if err != nil {
		switch err {
		case service.ErrInvalidRating:
			response.Fail(c, response.ErrInvalidReviewRating, "Rating must be between 1 and 5")
		case service.ErrProductNotFound:
			response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "Product not found")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to create review")
		}
		return
	}
	response.OK(c, view, "Review created")
}

// ListByProduct 商品评价列表，公开接口
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid product id")
		return
	}

	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	views, total, err := h.service.ListByProduct(uint(productID), p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch reviews")
		return
	}
	response.OK(c, utils.NewPagedResult(views, p.Page, p.Limit, total), "")
}

// Rating 商品评分汇总，公开接口
func (h *ReviewHandler) Rating(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("productId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid product id")
		return
	}

	view, err := h.service.Rating(uint(productID))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch rating")
		return
	}
	response.OK(c, view, "")
}

// Update 作者修改自己的评价
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid review id")
		return
	}

	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	view, err := h.service.Update(uint(id), middleware.GetUserID(c), input.Rating, input.Comment)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, view, "Review updated")
}

// Delete 作者或管理员删除评价
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid review id")
		return
	}

	isAdmin := middleware.GetRole(c) == middleware.RoleAdmin
	if err := h.service.Delete(uint(id), middleware.GetUserID(c), isAdmin); err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.OK(c, true, "Review deleted")
}

func (h *ReviewHandler) writeServiceError(c *gin.Context, err error) {
	switch err {
	case service.ErrReviewNotFound:
		response.Error(c, http.StatusNotFound, response.ErrReviewNotFound, "Review not found")
	case service.ErrNotOwner:
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Cannot modify another user's review")
	case service.ErrInvalidRating:
		response.Fail(c, response.ErrInvalidReviewRating, "Rating must be between 1 and 5")
	default:
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to process review")
	}
}
