package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/category/service"
	"iphone_store/pkg/response"
	"iphone_store/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CategoryHandler 分类处理器
type CategoryHandler struct {
	service service.CategoryService
}

func NewCategoryHandler(s service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: s}
}

// CategoryInput 创建/更新输入
type CategoryInput struct {
	CategoryName string `json:"categoryName" binding:"required"`
	Description  string `json:"description"`
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	category, err := h.service.Create(input.CategoryName, input.Description)
	if err != nil {
		switch err {
		case service.ErrNameRequired, service.ErrNameTaken:
			response.Fail(c, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to create category")
		}
		return
	}
	response.OK(c, category, "Category created")
}

func (h *CategoryHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid category id")
		return
	}

	category, err := h.service.Get(uint(id))
	if err != nil {
		if err == service.ErrCategoryNotFound {
			response.Error(c, http.StatusNotFound, response.ErrCategoryNotFound, "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch category")
		return
	}
	response.OK(c, category, "")
}

func (h *CategoryHandler) List(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	categories, total, err := h.service.List(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch categories")
		return
	}
	response.OK(c, utils.NewPagedResult(categories, p.Page, p.Limit, total), "")
}

func (h *CategoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid category id")
		return
	}

	var input CategoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	category, err := h.service.Update(uint(id), input.CategoryName, input.Description)
	if err != nil {
		switch err {
		case service.ErrCategoryNotFound:
			response.Error(c, http.StatusNotFound, response.ErrCategoryNotFound, "Category not found")
		case service.ErrNameTaken:
			response.Fail(c, response.ErrInvalidParam, err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update category")
		}
		return
	}
	response.OK(c, category, "Category updated")
}

func (h *CategoryHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid category id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		if err == service.ErrCategoryNotFound {
			response.Error(c, http.StatusNotFound, response.ErrCategoryNotFound, "Category not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete category")
		return
	}
	response.OK(c, true, "Category deleted")
}
