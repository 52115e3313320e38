package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/product/service"
	"iphone_store/pkg/response"
	"iphone_store/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProductHandler 商品处理器
type ProductHandler struct {
	service service.ProductService
}

func NewProductHandler(s service.ProductService) *ProductHandler {
	return &ProductHandler{service: s}
}

// ProductInput 创建/更新输入
type ProductInput struct {
	ProductName              string  `json:"productName" binding:"required"`
	Sku                      string  `json:"sku" binding:"required"`
	Price                    float64 `json:"price" binding:"required,gt=0"`
	SpecificationDescription string  `json:"specificationDescription"`
	Warranty                 string  `json:"warranty"`
	ProductType              string  `json:"productType"`
	Color                    string  `json:"color"`
	Capacity                 string  `json:"capacity"`
	ImageURL                 string  `json:"imageUrl"`
	CategoryID               uint    `json:"categoryId" binding:"required"`
}

// ImageInput 图片记录输入
type ImageInput struct {
	ImageURL  string `json:"imageUrl" binding:"required"`
	SortOrder int    `json:"sortOrder"`
}

func (h *ProductHandler) toServiceInput(in ProductInput) service.ProductInput {
	return service.ProductInput{
		ProductName:              in.ProductName,
		Sku:                      in.Sku,
		Price:                    in.Price,
		SpecificationDescription: in.SpecificationDescription,
		Warranty:                 in.Warranty,
		ProductType:              in.ProductType,
		Color:                    in.Color,
		Capacity:                 in.Capacity,
		ImageURL:                 in.ImageURL,
		CategoryID:               in.CategoryID,
	}
}

func (h *ProductHandler) Create(c *gin.Context) {
	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	product, err := h.service.Create(h.toServiceInput(input))
	if err != nil {
		h.writeServiceError(c, err, "Failed to create product")
		return
	}
	response.OK(c, product, "Product created")
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid product id")
		return
	}

	product, err := h.service.Get(uint(id))
	if err != nil {
		h.writeServiceError(c, err, "Failed to fetch product")
		return
	}
	response.OK(c, product, "")
}

// List 商品列表，支持 ?search= 与分页
func (h *ProductHandler) List(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	products, total, err := h.service.List(c.Query("search"), 0, p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch products")
		return
	}
	response.OK(c, utils.NewPagedResult(products, p.Page, p.Limit, total), "")
}

// ListByCategory 按分类取商品
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("categoryId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid category id")
		return
	}

	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	products, total, err := h.service.List("", uint(categoryID), p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch products")
		return
	}
	response.OK(c, utils.NewPagedResult(products, p.Page, p.Limit, total), "")
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid product id")
		return
	}

	var input ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	product, err := h.service.Update(uint(id), h.toServiceInput(input))
	if err != nil {
		h.writeServiceError(c, err, "Failed to update product")
		return
	}
	response.OK(c, product, "Product updated")
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid product id")
		return
	}

	if err := h.service.Delete(uint(id)); err != nil {
		h.writeServiceError(c, err, "Failed to delete product")
		return
	}
	response.OK(c, true, "Product deleted")
}

func (h *ProductHandler) AddImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid product id")
		return
	}

	var input ImageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	image, err := h.service.AddImage(uint(id), input.ImageURL, input.SortOrder)
	if err != nil {
		h.writeServiceError(c, err, "Failed to add image")
		return
	}
	response.OK(c, image, "Image added")
}

func (h *ProductHandler) DeleteImage(c *gin.Context) {
	imageID, err := strconv.ParseUint(c.Param("imageId"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid image id")
		return
	}

	if err := h.service.DeleteImage(uint(imageID)); err != nil {
		h.writeServiceError(c, err, "Failed to delete image")
		return
	}
	response.OK(c, true, "Image deleted")
}

func (h *ProductHandler) writeServiceError(c *gin.Context, err error, fallback string) {
	switch err {
	case service.ErrProductNotFound:
		response.Error(c, http.StatusNotFound, response.ErrProductNotFound, "Product not found")
	case service.ErrImageNotFound:
		response.Error(c, http.StatusNotFound, response.ErrNotFound, "Product image not found")
	case service.ErrCategoryNotFound:
		response.Fail(c, response.ErrCategoryNotFound, "Category does not exist")
	case service.ErrSkuExists:
		response.Fail(c, response.ErrSkuExists, "SKU already exists")
	case service.ErrInvalidPrice:
		response.Fail(c, response.ErrInvalidParam, "Price must be greater than zero")
	default:
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, fallback)
	}
}
