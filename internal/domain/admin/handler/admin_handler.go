package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/admin/service"
	"iphone_store/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler 后台处理器
type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

// Statistics 仪表盘统计
func (h *AdminHandler) Statistics(c *gin.Context) {
	stats, err := h.service.GetStatistics()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch statistics")
		return
	}
	response.OK(c, stats, "")
}

// RecentOrders 最近订单，?count 控制条数，默认 10
func (h *AdminHandler) RecentOrders(c *gin.Context) {
	count := 10
	if raw := c.Query("count"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid count")
			return
		}
		count = parsed
	}

	views, err := h.service.RecentOrders(count)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch recent orders")
		return
	}
	response.OK(c, views, "")
}
