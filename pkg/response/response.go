package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response 统一响应结构，前后端所有接口共用
type Response struct {
	Success   bool        `json:"success"`             // 业务是否成功
	Message   string      `json:"message"`             // 提示信息
	Data      interface{} `json:"data,omitempty"`      // 数据
	ErrorCode string      `json:"errorCode,omitempty"` // 机器可读错误码
}

// OK 成功响应
func OK(c *gin.Context, data interface{}, message string) {
	if message == "" {
		message = "success"
	}
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail 业务失败响应 (HTTP 200, success=false)
// 校验失败、空购物车这类业务规则失败走这里，与传输层错误区分开
func Fail(c *gin.Context, errCode string, msg string) {
	c.JSON(http.StatusOK, Response{
		Success:   false,
		Message:   msg,
		ErrorCode: errCode,
	})
}

// Error 错误响应 (4xx/5xx)
func Error(c *gin.Context, httpCode int, errCode string, msg string) {
	c.JSON(httpCode, Response{
		Success:   false,
		Message:   msg,
		ErrorCode: errCode,
	})
}
