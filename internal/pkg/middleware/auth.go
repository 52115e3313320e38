package middleware

import (
	"net/http"
	"strings"

	"iphone_store/pkg/response"
	"iphone_store/pkg/token"

	"github.com/gin-gonic/gin"
)

const (
	// 上下文键
	CtxUserID   = "userID"
	CtxUserName = "userName"
	CtxRole     = "role"

	// 角色名，与 roles 表种子数据一致
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// AuthMiddleware JWT认证中间件
func AuthMiddleware(tokens *token.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Authorization header is required")
			c.Abort()
			return
		}

		// 检查格式 "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := tokens.Parse(parts[1])
		if err != nil {
			response.Error(c, http.StatusUnauthorized, response.ErrTokenInvalid, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxUserName, claims.UserName)
		c.Set(CtxRole, claims.Role)

		c.Next()
	}
}

// AdminMiddleware 管理员权限中间件，必须挂在 AuthMiddleware 之后
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(CtxRole)
		if !exists {
			response.Error(c, http.StatusUnauthorized, response.ErrNoPermission, "Unauthorized")
			c.Abort()
			return
		}

		if roleStr, ok := role.(string); !ok || roleStr != RoleAdmin {
			response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Admin permission required")
			c.Abort()
			return
		}

		c.Next()
	}
}

// GetUserID 从上下文取当前登录用户ID，0 表示未认证
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get(CtxUserID)
	if id, ok := val.(uint); ok {
		return id
	}
	return 0
}

// GetRole 从上下文取当前用户角色
func GetRole(c *gin.Context) string {
	val, _ := c.Get(CtxRole)
	if role, ok := val.(string); ok {
		return role
	}
	return ""
}
