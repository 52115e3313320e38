package handler

import (
	"net/http"
	"strconv"

	"iphone_store/internal/domain/user/service"
	"iphone_store/internal/pkg/middleware"
	"iphone_store/pkg/response"
	"iphone_store/pkg/utils"

	"github.com/gin-gonic/gin"
)

// UserHandler 用户处理器
type UserHandler struct {
	service service.UserService
}

// NewUserHandler 创建处理器
func NewUserHandler(service service.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// RegisterInput 注册输入
type RegisterInput struct {
	UserName    string `json:"userName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	PhoneNumber string `json:"phoneNumber"`
	Gender      bool   `json:"gender"`
	UserAddress string `json:"userAddress"`
	RoleID      uint   `json:"roleId"`
}

// LoginInput 登录输入
type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateInput 资料更新输入
type UpdateInput struct {
	UserName    string `json:"userName"`
	PhoneNumber string `json:"phoneNumber"`
	UserAddress string `json:"userAddress"`
}

// Register 处理注册请求
func (h *UserHandler) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.service.Register(service.RegisterInput{
		UserName:    input.UserName,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Gender:      input.Gender,
		UserAddress: input.UserAddress,
		RoleID:      input.RoleID,
	})
	if err != nil {
		switch err {
		case service.ErrEmailExists:
			response.Fail(c, response.ErrEmailExists, "Email already registered")
		case service.ErrRoleNotFound:
			response.Fail(c, response.ErrInvalidParam, "Role does not exist")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Registration failed")
		}
		return
	}

	response.OK(c, gin.H{"id": user.ID, "email": user.Email}, "Registration successful")
}

// Login 处理登录请求
func (h *UserHandler) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	result, err := h.service.Login(input.Email, input.Password)
	if err != nil {
		switch err {
		case service.ErrUserNotFound, service.ErrWrongPassword:
			// 不区分账号不存在和密码错误，避免账号枚举
			response.Error(c, http.StatusUnauthorized, response.ErrAuthFailed, "Invalid email or password")
		default:
			response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Login failed")
		}
		return
	}

	response.OK(c, result, "Login successful")
}

// Logout 登出
// Token 为无状态 JWT，服务端无会话可销毁，端点保留给前端清理镜像会话用
func (h *UserHandler) Logout(c *gin.Context) {
	response.OK(c, nil, "Logged out")
}

// GetUsers 获取用户列表（管理员，分页）
func (h *UserHandler) GetUsers(c *gin.Context) {
	var p utils.Pagination
	if err := c.ShouldBindQuery(&p); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}
	p.GetPageOffset()

	users, total, err := h.service.GetUsers(p.Page, p.Limit)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch users")
		return
	}

	response.OK(c, utils.NewPagedResult(users, p.Page, p.Limit, total), "")
}

// GetUser 获取单个用户
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user id")
		return
	}

	// 普通用户只能查看自己
	if middleware.GetRole(c) != middleware.RoleAdmin && middleware.GetUserID(c) != uint(id) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Cannot view other users")
		return
	}

	user, err := h.service.GetUser(uint(id))
	if err != nil {
		if err == service.ErrUserNotFound {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to fetch user")
		return
	}
	response.OK(c, user, "")
}

// UpdateUser 更新用户资料
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user id")
		return
	}

	if middleware.GetRole(c) != middleware.RoleAdmin && middleware.GetUserID(c) != uint(id) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Cannot update other users")
		return
	}

	var input UpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, err.Error())
		return
	}

	user, err := h.service.UpdateUser(uint(id), input.UserName, input.PhoneNumber, input.UserAddress)
	if err != nil {
		if err == service.ErrUserNotFound {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to update user")
		return
	}
	response.OK(c, user, "Profile updated")
}

// DeleteUser 注销用户（软删除）
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.ErrInvalidParam, "Invalid user id")
		return
	}

	if middleware.GetRole(c) != middleware.RoleAdmin && middleware.GetUserID(c) != uint(id) {
		response.Error(c, http.StatusForbidden, response.ErrNoPermission, "Cannot delete other users")
		return
	}

	if err := h.service.DeactivateUser(uint(id)); err != nil {
		if err == service.ErrUserNotFound {
			response.Error(c, http.StatusNotFound, response.ErrUserNotFound, "User not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, response.ErrServerInternal, "Failed to delete user")
		return
	}
	response.OK(c, true, "User deactivated")
}
