package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"iphone_store/internal/domain/user/model"
	"iphone_store/internal/domain/user/repository"
	"iphone_store/pkg/token"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// 业务错误，由 handler 映射为响应码
var (
	ErrEmailExists   = errors.New("email already registered")
	ErrRoleNotFound  = errors.New("role not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("wrong password")
)

// RegisterInput 注册入参
type RegisterInput struct {
	UserName    string
	Email       string
	Password    string
	PhoneNumber string
	Gender      bool
	UserAddress string
	RoleID      uint // 0 表示使用默认 User 角色
}

// LoginResult 登录结果
type LoginResult struct {
	Token    string    `json:"token"`
	ExpireAt time.Time `json:"expireAt"`
	UserID   uint      `json:"userId"`
	UserName string    `json:"userName"`
	Email    string    `json:"email"`
	Role     string    `json:"role"`
}

// UserService 用户服务接口
type UserService interface {
	Register(in RegisterInput) (*model.User, error)
	Login(email, password string) (*LoginResult, error)
	GetUsers(page, limit int) ([]model.User, int64, error)
	GetUser(id uint) (*model.User, error)
	UpdateUser(id uint, userName, phoneNumber, userAddress string) (*model.User, error)
	DeactivateUser(id uint) error
}

// userService 实现
type userService struct {
	repo   repository.UserRepository
	tokens *token.Manager
}

// NewUserService 创建用户服务
func NewUserService(repo repository.UserRepository, tokens *token.Manager) UserService {
	return &userService{repo: repo, tokens: tokens}
}

// Register 注册新用户
func (s *userService) Register(in RegisterInput) (*model.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	exists, err := s.repo.EmailExists(email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	// RoleID 未指定时用默认 User 角色
	roleID := in.RoleID
	if roleID > 0 {
		ok, err := s.repo.RoleExists(roleID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrRoleNotFound
		}
	} else {
		role, err := s.repo.GetRoleByName(model.RoleNameUser)
		if err != nil {
			return nil, fmt.Errorf("default role missing: %w", err)
		}
		roleID = role.ID
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserName:     in.UserName,
		Email:        email,
		PasswordHash: string(hash),
		PhoneNumber:  in.PhoneNumber,
		Gender:       in.Gender,
		UserAddress:  in.UserAddress,
		RoleID:       roleID,
	}
	user.IsActive = true

	if err := s.repo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login 校验密码并签发 Token
func (s *userService) Login(email, password string) (*LoginResult, error) {
	user, err := s.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		// 记录失败次数，当前仅作审计用途
		user.FailedLoginCount++
		_ = s.repo.Update(user)
		return nil, ErrWrongPassword
	}

	signed, expireAt, err := s.tokens.Generate(user.ID, user.UserName, user.RoleName())
	if err != nil {
		return nil, err
	}

	if user.FailedLoginCount != 0 {
		user.FailedLoginCount = 0
		_ = s.repo.Update(user)
	}

	return &LoginResult{
		Token:    signed,
		ExpireAt: expireAt,
		UserID:   user.ID,
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.RoleName(),
	}, nil
}

// GetUsers 获取用户列表（分页）
func (s *userService) GetUsers(page, limit int) ([]model.User, int64, error) {
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	offset := (page - 1) * limit
	return s.repo.GetList(offset, limit)
}

// GetUser 获取单个用户
func (s *userService) GetUser(id uint) (*model.User, error) {
	user, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateUser 更新用户资料
func (s *userService) UpdateUser(id uint, userName, phoneNumber, userAddress string) (*model.User, error) {
	user, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if userName != "" {
		user.UserName = userName
	}
	if phoneNumber != "" {
		user.PhoneNumber = phoneNumber
	}
	if userAddress != "" {
		user.UserAddress = userAddress
	}
	user.UpdatedBy = fmt.Sprintf("User_%d", id)

	if err := s.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser 注销用户（软删除）
func (s *userService) DeactivateUser(id uint) error {
	user, err := s.GetUser(id)
	if err != nil {
		return err
	}

	user.IsActive = false
	return s.repo.Update(user)
}
