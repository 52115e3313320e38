package model

import (
	baseModel "iphone_store/pkg/model"
)

// Role 角色
type Role struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	RoleName string `gorm:"size:50;unique;not null" json:"roleName"`
}

// 角色种子数据，与 migrations 保持一致
const (
	RoleIDAdmin uint = 1
	RoleIDUser  uint = 2

	RoleNameAdmin = "Admin"
	RoleNameUser  = "User"
)

// User 用户模型
type User struct {
	baseModel.BaseModel
	UserName         string `gorm:"size:100;not null" json:"userName"`
	Email            string `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash     string `gorm:"size:255;not null" json:"-"` // 密码散列不返回给前端
	PhoneNumber      string `gorm:"size:20" json:"phoneNumber,omitempty"`
	Gender           bool   `json:"gender"`
	UserAddress      string `gorm:"size:255" json:"userAddress,omitempty"`
	FailedLoginCount int    `gorm:"default:0" json:"-"`
	RoleID           uint   `gorm:"not null;default:2" json:"roleId"`
	Role             *Role  `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// RoleName 返回角色名，关联未加载时按默认 User 处理
func (u *User) RoleName() string {
	if u.Role != nil {
		return u.Role.RoleName
	}
	if u.RoleID == RoleIDAdmin {
		return RoleNameAdmin
	}
	return RoleNameUser
}
