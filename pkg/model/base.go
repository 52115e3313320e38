package model

import "time"

// BaseModel 基础模型，所有业务表共用：自增主键 + 审计字段 + 软删除标记
// 软删除统一用 IsActive 标记而不是物理删除，保证订单历史仍能关联到已下架数据
type BaseModel struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
	CreatedBy string    `gorm:"size:100" json:"createdBy,omitempty"`
	UpdatedBy string    `gorm:"size:100" json:"updatedBy,omitempty"`
	IsActive  bool      `gorm:"default:true" json:"isActive"`
}
