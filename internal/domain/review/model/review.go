package model

import (
	productModel "iphone_store/internal/domain/product/model"
	userModel "iphone_store/internal/domain/user/model"
	baseModel "iphone_store/pkg/model"
)

// 评分区间，闭区间
const (
	RatingMin = 1
	RatingMax = 5
)

// Review 商品评价
type Review struct {
	baseModel.BaseModel
	UserID    uint                  `gorm:"index;not null" json:"userId"`
	ProductID uint                  `gorm:"index;not null" json:"productId"`
	Rating    int                   `gorm:"not null" json:"rating"`
	Comment   string                `gorm:"type:text" json:"comment,omitempty"`
	User      *userModel.User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Product   *productModel.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
