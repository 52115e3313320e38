package model

import (
	productModel "iphone_store/internal/domain/product/model"
	baseModel "iphone_store/pkg/model"
)

// Cart 购物车行：每个 (用户, 商品) 至多一行，数量累加
// 下单后行被置为 IsActive=false 而不是删除，保留订单来源
type Cart struct {
	baseModel.BaseModel
	UserID    uint                  `gorm:"index;not null;uniqueIndex:uq_carts_user_product" json:"userId"`
	ProductID uint                  `gorm:"index;not null;uniqueIndex:uq_carts_user_product" json:"productId"`
	Quantity  int                   `gorm:"not null" json:"quantity"`
	Product   *productModel.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
