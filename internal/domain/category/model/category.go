package model

import (
	baseModel "iphone_store/pkg/model"
)

// Category 商品分类
type Category struct {
	baseModel.BaseModel
	CategoryName string `gorm:"size:100;unique;not null" json:"categoryName"`
	Description  string `gorm:"size:500" json:"description,omitempty"`
}
