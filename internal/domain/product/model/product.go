package model

import (
	categoryModel "iphone_store/internal/domain/category/model"
	baseModel "iphone_store/pkg/model"
)

// Product 商品模型
type Product struct {
	baseModel.BaseModel
	ProductName              string                  `gorm:"size:255;not null" json:"productName"`
	Sku                      string                  `gorm:"size:100;unique;not null" json:"sku"`
	Price                    float64                 `gorm:"not null" json:"price"`
	SpecificationDescription string                  `gorm:"type:text" json:"specificationDescription,omitempty"`
	Warranty                 string                  `gorm:"size:100" json:"warranty,omitempty"`
	ProductType              string                  `gorm:"size:100" json:"productType,omitempty"`
	Color                    string                  `gorm:"size:50" json:"color,omitempty"`
	Capacity                 string                  `gorm:"size:50" json:"capacity,omitempty"`
	ImageURL                 string                  `gorm:"size:500" json:"imageUrl,omitempty"`
	CategoryID               uint                    `gorm:"index" json:"categoryId"`
	Category                 *categoryModel.Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Images                   []ProductImage          `gorm:"foreignKey:ProductID" json:"images,omitempty"`
}

// ProductImage 商品图片记录，上传通道在别处，这里只管记录
type ProductImage struct {
	baseModel.BaseModel
	ProductID uint   `gorm:"index;not null" json:"productId"`
	ImageURL  string `gorm:"size:500;not null" json:"imageUrl"`
	SortOrder int    `gorm:"default:0" json:"sortOrder"`
}
