package model

import (
	"fmt"
	"strings"
	"time"

	productModel "iphone_store/internal/domain/product/model"
	userModel "iphone_store/internal/domain/user/model"
	baseModel "iphone_store/pkg/model"

	"github.com/google/uuid"
)

// 支付方式，闭集，比较前统一转大写
const (
	PaymentMethodCOD  = "COD"
	PaymentMethodBank = "BANK"
)

// 非货到付款收固定运费，金额是业务策略，永远在服务端计算
const (
	ShippingPriceBank = 30000
	ShippingPriceCOD  = 0
)

// NormalizePaymentMethod 规范化支付方式，未知值返回 false
func NormalizePaymentMethod(method string) (string, bool) {
	m := strings.ToUpper(strings.TrimSpace(method))
	switch m {
	case PaymentMethodCOD, PaymentMethodBank:
		return m, true
	}
	return "", false
}

// ShippingPriceFor 按支付方式取运费
func ShippingPriceFor(method string) float64 {
	if method == PaymentMethodBank {
		return ShippingPriceBank
	}
	return ShippingPriceCOD
}

// NewOrderCode 生成订单号：UTC 时间戳 + 随机后缀
// 同一秒内并发下单时靠后缀消除碰撞
func NewOrderCode() string {
	return fmt.Sprintf("ORD%s%s",
		time.Now().UTC().Format("20060102150405"),
		uuid.New().String()[:4])
}

// Order 订单头
type Order struct {
	baseModel.BaseModel
	OrderCode      string         `gorm:"size:30;unique;not null" json:"orderCode"`
	UserID         uint           `gorm:"index;not null" json:"userId"`
	OrderAddressID uint           `gorm:"not null" json:"orderAddressId"`
	OrderDate      time.Time      `gorm:"not null" json:"orderDate"`
	Total          float64        `json:"total"`
	ShippingPrice  float64        `json:"shippingPrice"`
	PaymentMethod  string         `gorm:"size:10;not null" json:"paymentMethod"`
	Status         OrderStatus    `gorm:"size:30;not null;default:'PENDING_CONFIRMATION'" json:"status"`
	User           *userModel.User `gorm:"foreignKey:UserID" json:"user,omitempty"`
	OrderAddress   *OrderAddress  `gorm:"foreignKey:OrderAddressID" json:"orderAddress,omitempty"`
	OrderDetails   []OrderDetail  `gorm:"foreignKey:OrderID" json:"orderDetails,omitempty"`
}

// OrderAddress 收货地址，每笔订单新建一条，归订单所有，不复用
type OrderAddress struct {
	baseModel.BaseModel
	UserID        uint   `gorm:"index;not null" json:"userId"`
	Recipient     string `gorm:"size:100;not null" json:"recipient"`
	PhoneNumber   string `gorm:"size:20;not null" json:"phoneNumber"`
	AddressDetail string `gorm:"size:255;not null" json:"addressDetail"`
	City          string `gorm:"size:100" json:"city,omitempty"`
	District      string `gorm:"size:100" json:"district,omitempty"`
	Ward          string `gorm:"size:100" json:"ward,omitempty"`
}

// OrderDetail 订单明细，Price 是下单时刻商品价格的拷贝，创建后不可变
type OrderDetail struct {
	baseModel.BaseModel
	OrderID   uint                  `gorm:"index;not null" json:"orderId"`
	ProductID uint                  `gorm:"index;not null" json:"productId"`
	Quantity  int                   `gorm:"not null" json:"quantity"`
	Price     float64               `gorm:"not null" json:"price"`
	Product   *productModel.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
