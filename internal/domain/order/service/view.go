package service

import (
	"time"

	"iphone_store/internal/domain/order/model"
)

// OrderView 订单展示模型，管理端、历史列表、详情共用
type OrderView struct {
	ID            uint                `json:"id"`
	OrderCode     string              `json:"orderCode"`
	UserID        uint                `json:"userId"`
	OrderDate     time.Time           `json:"orderDate"`
	Total         float64             `json:"total"`
	ShippingPrice float64             `json:"shippingPrice"`
	PaymentMethod string              `json:"paymentMethod"`
	Status        string              `json:"status"`
	UserName      string              `json:"userName"`
	Address       *OrderAddressView   `json:"orderAddress,omitempty"`
	Details       []OrderDetailView   `json:"orderDetails"`
}

// OrderAddressView 收货地址展示模型
type OrderAddressView struct {
	Recipient     string `json:"recipient"`
	PhoneNumber   string `json:"phoneNumber"`
	AddressDetail string `json:"addressDetail"`
	City          string `json:"city"`
	District      string `json:"district"`
	Ward          string `json:"ward"`
}

// OrderDetailView 明细展示模型，价格是下单时冻结的快照
type OrderDetailView struct {
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// ToOrderView 把带关联的订单映射为展示模型
// 唯一的映射入口，所有读取路径统一走这里
func ToOrderView(o *model.Order) OrderView {
	view := OrderView{
		ID:            o.ID,
		OrderCode:     o.OrderCode,
		UserID:        o.UserID,
		OrderDate:     o.OrderDate,
		Total:         o.Total,
		ShippingPrice: o.ShippingPrice,
		PaymentMethod: o.PaymentMethod,
		Status:        string(o.Status),
		UserName:      "N/A",
		Details:       make([]OrderDetailView, 0, len(o.OrderDetails)),
	}

	if o.User != nil {
		view.UserName = o.User.UserName
	}

	if o.OrderAddress != nil {
		view.Address = &OrderAddressView{
			Recipient:     o.OrderAddress.Recipient,
			PhoneNumber:   o.OrderAddress.PhoneNumber,
			AddressDetail: o.OrderAddress.AddressDetail,
			City:          o.OrderAddress.City,
			District:      o.OrderAddress.District,
			Ward:          o.OrderAddress.Ward,
		}
	}

	for _, d := range o.OrderDetails {
		dv := OrderDetailView{
			ProductID: d.ProductID,
			Quantity:  d.Quantity,
			Price:     d.Price,
		}
		if d.Product != nil {
			dv.ProductName = d.Product.ProductName
			dv.ProductImage = d.Product.ImageURL
		} else {
			dv.ProductName = "N/A"
		}
		view.Details = append(view.Details, dv)
	}

	return view
}

// ToOrderViews 批量映射
func ToOrderViews(orders []model.Order) []OrderView {
	views := make([]OrderView, 0, len(orders))
	for i := range orders {
		views = append(views, ToOrderView(&orders[i]))
	}
	return views
}
