package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// 本文件是各业务接口的类型化封装，结构体字段与服务端视图模型一一对应

// RegisterInput 注册入参
type RegisterInput struct {
	UserName string `json:"userName"`
	Email    string `json:"email"`
	Password string `json:"password"`
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

// Product 商品
type Product struct {
	ID                       uint    `json:"id"`
	ProductName              string  `json:"productName"`
	Sku                      string  `json:"sku"`
	Price                    float64 `json:"price"`
	SpecificationDescription string  `json:"specificationDescription,omitempty"`
	Warranty                 string  `json:"warranty,omitempty"`
	ProductType              string  `json:"productType,omitempty"`
	Color                    string  `json:"color,omitempty"`
	Capacity                 string  `json:"capacity,omitempty"`
	ImageURL                 string  `json:"imageUrl,omitempty"`
	CategoryID               uint    `json:"categoryId"`
}

// CartItem 购物车行
type CartItem struct {
	ID        uint     `json:"id"`
	ProductID uint     `json:"productId"`
	Quantity  int      `json:"quantity"`
	Product   *Product `json:"product,omitempty"`
}

// CheckoutRequest 结账请求，运费由服务端决定
type CheckoutRequest struct {
	Recipient     string `json:"recipient"`
	PhoneNumber   string `json:"phoneNumber"`
	AddressDetail string `json:"addressDetail"`
	City          string `json:"city,omitempty"`
	District      string `json:"district,omitempty"`
	Ward          string `json:"ward,omitempty"`
	PaymentMethod string `json:"paymentMethod"`
}

// CheckoutResult 结账结果
type CheckoutResult struct {
	OrderID   uint    `json:"orderId"`
	OrderCode string  `json:"orderCode"`
	Total     float64 `json:"total"`
}

// Order 订单视图
type Order struct {
	ID            uint          `json:"id"`
	OrderCode     string        `json:"orderCode"`
	UserID        uint          `json:"userId"`
	OrderDate     time.Time     `json:"orderDate"`
	Total         float64       `json:"total"`
	ShippingPrice float64       `json:"shippingPrice"`
	PaymentMethod string        `json:"paymentMethod"`
	Status        string        `json:"status"`
	UserName      string        `json:"userName"`
	Details       []OrderDetail `json:"orderDetails"`
}

// OrderDetail 订单明细
type OrderDetail struct {
	ProductID    uint    `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price"`
}

// Register 注册新用户
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	return c.do(ctx, http.MethodPost, "/auth/register", in, nil)
}

// Login 登录并在客户端记住令牌，后续请求自动带上
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", body, &result); err != nil {
		return nil, err
	}
	c.token = result.Token
	return &result, nil
}

// Logout 登出并清掉本地令牌
func (c *Client) Logout(ctx context.Context) error {
	err := c.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
	c.token = ""
	return err
}

// ListProducts 商品列表，search 为空时不过滤
func (c *Client) ListProducts(ctx context.Context, page, limit int, search string) (*PagedResult[Product], error) {
	path := "/product" + pageQuery(page, limit)
	if search != "" {
		sep := "?"
		if page > 0 || limit > 0 {
			sep = "&"
		}
		path += sep + "search=" + url.QueryEscape(search)
	}

	var result PagedResult[Product]
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetProduct 商品详情
func (c *Client) GetProduct(ctx context.Context, id uint) (*Product, error) {
	var product Product
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/product/%d", id), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// ListProductsByCategory 按分类查商品
func (c *Client) ListProductsByCategory(ctx context.Context, categoryID uint, page, limit int) (*PagedResult[Product], error) {
	path := fmt.Sprintf("/product/category/%d%s", categoryID, pageQuery(page, limit))
	var result PagedResult[Product]
	if err := c.do(ctx, http.MethodGet, path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// AddToCart 加购，同商品行在服务端合并
func (c *Client) AddToCart(ctx context.Context, productID uint, quantity int) (*CartItem, error) {
	var item CartItem
	body := map[string]interface{}{"productId": productID, "quantity": quantity}
	if err := c.do(ctx, http.MethodPost, "/cart", body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetCart 当前用户购物车
func (c *Client) GetCart(ctx context.Context) ([]CartItem, error) {
	var items []CartItem
	if err := c.do(ctx, http.MethodGet, "/cart", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateCartItem 改数量
func (c *Client) UpdateCartItem(ctx context.Context, id uint, quantity int) (*CartItem, error) {
	var item CartItem
	body := map[string]int{"quantity": quantity}
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/cart/%d", id), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// RemoveCartItem 删一行
func (c *Client) RemoveCartItem(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/cart/%d", id), nil, nil)
}

// ClearCart 清空购物车
func (c *Client) ClearCart(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/cart/clear", nil, nil)
}

// Checkout 购物车结账
func (c *Client) Checkout(ctx context.Context, req CheckoutRequest) (*CheckoutResult, error) {
	var result CheckoutResult
	if err := c.do(ctx, http.MethodPost, "/order/createFromCart", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// MyOrders 当前用户订单历史
func (c *Client) MyOrders(ctx context.Context, page, limit int) (*PagedResult[Order], error) {
	var result PagedResult[Order]
	if err := c.do(ctx, http.MethodGet, "/order/user"+pageQuery(page, limit), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetOrder 订单详情
func (c *Client) GetOrder(ctx context.Context, id uint) (*Order, error) {
	var order Order
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/order/%d", id), nil, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// CancelOrder 取消订单
func (c *Client) CancelOrder(ctx context.Context, id uint) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/order/cancel/%d", id), nil, nil)
}
