package response

// 业务错误码（机器可读，随响应 errorCode 字段返回）
const (
	// 通用
	ErrInvalidParam   = "INVALID_PARAM"
	ErrNotFound       = "NOT_FOUND"
	ErrServerInternal = "SERVER_INTERNAL"
	ErrTooManyRequest = "TOO_MANY_REQUESTS"

	// 用户 / 认证
	ErrEmailExists  = "EMAIL_EXISTS"
	ErrUserNotFound = "USER_NOT_FOUND"
	ErrAuthFailed   = "AUTH_FAILED"
	ErrTokenInvalid = "TOKEN_INVALID"
	ErrNoPermission = "NO_PERMISSION"

	// 商品 / 分类
	ErrSkuExists        = "SKU_EXISTS"
	ErrCategoryNotFound = "CATEGORY_NOT_FOUND"
	ErrProductNotFound  = "PRODUCT_NOT_FOUND"

	// 购物车 / 订单
	ErrCartItemNotFound     = "CART_ITEM_NOT_FOUND"
	ErrEmptyCart            = "EMPTY_CART"
	ErrCartConflict         = "CART_CONFLICT"
	ErrBrokenCartLine       = "BROKEN_CART_LINE"
	ErrInvalidPayment       = "INVALID_PAYMENT_METHOD"
	ErrIncompleteDelivery   = "INCOMPLETE_DELIVERY_INFO"
	ErrOrderNotFound        = "ORDER_NOT_FOUND"
	ErrInvalidOrderStatus   = "INVALID_ORDER_STATUS"
	ErrIllegalTransition    = "ILLEGAL_STATUS_TRANSITION"
	ErrOrderAlreadyShipped  = "ORDER_ALREADY_DELIVERED"
	ErrReviewNotFound       = "REVIEW_NOT_FOUND"
	ErrInvalidReviewRating  = "INVALID_REVIEW_RATING"
)
