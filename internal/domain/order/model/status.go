package model

import "strings"

// OrderStatus 订单状态，封闭枚举，所有写入前都必须校验
type OrderStatus string

const (
	StatusPendingConfirmation OrderStatus = "PENDING_CONFIRMATION"
	StatusConfirmed           OrderStatus = "CONFIRMED"
	StatusPreparing           OrderStatus = "PREPARING"
	StatusShipping            OrderStatus = "SHIPPING"
	StatusDelivered           OrderStatus = "DELIVERED"
	StatusCancelled           OrderStatus = "CANCELLED"
)

// 正常流转顺序，用下标表示先后
var statusRank = map[OrderStatus]int{
	StatusPendingConfirmation: 0,
	StatusConfirmed:           1,
	StatusPreparing:           2,
	StatusShipping:            3,
	StatusDelivered:           4,
}

// ParseStatus 解析状态字符串，未知值返回 false
func ParseStatus(s string) (OrderStatus, bool) {
	status := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch status {
	case StatusPendingConfirmation, StatusConfirmed, StatusPreparing,
		StatusShipping, StatusDelivered, StatusCancelled:
		return status, true
	}
	return "", false
}

// IsTerminal 终态不允许任何流出
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo 状态机规则：
//   - 终态（已送达/已取消）不允许流出
//   - 取消可以从任何非终态进入
//   - 其余只允许沿正常流程逐级向前，不允许跳级或回退
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.IsTerminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to == from+1
}
