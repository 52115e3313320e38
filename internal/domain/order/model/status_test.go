package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	t.Run("Known values parse case-insensitively", func(t *testing.T) {
		status, ok := ParseStatus("confirmed")
		assert.True(t, ok)
		assert.Equal(t, StatusConfirmed, status)

		status, ok = ParseStatus("  SHIPPING ")
		assert.True(t, ok)
		assert.Equal(t, StatusShipping, status)
	})

	t.Run("Unknown values are rejected", func(t *testing.T) {
		_, ok := ParseStatus("REFUNDED")
		assert.False(t, ok)

		_, ok = ParseStatus("")
		assert.False(t, ok)
	})
}

func TestCanTransitionTo(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPendingConfirmation, StatusConfirmed, true},
		{StatusPendingConfirmation, StatusDelivered, false},
		{StatusPendingConfirmation, StatusCancelled, true},
		{StatusConfirmed, StatusPreparing, true},
		{StatusConfirmed, StatusShipping, false},
		{StatusConfirmed, StatusPendingConfirmation, false},
		{StatusPreparing, StatusShipping, true},
		{StatusPreparing, StatusConfirmed, false},
		{StatusShipping, StatusDelivered, true},
		{StatusShipping, StatusCancelled, true},
		{StatusShipping, StatusShipping, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusDelivered, StatusShipping, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusCancelled, StatusCancelled, false},
	}

	for _, tc := range cases {
		got := tc.from.CanTransitionTo(tc.to)
		assert.Equalf(t, tc.allowed, got, "%s -> %s", tc.from, tc.to)
	}
}

func TestNewOrderCode(t *testing.T) {
	code := NewOrderCode()
	assert.Len(t, code, 21) // ORD + 14 位时间戳 + 4 位随机后缀
	assert.Equal(t, "ORD", code[:3])

	other := NewOrderCode()
	assert.NotEqual(t, code, other)
}

func TestShippingPriceFor(t *testing.T) {
	assert.Equal(t, float64(ShippingPriceBank), ShippingPriceFor(PaymentMethodBank))
	assert.Equal(t, float64(ShippingPriceCOD), ShippingPriceFor(PaymentMethodCOD))
}

func TestNormalizePaymentMethod(t *testing.T) {
	m, ok := NormalizePaymentMethod(" bank ")
	assert.True(t, ok)
	assert.Equal(t, PaymentMethodBank, m)

	_, ok = NormalizePaymentMethod("CASH")
	assert.False(t, ok)
}
