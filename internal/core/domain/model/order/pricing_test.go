package order_test

import (
	"testing"

	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPricing(t *testing.T) {
	p := order.DefaultPricing()

	assert.Equal(t, 5000, p.BottlePrice)
	assert.Equal(t, 25000, p.CartonPrice)
	assert.Equal(t, 1000, p.DeliveryFee)
	assert.Equal(t, 6, p.BottlesPerCarton)
	require.NoError(t, p.Validate())
}

func TestPricing_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*order.Pricing)
	}{
		{"zero bottle price", func(p *order.Pricing) { p.BottlePrice = 0 }},
		{"negative carton price", func(p *order.Pricing) { p.CartonPrice = -1 }},
		{"negative delivery fee", func(p *order.Pricing) { p.DeliveryFee = -500 }},
		{"zero bottles per carton", func(p *order.Pricing) { p.BottlesPerCarton = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := order.DefaultPricing()
			tt.mutate(&p)
			require.ErrorIs(t, p.Validate(), errs.ErrValueIsInvalid)
		})
	}

	t.Run("zero delivery fee is valid", func(t *testing.T) {
		p := order.DefaultPricing()
		p.DeliveryFee = 0
		require.NoError(t, p.Validate())
	})
}

func TestPricing_Total(t *testing.T) {
	p := order.DefaultPricing()

	tests := []struct {
		name           string
		orderType      order.OrderType
		quantity       int
		deliveryMethod order.DeliveryMethod
		want           int
	}{
		{"two bottles delivered", order.OrderTypeUnit, 2, order.DeliveryHome, 11000},
		{"two bottles picked up", order.OrderTypeUnit, 2, order.DeliveryPickup, 10000},
		{"single carton delivered", order.OrderTypeCarton, 1, order.DeliveryHome, 26000},
		{"three cartons picked up", order.OrderTypeCarton, 3, order.DeliveryPickup, 75000},
		{"single bottle delivered", order.OrderTypeUnit, 1, order.DeliveryHome, 6000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Total(tt.orderType, tt.quantity, tt.deliveryMethod))
		})
	}
}
