package order

import (
	"fmt"

	"ayoya/internal/pkg/errs"
)

// Default prices in FCFA, matching the storefront's standing configuration.
const (
	DefaultBottlePrice      = 5000
	DefaultCartonPrice      = 25000
	DefaultDeliveryFee      = 1000
	DefaultBottlesPerCarton = 6
)

// Pricing carries the unit prices used to compute an order total. Prices are
// configuration, not order data: each order captures the resulting total (and
// the carton size) at creation so later price changes never rewrite history.
type Pricing struct {
	BottlePrice      int
	CartonPrice      int
	DeliveryFee      int
	BottlesPerCarton int
}

// DefaultPricing returns the standing storefront prices.
func DefaultPricing() Pricing {
	return Pricing{
		BottlePrice:      DefaultBottlePrice,
		CartonPrice:      DefaultCartonPrice,
		DeliveryFee:      DefaultDeliveryFee,
		BottlesPerCarton: DefaultBottlesPerCarton,
	}
}

// Validate checks all prices are coherent: positive unit prices, a
// non-negative delivery fee, and at least one bottle per carton.
func (p Pricing) Validate() error {
	if p.BottlePrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"bottlePrice", fmt.Errorf("%d is not greater than 0", p.BottlePrice))
	}
	if p.CartonPrice <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"cartonPrice", fmt.Errorf("%d is not greater than 0", p.CartonPrice))
	}
	if p.DeliveryFee < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryFee", fmt.Errorf("%d is negative", p.DeliveryFee))
	}
	if p.BottlesPerCarton <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"bottlesPerCarton", fmt.Errorf("%d is not greater than 0", p.BottlesPerCarton))
	}
	return nil
}

// Total computes the order amount: quantity times the unit price for the
// order type, plus the delivery fee for home delivery. Pickup orders carry
// no fee.
func (p Pricing) Total(orderType OrderType, quantity int, deliveryMethod DeliveryMethod) int {
	unitPrice := p.BottlePrice
	if orderType == OrderTypeCarton {
		unitPrice = p.CartonPrice
	}

	total := quantity * unitPrice
	if deliveryMethod == DeliveryHome {
		total += p.DeliveryFee
	}
	return total
}
