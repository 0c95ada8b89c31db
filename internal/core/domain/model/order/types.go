package order

import (
	"fmt"

	"ayoya/internal/pkg/errs"
)

// OrderType distinguishes single bottles from full cartons; it drives the
// unit price used when computing the order total.
type OrderType string

const (
	OrderTypeUnit   OrderType = "unit"
	OrderTypeCarton OrderType = "carton"
)

// OrderTypeFromString parses the wire representation into an OrderType.
func OrderTypeFromString(s string) (OrderType, error) {
	t := OrderType(s)
	if err := t.Validate(); err != nil {
		return "", err
	}
	return t, nil
}

// Validate checks the OrderType is one of the defined values.
func (t OrderType) Validate() error {
	switch t {
	case OrderTypeUnit, OrderTypeCarton:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"orderType", fmt.Errorf("%q is not a valid order type", string(t)))
	}
}

func (t OrderType) String() string {
	return string(t)
}

// PaymentMethod is how the customer pays: cash on delivery or mobile money.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentMobile PaymentMethod = "mobile"
)

// PaymentMethodFromString parses the wire representation into a PaymentMethod.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks the PaymentMethod is one of the defined values.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentCash, PaymentMobile:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"paymentMethod", fmt.Errorf("%q is not a valid payment method", string(m)))
	}
}

func (m PaymentMethod) String() string {
	return string(m)
}

// DeliveryMethod is how the order reaches the customer. Pickup orders skip
// the delivery fee and never enter the dispatch workflow's delivery leg.
type DeliveryMethod string

const (
	DeliveryHome   DeliveryMethod = "delivery"
	DeliveryPickup DeliveryMethod = "pickup"
)

// DeliveryMethodFromString parses the wire representation into a DeliveryMethod.
func DeliveryMethodFromString(s string) (DeliveryMethod, error) {
	m := DeliveryMethod(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

// Validate checks the DeliveryMethod is one of the defined values.
func (m DeliveryMethod) Validate() error {
	switch m {
	case DeliveryHome, DeliveryPickup:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryMethod", fmt.Errorf("%q is not a valid delivery method", string(m)))
	}
}

func (m DeliveryMethod) String() string {
	return string(m)
}
