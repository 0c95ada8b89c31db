package commands

import (
	"errors"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"
	"ayoya/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to register a new customer order.
// All raw input is parsed and validated at construction, so a constructed
// command always carries valid value objects.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    "Colette Hounsou", "+229 97 00 11 22", "",
//	    "Rue 12.081", "Cotonou", "akpakpa",
//	    "unit", 2, "cash", "delivery", "ring at the gate",
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer       order.Customer
	address        kernel.Address
	orderType      order.OrderType
	quantity       int
	paymentMethod  order.PaymentMethod
	deliveryMethod order.DeliveryMethod
	notes          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand parses and validates the raw order form input.
// Validation errors from the individual fields are aggregated, so one round
// trip reports everything wrong with the submission.
func NewCreateOrderCommand(
	customerName, phone, deliveryPhone string,
	street, city, zone string,
	orderType string,
	quantity int,
	paymentMethod, deliveryMethod string,
	notes string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	customer, customerErr := order.NewCustomer(customerName, phone, deliveryPhone)
	address, addressErr := kernel.NewAddress(street, city, zone)
	parsedType, typeErr := order.OrderTypeFromString(orderType)
	parsedPayment, paymentErr := order.PaymentMethodFromString(paymentMethod)
	parsedDelivery, deliveryErr := order.DeliveryMethodFromString(deliveryMethod)

	if err := errors.Join(
		customerErr, addressErr, typeErr, paymentErr, deliveryErr,
		cmd.setQuantity(quantity),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.customer = customer
	cmd.address = address
	cmd.orderType = parsedType
	cmd.paymentMethod = parsedPayment
	cmd.deliveryMethod = parsedDelivery
	cmd.notes = notes

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Customer returns the validated contact details.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Address returns the validated delivery address.
func (c CreateOrderCommand) Address() kernel.Address {
	return c.address
}

// OrderType returns whether bottles or cartons are ordered.
func (c CreateOrderCommand) OrderType() order.OrderType {
	return c.orderType
}

// Quantity returns the ordered quantity.
func (c CreateOrderCommand) Quantity() int {
	return c.quantity
}

// PaymentMethod returns how the customer pays.
func (c CreateOrderCommand) PaymentMethod() order.PaymentMethod {
	return c.paymentMethod
}

// DeliveryMethod returns how the order reaches the customer.
func (c CreateOrderCommand) DeliveryMethod() order.DeliveryMethod {
	return c.deliveryMethod
}

// Notes returns the free-form operator notes, possibly empty.
func (c CreateOrderCommand) Notes() string {
	return c.notes
}

func (c *CreateOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return order.ErrQuantityIsInvalid
	}
	c.quantity = quantity
	return nil
}
