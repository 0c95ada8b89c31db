package order

import (
	"strings"

	"ayoya/internal/pkg/errs"
	"ayoya/internal/pkg/guard"
)

// Domain errors for customer contact details.
var (
	// ErrCustomerNameIsRequired is returned when the customer name is empty.
	ErrCustomerNameIsRequired = errs.NewValueIsRequiredError("customerName")
	// ErrCustomerPhoneIsRequired is returned when the contact phone is empty.
	ErrCustomerPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCustomerIsNotConstructed is returned when using a zero-value Customer.
	ErrCustomerIsNotConstructed = errs.NewValueIsRequiredError(
		"Customer must be created via NewCustomer")
)

// Customer is a value object holding the contact details of an order. The
// delivery phone defaults to the contact phone when left empty, covering the
// order form's "same contact" flag.
type Customer struct {
	name          string
	phone         string
	deliveryPhone string

	guard guard.ConstructorGuard
}

// NewCustomer creates validated contact details. Name and phone are required;
// deliveryPhone falls back to phone when empty.
func NewCustomer(name, phone, deliveryPhone string) (Customer, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)
	deliveryPhone = strings.TrimSpace(deliveryPhone)

	if name == "" {
		return Customer{}, ErrCustomerNameIsRequired
	}
	if phone == "" {
		return Customer{}, ErrCustomerPhoneIsRequired
	}
	if deliveryPhone == "" {
		deliveryPhone = phone
	}

	return Customer{
		name:          name,
		phone:         phone,
		deliveryPhone: deliveryPhone,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Name returns the customer's display name.
func (c Customer) Name() string {
	return c.name
}

// Phone returns the primary contact phone.
func (c Customer) Phone() string {
	return c.phone
}

// DeliveryPhone returns the phone the delivery person should call. Equals
// Phone when the customer did not provide a separate number.
func (c Customer) DeliveryPhone() string {
	return c.deliveryPhone
}

// Validate ensures the Customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}
