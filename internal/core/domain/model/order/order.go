package order

import (
	"errors"
	"fmt"
	"time"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/errs"
	"ayoya/internal/pkg/guard"
)

// Domain errors for order lifecycle operations.
var (
	// ErrOrderIsNotConstructed is returned when an Order was not created
	// through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderNumberIsRequired is returned when the order reference is empty.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("orderNumber")

	// ErrQuantityIsInvalid is returned when the ordered quantity is not
	// a positive number.
	ErrQuantityIsInvalid = errs.NewValueIsInvalidError("quantity must be greater than 0")

	// ErrDirectAssignNotAllowed is returned when a bare status change targets
	// the assigned status; that status is only reachable through Assign,
	// which binds the delivery person in the same operation.
	ErrDirectAssignNotAllowed = errs.NewValueIsInvalidError(
		"status assigned is only reachable by assigning a delivery person")

	// ErrAssignmentLocked is returned when reassigning an order whose
	// delivery has already started.
	ErrAssignmentLocked = errors.New("assignment is locked once delivery has started")

	// ErrInvalidOrderState is the sentinel for assignment attempts on orders
	// outside the confirmed/assigned statuses.
	ErrInvalidOrderState = errors.New("order is not in an assignable state")
)

// InvalidOrderStateError identifies the status that prevented an assignment.
type InvalidOrderStateError struct {
	Status Status
}

// NewInvalidOrderStateError creates an InvalidOrderStateError for the given status.
func NewInvalidOrderStateError(status Status) *InvalidOrderStateError {
	return &InvalidOrderStateError{Status: status}
}

func (e *InvalidOrderStateError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidOrderState, e.Status)
}

func (e *InvalidOrderStateError) Unwrap() error {
	return ErrInvalidOrderState
}

// Order is the aggregate root for a customer purchase. It owns the lifecycle
// from creation through delivery-person assignment to a terminal status, and
// it is the only place those rules are enforced.
//
// Invariants:
//   - identity, order number, customer and address are valid and immutable
//   - quantity is positive; totalAmount is fixed at creation from Pricing
//   - courierID is set exactly when status is assigned, in_delivery or
//     delivered; cancelled may retain a prior assignment
//   - updatedAt is bumped on every mutation
//   - version counts committed writes for optimistic concurrency control
type Order struct {
	id       kernel.UUID
	number   string
	customer Customer
	address  kernel.Address

	orderType        OrderType
	quantity         int
	bottlesPerCarton int
	paymentMethod    PaymentMethod
	deliveryMethod   DeliveryMethod
	totalAmount      int

	status    Status
	courierID *kernel.UUID
	notes     string

	createdAt time.Time
	updatedAt time.Time
	version   int

	guard guard.ConstructorGuard
}

// NewOrder creates a new Order in pending status. The total amount and the
// carton size are captured from the supplied pricing; notes may be empty.
// The caller provides the clock so creation time is deterministic in tests.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	address kernel.Address,
	orderType OrderType,
	quantity int,
	paymentMethod PaymentMethod,
	deliveryMethod DeliveryMethod,
	notes string,
	pricing Pricing,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setAddress(address),
		o.setOrderType(orderType),
		o.setQuantity(quantity),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryMethod(deliveryMethod),
		pricing.Validate(),
	); err != nil {
		return nil, err
	}

	o.bottlesPerCarton = pricing.BottlesPerCarton
	o.totalAmount = pricing.Total(orderType, quantity, deliveryMethod)
	o.notes = notes
	o.createdAt = now
	o.updatedAt = now

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence, including its status,
// assignment and version. It validates the status/assignment invariant so a
// corrupted row cannot produce an inconsistent aggregate.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	address kernel.Address,
	orderType OrderType,
	quantity int,
	bottlesPerCarton int,
	paymentMethod PaymentMethod,
	deliveryMethod DeliveryMethod,
	totalAmount int,
	status Status,
	courierID *kernel.UUID,
	notes string,
	createdAt time.Time,
	updatedAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setAddress(address),
		o.setOrderType(orderType),
		o.setQuantity(quantity),
		o.setPaymentMethod(paymentMethod),
		o.setDeliveryMethod(deliveryMethod),
		status.Validate(),
		status.ValidateCourier(courierID != nil),
	); err != nil {
		return nil, err
	}

	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return nil, err
		}
		cID := *courierID
		o.courierID = &cID
	}

	o.bottlesPerCarton = bottlesPerCarton
	o.totalAmount = totalAmount
	o.status = status
	o.notes = notes
	o.createdAt = createdAt
	o.updatedAt = updatedAt
	o.version = version

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-facing order reference.
func (o *Order) Number() string {
	return o.number
}

// Customer returns the contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Address returns the delivery destination.
func (o *Order) Address() kernel.Address {
	return o.address
}

// OrderType returns whether the order is for bottles or cartons.
func (o *Order) OrderType() OrderType {
	return o.orderType
}

// Quantity returns the ordered quantity.
func (o *Order) Quantity() int {
	return o.quantity
}

// BottlesPerCarton returns the carton size captured at creation.
func (o *Order) BottlesPerCarton() int {
	return o.bottlesPerCarton
}

// PaymentMethod returns how the customer pays.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// DeliveryMethod returns how the order reaches the customer.
func (o *Order) DeliveryMethod() DeliveryMethod {
	return o.deliveryMethod
}

// TotalAmount returns the amount in FCFA fixed at creation.
func (o *Order) TotalAmount() int {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Courier returns the assigned delivery person's ID, or nil when unassigned.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Notes returns the operator notes, possibly empty.
func (o *Order) Notes() string {
	return o.notes
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic concurrency counter as loaded from
// persistence. The repository increments it on every committed update.
func (o *Order) Version() int {
	return o.version
}

// IncrementVersion advances the optimistic concurrency counter. The
// repository calls it after a successful versioned write so the in-memory
// aggregate matches the stored row and can be written again within the same
// unit of work.
func (o *Order) IncrementVersion() {
	o.version++
}

// TransitionTo performs a status change according to the transition table.
//
// Rules:
//   - the assigned status is rejected here; use Assign
//   - a no-op transition (target equals current) fails as invalid
//   - cancellation does not clear a prior assignment
//
// On success updatedAt is bumped to now.
func (o *Order) TransitionTo(target Status, now time.Time) error {
	if target == Assigned {
		return ErrDirectAssignNotAllowed
	}

	newStatus, err := o.status.TransitionTo(target)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Assign binds a delivery person to the order and moves it to assigned in a
// single operation, so the pair (status, courier) can never diverge.
//
// Rules:
//   - from confirmed: first assignment
//   - from assigned: reassignment, overwriting the previous delivery person
//   - from in_delivery or delivered: ErrAssignmentLocked
//   - from any other status: InvalidOrderStateError
func (o *Order) Assign(courierID kernel.UUID, now time.Time) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch o.status {
	case Confirmed, Assigned:
		// assignable
	case InDelivery, Delivered:
		return ErrAssignmentLocked
	default:
		return NewInvalidOrderStateError(o.status)
	}

	o.status = Assigned
	o.courierID = &courierID
	o.updatedAt = now
	return nil
}

// UpdateNotes replaces the operator notes and bumps updatedAt.
func (o *Order) UpdateNotes(notes string, now time.Time) {
	o.notes = notes
	o.updatedAt = now
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if number == "" {
		return ErrOrderNumberIsRequired
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setOrderType(orderType OrderType) error {
	if err := orderType.Validate(); err != nil {
		return err
	}
	o.orderType = orderType
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setPaymentMethod(m PaymentMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.paymentMethod = m
	return nil
}

func (o *Order) setDeliveryMethod(m DeliveryMethod) error {
	if err := m.Validate(); err != nil {
		return err
	}
	o.deliveryMethod = m
	return nil
}
