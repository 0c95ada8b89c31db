package courier

import (
	"errors"
	"strings"
	"time"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/pkg/errs"
	"ayoya/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when creating a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when creating a courier without a phone.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly
	// initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier")
	// ErrCourierInactive is returned when assigning an order to a courier
	// who is currently marked unavailable.
	ErrCourierInactive = errors.New("courier is inactive")
	// ErrCourierHasActiveOrders is returned when removing a courier who
	// still has orders in flight.
	ErrCourierHasActiveOrders = errors.New("courier has active orders")
)

// Courier is the aggregate root for a delivery person on the roster.
//
// Business rules:
//   - name and phone are required, identity is a UUID
//   - a new courier starts active
//   - only active couriers are eligible for new assignments; deactivation
//     does not touch orders already assigned to them
type Courier struct {
	id     kernel.UUID
	name   string
	phone  string
	active bool

	createdAt time.Time
	updatedAt time.Time

	guard guard.ConstructorGuard
}

// NewCourier creates a new active Courier with the given name and phone.
func NewCourier(id kernel.UUID, name, phone string, now time.Time) (*Courier, error) {
	c := &Courier{
		active: true,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	c.createdAt = now
	c.updatedAt = now

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistence, including its
// availability flag and timestamps.
func RestoreCourier(
	id kernel.UUID,
	name, phone string,
	active bool,
	createdAt, updatedAt time.Time,
) (*Courier, error) {
	c := &Courier{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	c.active = active
	c.createdAt = createdAt
	c.updatedAt = updatedAt

	return c, nil
}

// Validate ensures the Courier instance was properly constructed.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	return other != nil && c.id.IsEqual(other.id)
}

// ID returns the courier's unique identifier.
func (c *Courier) ID() kernel.UUID {
	return c.id
}

// Name returns the courier's display name.
func (c *Courier) Name() string {
	return c.name
}

// Phone returns the courier's contact phone.
func (c *Courier) Phone() string {
	return c.phone
}

// IsActive reports whether the courier is eligible for new assignments.
func (c *Courier) IsActive() bool {
	return c.active
}

// CreatedAt returns the roster-entry timestamp.
func (c *Courier) CreatedAt() time.Time {
	return c.createdAt
}

// UpdatedAt returns the timestamp of the last mutation.
func (c *Courier) UpdatedAt() time.Time {
	return c.updatedAt
}

// Rename changes the courier's display name.
func (c *Courier) Rename(name string, now time.Time) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

// ChangePhone changes the courier's contact phone.
func (c *Courier) ChangePhone(phone string, now time.Time) error {
	if err := c.setPhone(phone); err != nil {
		return err
	}
	c.updatedAt = now
	return nil
}

// Activate marks the courier as available for new assignments.
func (c *Courier) Activate(now time.Time) {
	c.active = true
	c.updatedAt = now
}

// Deactivate removes the courier from the pool of assignable people.
// Orders already assigned to them are unaffected.
func (c *Courier) Deactivate(now time.Time) {
	c.active = false
	c.updatedAt = now
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
