// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, handling conversion between domain entities and database rows.
package orderrepo

import (
	"time"

	"ayoya/internal/core/domain/model/kernel"
	"ayoya/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps come from the domain, so GORM's automatic time tracking is
// disabled. The version column backs optimistic concurrency control.
type OrderDTO struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Number           string     `gorm:"uniqueIndex;not null"`
	CustomerName     string     `gorm:"not null"`
	Phone            string     `gorm:"not null"`
	DeliveryPhone    string     `gorm:"not null"`
	Address          AddressDTO `gorm:"embedded;embeddedPrefix:address_"`
	OrderType        string     `gorm:"not null"`
	Quantity         int        `gorm:"not null"`
	BottlesPerCarton int        `gorm:"not null"`
	PaymentMethod    string     `gorm:"not null"`
	DeliveryMethod   string     `gorm:"not null"`
	TotalAmount      int        `gorm:"not null"`
	Status           int        `gorm:"index"`
	CourierID        *uuid.UUID `gorm:"type:uuid;index"`
	Notes            string
	CreatedAt        time.Time `gorm:"index;autoCreateTime:false"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime:false"`
	Version          int       `gorm:"not null;default:0"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	Street string `gorm:"not null"`
	City   string `gorm:"not null"`
	Zone   string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	customer := aggregate.Customer()
	address := aggregate.Address()

	return OrderDTO{
		ID:            aggregate.ID().Bytes(),
		Number:        aggregate.Number(),
		CustomerName:  customer.Name(),
		Phone:         customer.Phone(),
		DeliveryPhone: customer.DeliveryPhone(),
		Address: AddressDTO{
			Street: address.Street(),
			City:   address.City(),
			Zone:   address.Zone(),
		},
		OrderType:        aggregate.OrderType().String(),
		Quantity:         aggregate.Quantity(),
		BottlesPerCarton: aggregate.BottlesPerCarton(),
		PaymentMethod:    aggregate.PaymentMethod().String(),
		DeliveryMethod:   aggregate.DeliveryMethod().String(),
		TotalAmount:      aggregate.TotalAmount(),
		Status:           int(aggregate.Status()),
		CourierID:        courierID,
		Notes:            aggregate.Notes(),
		CreatedAt:        aggregate.CreatedAt(),
		UpdatedAt:        aggregate.UpdatedAt(),
		Version:          aggregate.Version(),
	}
}

// toDomain converts a database row to an order aggregate via RestoreOrder,
// which re-validates the stored state.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	customer, err := order.NewCustomer(dto.CustomerName, dto.Phone, dto.DeliveryPhone)
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.Address.Street, dto.Address.City, dto.Address.Zone)
	if err != nil {
		return nil, err
	}

	orderType, err := order.OrderTypeFromString(dto.OrderType)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(dto.PaymentMethod)
	if err != nil {
		return nil, err
	}

	deliveryMethod, err := order.DeliveryMethodFromString(dto.DeliveryMethod)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.Number,
		customer,
		address,
		orderType,
		dto.Quantity,
		dto.BottlesPerCarton,
		paymentMethod,
		deliveryMethod,
		dto.TotalAmount,
		order.Status(dto.Status),
		courierID,
		dto.Notes,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
