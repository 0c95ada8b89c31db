// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models built with direct SQL, bypassing the
// aggregates entirely.
package queries

import "time"

// OrderReadModel is the flattened order view served to the dashboard. The
// same shape is stored in the cache and returned over HTTP, hence the JSON
// tags.
type OrderReadModel struct {
	ID               string     `json:"id"`
	Number           string     `json:"number"`
	CustomerName     string     `json:"customerName"`
	Phone            string     `json:"phone"`
	DeliveryPhone    string     `json:"deliveryPhone"`
	Street           string     `json:"street"`
	City             string     `json:"city"`
	Zone             string     `json:"zone,omitempty"`
	OrderType        string     `json:"orderType"`
	Quantity         int        `json:"quantity"`
	BottlesPerCarton int        `json:"bottlesPerCarton"`
	PaymentMethod    string     `json:"paymentMethod"`
	DeliveryMethod   string     `json:"deliveryMethod"`
	TotalAmount      int        `json:"totalAmount"`
	Status           string     `json:"status"`
	CourierID        *string    `json:"courierId,omitempty"`
	CourierName      *string    `json:"courierName,omitempty"`
	Notes            string     `json:"notes,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	Version          int        `json:"version"`
}

// CourierReadModel is the roster view. ActiveOrders counts work currently
// in flight; OrdersCount is the lifetime tally of orders ever handed to the
// person, completed and cancelled ones included.
type CourierReadModel struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Phone        string    `json:"phone"`
	Active       bool      `json:"active"`
	ActiveOrders int       `json:"activeOrders"`
	OrdersCount  int       `json:"ordersCount"`
	CreatedAt    time.Time `json:"createdAt"`
}
