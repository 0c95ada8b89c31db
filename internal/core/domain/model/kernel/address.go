package kernel

import (
	"strings"

	"ayoya/internal/pkg/errs"
	"ayoya/internal/pkg/guard"
)

// CityCotonou is the only city subdivided into delivery zones. Orders
// delivered anywhere else carry no zone.
const CityCotonou = "Cotonou"

// Domain errors for address construction.
var (
	// ErrStreetIsRequired is returned when the street line is empty.
	ErrStreetIsRequired = errs.NewValueIsRequiredError("street")
	// ErrCityIsRequired is returned when the city is empty.
	ErrCityIsRequired = errs.NewValueIsRequiredError("city")
	// ErrZoneIsRequired is returned when a Cotonou address has no zone.
	ErrZoneIsRequired = errs.NewValueIsRequiredError("zone")
	// ErrZoneNotAllowed is returned when a zone is set for a city other than Cotonou.
	ErrZoneNotAllowed = errs.NewValueIsInvalidError("zone is only meaningful for Cotonou")
	// ErrAddressIsNotConstructed is returned when using a zero-value Address.
	ErrAddressIsNotConstructed = errs.NewValueIsRequiredError(
		"Address must be created via NewAddress")
)

// Address is a value object describing a delivery destination. It enforces
// the zone rule at construction: addresses in Cotonou must carry a delivery
// zone, addresses in any other city must not. This makes the invalid state
// "zone set but city is not Cotonou" unrepresentable.
//
// Example:
//
//	addr, err := kernel.NewAddress("Rue 12.081", "Cotonou", "akpakpa")
//	if err != nil {
//	    // zone missing or city empty
//	}
type Address struct {
	street string
	city   string
	zone   string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated Address. The zone parameter is required when
// city is Cotonou (case-insensitive match) and must be empty otherwise.
func NewAddress(street, city, zone string) (Address, error) {
	street = strings.TrimSpace(street)
	city = strings.TrimSpace(city)
	zone = strings.TrimSpace(zone)

	if street == "" {
		return Address{}, ErrStreetIsRequired
	}
	if city == "" {
		return Address{}, ErrCityIsRequired
	}

	isCotonou := strings.EqualFold(city, CityCotonou)
	if isCotonou && zone == "" {
		return Address{}, ErrZoneIsRequired
	}
	if !isCotonou && zone != "" {
		return Address{}, ErrZoneNotAllowed
	}

	return Address{
		street: street,
		city:   city,
		zone:   zone,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Street returns the street line of the address.
func (a Address) Street() string {
	return a.street
}

// City returns the city of the address.
func (a Address) City() string {
	return a.city
}

// Zone returns the Cotonou delivery zone, or the empty string for addresses
// outside Cotonou.
func (a Address) Zone() string {
	return a.zone
}

// IsCotonou reports whether the address lies within Cotonou.
func (a Address) IsCotonou() bool {
	return strings.EqualFold(a.city, CityCotonou)
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.street == other.street && a.city == other.city && a.zone == other.zone
}

// Validate ensures the Address was created through NewAddress.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
