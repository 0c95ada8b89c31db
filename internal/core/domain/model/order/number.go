package order

import (
	"fmt"
	"math/rand/v2"
	"time"
)

const (
	orderNumberPrefix   = "AYO"
	orderNumberAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderNumberSuffix   = 6
)

// NewOrderNumber generates a human-facing order reference of the form
// "AYO-20240115-7GK2QD". The reference is what customers quote on the phone;
// the aggregate identity stays a UUID. Uniqueness is enforced by the
// persistence layer, not by this generator.
func NewOrderNumber(now time.Time) string {
	suffix := make([]byte, orderNumberSuffix)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rand.IntN(len(orderNumberAlphabet))]
	}
	return fmt.Sprintf("%s-%s-%s", orderNumberPrefix, now.Format("20060102"), suffix)
}
