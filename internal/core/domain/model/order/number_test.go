package order_test

import (
	"regexp"
	"testing"
	"time"

	"ayoya/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
)

func TestNewOrderNumber(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	pattern := regexp.MustCompile(`^AYO-20240115-[A-Z0-9]{6}$`)

	t.Run("should match the reference format", func(t *testing.T) {
		for range 100 {
			number := order.NewOrderNumber(now)
			assert.Regexp(t, pattern, number)
		}
	})

	t.Run("should rarely collide", func(t *testing.T) {
		seen := make(map[string]bool)
		for range 1000 {
			seen[order.NewOrderNumber(now)] = true
		}
		// 36^6 combinations; 1000 draws colliding would indicate a broken generator.
		assert.Greater(t, len(seen), 990)
	})
}
