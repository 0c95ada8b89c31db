package kernel_test

import (
	"testing"

	"ayoya/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddress(t *testing.T) {
	t.Run("should create address outside Cotonou without zone", func(t *testing.T) {
		addr, err := kernel.NewAddress("Carré 223", "Porto-Novo", "")

		require.NoError(t, err)
		assert.Equal(t, "Carré 223", addr.Street())
		assert.Equal(t, "Porto-Novo", addr.City())
		assert.Empty(t, addr.Zone())
		assert.False(t, addr.IsCotonou())
	})

	t.Run("should create Cotonou address with zone", func(t *testing.T) {
		addr, err := kernel.NewAddress("Rue 12.081", "Cotonou", "akpakpa")

		require.NoError(t, err)
		assert.Equal(t, "akpakpa", addr.Zone())
		assert.True(t, addr.IsCotonou())
	})

	t.Run("should match Cotonou case-insensitively", func(t *testing.T) {
		addr, err := kernel.NewAddress("Rue 12.081", "cotonou", "fidjrosse")

		require.NoError(t, err)
		assert.True(t, addr.IsCotonou())
	})

	t.Run("should require street", func(t *testing.T) {
		_, err := kernel.NewAddress("", "Cotonou", "akpakpa")

		require.ErrorIs(t, err, kernel.ErrStreetIsRequired)
	})

	t.Run("should require city", func(t *testing.T) {
		_, err := kernel.NewAddress("Rue 12.081", "", "")

		require.ErrorIs(t, err, kernel.ErrCityIsRequired)
	})

	t.Run("should require zone for Cotonou", func(t *testing.T) {
		_, err := kernel.NewAddress("Rue 12.081", "Cotonou", "")

		require.ErrorIs(t, err, kernel.ErrZoneIsRequired)
	})

	t.Run("should reject zone outside Cotonou", func(t *testing.T) {
		_, err := kernel.NewAddress("Carré 223", "Parakou", "akpakpa")

		require.ErrorIs(t, err, kernel.ErrZoneNotAllowed)
	})

	t.Run("should trim whitespace", func(t *testing.T) {
		addr, err := kernel.NewAddress("  Carré 223  ", " Parakou ", "")

		require.NoError(t, err)
		assert.Equal(t, "Carré 223", addr.Street())
		assert.Equal(t, "Parakou", addr.City())
	})
}

func TestAddress_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var addr kernel.Address

		require.ErrorIs(t, addr.Validate(), kernel.ErrAddressIsNotConstructed)
	})

	t.Run("should accept constructed address", func(t *testing.T) {
		addr, err := kernel.NewAddress("Carré 223", "Parakou", "")
		require.NoError(t, err)

		require.NoError(t, addr.Validate())
	})
}

func TestAddress_IsEqual(t *testing.T) {
	a1, err := kernel.NewAddress("Rue 12.081", "Cotonou", "akpakpa")
	require.NoError(t, err)
	a2, err := kernel.NewAddress("Rue 12.081", "Cotonou", "akpakpa")
	require.NoError(t, err)
	a3, err := kernel.NewAddress("Rue 12.081", "Cotonou", "centre")
	require.NoError(t, err)

	assert.True(t, a1.IsEqual(a2))
	assert.False(t, a1.IsEqual(a3))
}
