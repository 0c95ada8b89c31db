package commands_test

import (
	"testing"

	"ayoya/internal/core/application/usecases/commands"
	"ayoya/internal/core/domain/model/courier"
	"ayoya/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestNewUpdateCourierCommand(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("should accept a partial patch", func(t *testing.T) {
		cmd, err := commands.NewUpdateCourierCommand(id, strPtr(" Marc Dossou "), nil, boolPtr(false))

		require.NoError(t, err)
		require.NotNil(t, cmd.Name())
		assert.Equal(t, "Marc Dossou", *cmd.Name())
		assert.Nil(t, cmd.Phone())
		require.NotNil(t, cmd.Active())
		assert.False(t, *cmd.Active())
	})

	t.Run("should reject empty patch", func(t *testing.T) {
		_, err := commands.NewUpdateCourierCommand(id, nil, nil, nil)

		require.ErrorIs(t, err, commands.ErrNothingToUpdate)
	})

	t.Run("should reject blank name", func(t *testing.T) {
		_, err := commands.NewUpdateCourierCommand(id, strPtr("   "), nil, nil)

		require.ErrorIs(t, err, courier.ErrNameIsRequired)
	})

	t.Run("should reject blank phone", func(t *testing.T) {
		_, err := commands.NewUpdateCourierCommand(id, nil, strPtr(""), nil)

		require.ErrorIs(t, err, courier.ErrPhoneIsRequired)
	})

	t.Run("should reject missing courier ID", func(t *testing.T) {
		_, err := commands.NewUpdateCourierCommand(kernel.UUID{}, strPtr("Marc"), nil, nil)

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUpdateCourierCommandHandler_Handle(t *testing.T) {
	t.Run("should apply patch and persist", func(t *testing.T) {
		ctx := t.Context()
		person := activeCourier(t)
		cmd, err := commands.NewUpdateCourierCommand(person.ID(), strPtr("Marc Dossou"), nil, boolPtr(false))
		require.NoError(t, err)

		courierRepo := new(MockCourierRepository)
		uow := new(MockUoW)
		uow.On("Begin", ctx).Return(nil).Once()
		uow.On("CourierRepository").Return(courierRepo).Once()
		courierRepo.On("Get", ctx, person.ID()).Return(person, nil).Once()
		courierRepo.On("Update", ctx, person).Return(nil).Once()
		uow.On("Commit", ctx).Return(nil).Once()
		uow.On("Rollback", ctx).Return(nil).Once()

		factory := new(MockCourierUoWFactory)
		factory.On("Create").Return(uow).Once()

		h := commands.NewUpdateCourierCommandHandler(factory)
		require.NoError(t, h.Handle(ctx, cmd))

		assert.Equal(t, "Marc Dossou", person.Name())
		assert.False(t, person.IsActive())
		courierRepo.AssertExpectations(t)
	})
}
