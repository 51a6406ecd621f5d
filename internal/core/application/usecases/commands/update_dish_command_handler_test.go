package commands_test

import (
	"testing"

	"grubdash/internal/core/application/usecases/commands"
	"grubdash/internal/core/domain/model/dish"
	"grubdash/internal/core/domain/model/kernel"
	"grubdash/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func storedDish(t *testing.T, id uint64) *dish.Dish {
	t.Helper()
	d, err := dish.RestoreDish(kernel.NewID(id), "Bagel", "Warm bagel", 4, "bagel.jpg")
	require.NoError(t, err)
	return d
}

func TestUpdateDishCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewID(4)

	t.Run("should merge the record into the stored dish", func(t *testing.T) {
		record := dishRecord()
		record["id"] = "4"
		cmd, err := commands.NewUpdateDishCommand(id, record)
		require.NoError(t, err)

		repo := new(MockDishRepository)
		repo.On("Replace", ctx, id).Return(storedDish(t, 4), nil).Once()

		h := commands.NewUpdateDishCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "4", updated.ID().String())
		assert.Equal(t, "Falafel and tahini bagel", updated.Name())
		assert.Equal(t, 6, updated.Price())
		repo.AssertExpectations(t)
	})

	t.Run("should report a missing dish before the record", func(t *testing.T) {
		cmd, err := commands.NewUpdateDishCommand(id, nil)
		require.NoError(t, err)

		repo := new(MockDishRepository)
		repo.On("Replace", ctx, id).Return(nil, errs.NewObjectNotFoundError(dish.Subject, id)).Once()

		h := commands.NewUpdateDishCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, "Dish does not exist: 4", err.Error())
	})

	t.Run("should reject a mismatching id", func(t *testing.T) {
		record := dishRecord()
		record["id"] = "5"
		cmd, err := commands.NewUpdateDishCommand(id, record)
		require.NoError(t, err)

		repo := new(MockDishRepository)
		repo.On("Replace", ctx, id).Return(storedDish(t, 4), nil).Once()

		h := commands.NewUpdateDishCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrIDMismatch)
		assert.Equal(t, "Dish id does not match route id. Dish: 5, Route: 4", err.Error())
	})

	t.Run("should accept an absent id", func(t *testing.T) {
		cmd, err := commands.NewUpdateDishCommand(id, dishRecord())
		require.NoError(t, err)

		repo := new(MockDishRepository)
		repo.On("Replace", ctx, id).Return(storedDish(t, 4), nil).Once()

		h := commands.NewUpdateDishCommandHandler(repo)
		updated, err := h.Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "4", updated.ID().String())
	})

	t.Run("should reject an invalid field", func(t *testing.T) {
		record := dishRecord()
		record["price"] = "6"
		cmd, err := commands.NewUpdateDishCommand(id, record)
		require.NoError(t, err)

		repo := new(MockDishRepository)
		repo.On("Replace", ctx, id).Return(storedDish(t, 4), nil).Once()

		h := commands.NewUpdateDishCommandHandler(repo)
		_, err = h.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrInvalidNumber)
	})
}
