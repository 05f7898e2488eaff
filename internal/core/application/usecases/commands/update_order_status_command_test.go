package commands_test

import (
	"testing"

	"ordermanagement/internal/core/application/usecases/commands"
	"ordermanagement/internal/core/domain/model/kernel"
	"ordermanagement/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderStatusCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewUpdateOrderStatusCommand(id, order.Paid)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.OrderID())
	assert.Equal(t, order.Paid, cmd.NewStatus())
}

func TestNewUpdateOrderStatusCommand_CancelledTarget(t *testing.T) {
	cmd, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Cancelled)
	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, cmd.NewStatus())
}

func TestNewUpdateOrderStatusCommand_InvalidOrderID(t *testing.T) {
	invalidID := kernel.UUID{} // zero value, should trigger validation error
	_, err := commands.NewUpdateOrderStatusCommand(invalidID, order.Paid)
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewUpdateOrderStatusCommand_UnknownStatus(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Unknown)
	require.Error(t, err)
}

func TestNewUpdateOrderStatusCommand_PendingTargetRejected(t *testing.T) {
	_, err := commands.NewUpdateOrderStatusCommand(kernel.NewUUID(), order.Pending)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPendingStatusNotAllowed)
}

func TestUpdateOrderStatusCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.UpdateOrderStatusCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrUpdateOrderStatusCommandIsNotConstructed)
}
