package commands_test

import (
	"testing"

	"procurement/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewUpdateOrderCommand(42, "Approved", "", nil)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.OrderID())
	assert.Equal(t, "Approved", cmd.StatusName())
	assert.Empty(t, cmd.DeliveryAddress())
	assert.Empty(t, cmd.Lines())
}

func TestNewUpdateOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewUpdateOrderCommand(0, "Approved", "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}

func TestNewDeleteOrderCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewDeleteOrderCommand(42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cmd.OrderID())
}

func TestNewDeleteOrderCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewDeleteOrderCommand(-1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrOrderIDIsInvalid)
}
