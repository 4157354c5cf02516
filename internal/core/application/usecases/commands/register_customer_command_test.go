package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterCustomerCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewRegisterCustomerCommand(
		id, "Alice", "Alice@Example.COM", "+3161234567", "Canal St 1", "s3cretpass",
	)
	require.NoError(t, err)
	assert.Equal(t, id, cmd.CustomerID())
	assert.Equal(t, "alice@example.com", cmd.Email(), "email should be normalized to lower case")
	assert.Equal(t, "s3cretpass", cmd.Password())
}

func TestNewRegisterCustomerCommand_InvalidEmail(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(
		kernel.NewUUID(), "Alice", "not-an-email", "+3161234567", "Canal St 1", "s3cretpass",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrEmailIsInvalid)
}

func TestNewRegisterCustomerCommand_ShortPassword(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(
		kernel.NewUUID(), "Alice", "alice@example.com", "+3161234567", "Canal St 1", "short",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrPasswordIsTooShort)
}

func TestNewRegisterCustomerCommand_MissingFields(t *testing.T) {
	_, err := commands.NewRegisterCustomerCommand(
		kernel.NewUUID(), "", "alice@example.com", "", "", "s3cretpass",
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrNameIsRequired)
	assert.ErrorIs(t, err, commands.ErrPhoneIsRequired)
	assert.ErrorIs(t, err, commands.ErrAddressIsRequired)
}
