package errs_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "7f2c1f30-0000-0000-0000-000000000001")

		assert.Equal(t, "orderId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 7f2c1f30-0000-0000-0000-000000000001", err.Error())
		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := errs.NewObjectNotFoundErrorWithCause("cart", "c-1", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: param is: cart, ID is: c-1 (cause: connection reset)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("status")

		assert.Equal(t, "value is invalid: status", err.Error())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("with cause", func(t *testing.T) {
		err := errs.NewValueIsInvalidErrorWithCause("status", errors.New("unknown name"))

		assert.Equal(t, "value is invalid: status (cause: unknown name)", err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100)

	assert.Equal(t, 0, err.Value)
	assert.Equal(t, 1, err.Min)
	assert.Equal(t, 100, err.Max)
	assert.Equal(t, "value is invalid: 0 is quantity, min value is 1, max value is 100", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestValueIsOutOfRangeError_SanitizesNewlines(t *testing.T) {
	err := errs.NewValueIsOutOfRangeError("name", "a\nb", 0, 10)

	assert.Contains(t, err.Error(), "a b")
	assert.NotContains(t, err.Error(), "\n")
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("customerId")

	assert.Equal(t, "value is required: customerId", err.Error())
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	withCause := errs.NewValueIsRequiredErrorWithCause("customerId", errors.New("empty header"))
	require.ErrorIs(t, withCause, errs.ErrValueIsRequired)
}

func TestSentinelMessages(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
}
