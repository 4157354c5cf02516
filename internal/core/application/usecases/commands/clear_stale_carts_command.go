package commands

import (
	"errors"
	"time"

	"foodorder/internal/pkg/guard"
)

var (
	ErrClearStaleCartsCommandIsNotConstructed = errors.New(
		"ClearStaleCartsCommand must be created via NewClearStaleCartsCommand constructor",
	)
	ErrMaxAgeIsInvalid = errors.New("max age must be greater than 0")
)

// ClearStaleCartsCommand represents a maintenance request to empty every
// cart that has not been touched for longer than the given age.
type ClearStaleCartsCommand struct { //nolint:recvcheck //using for validation
	maxAge time.Duration

	guard guard.ConstructorGuard
}

// NewClearStaleCartsCommand creates a command to empty abandoned carts.
func NewClearStaleCartsCommand(maxAge time.Duration) (ClearStaleCartsCommand, error) {
	cmd := ClearStaleCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setMaxAge(maxAge); err != nil {
		return ClearStaleCartsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ClearStaleCartsCommand) Validate() error {
	return c.guard.Validate(ErrClearStaleCartsCommandIsNotConstructed)
}

// MaxAge returns how long a cart may stay untouched before it is cleared.
func (c ClearStaleCartsCommand) MaxAge() time.Duration {
	return c.maxAge
}

func (c *ClearStaleCartsCommand) setMaxAge(maxAge time.Duration) error {
	if maxAge <= 0 {
		return ErrMaxAgeIsInvalid
	}

	c.maxAge = maxAge
	return nil
}
