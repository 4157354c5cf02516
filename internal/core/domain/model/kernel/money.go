package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"
	"foodorder/internal/pkg/guard"
)

// ErrMoneyIsNotConstructed is returned when validating a zero-value Money.
// Money must be created via NewMoney or Zero.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError(
	"money must be created via NewMoney or Zero constructors")

// MaxAmount bounds any single Money value. Together with the cart's line
// quantity limit it keeps line totals and order sums far from int64 overflow.
const MaxAmount int64 = 100_000_000_000

// Money is an immutable value object representing a non-negative amount in the
// marketplace's minor currency unit. All catalog prices, delivery prices and
// order totals are expressed as Money; arithmetic never mutates, it returns a
// new value.
//
// Example:
//
//	price, err := kernel.NewMoney(120)
//	if err != nil {
//	    return err
//	}
//	lineTotal := price.MultiplyByQuantity(2) // 240
type Money struct { //nolint:recvcheck //using for validation
	amount int64
	guard  guard.ConstructorGuard
}

// NewMoney creates a Money amount between 0 and MaxAmount inclusive.
func NewMoney(amount int64) (Money, error) {
	if amount < 0 || amount > MaxAmount {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount, 0, MaxAmount)
	}

	return Money{
		amount: amount,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Zero returns the zero amount. Used as the default delivery price when a
// vendor has not configured one.
func Zero() Money {
	return Money{
		amount: 0,
		guard:  guard.NewConstructorGuard(),
	}
}

// Amount returns the value in minor currency units.
func (m Money) Amount() int64 {
	return m.amount
}

// Add returns the sum of two amounts.
func (m Money) Add(other Money) Money {
	return Money{
		amount: m.amount + other.amount,
		guard:  guard.NewConstructorGuard(),
	}
}

// MultiplyByQuantity returns the amount multiplied by a line quantity.
func (m Money) MultiplyByQuantity(quantity int) Money {
	return Money{
		amount: m.amount * int64(quantity),
		guard:  guard.NewConstructorGuard(),
	}
}

// IsEqual reports whether two amounts are the same.
func (m Money) IsEqual(other Money) bool {
	return m.amount == other.amount
}

// String formats the amount for logs and error messages.
func (m Money) String() string {
	return fmt.Sprintf("%d", m.amount)
}

// Validate returns ErrMoneyIsNotConstructed for zero-value instances.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}
