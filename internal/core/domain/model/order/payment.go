package order

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// PaymentMethod identifies how an order is paid.
// Cash on delivery is the only supported method today.
type PaymentMethod string

// PaymentCashOnDelivery is the default and only payment method.
const PaymentCashOnDelivery PaymentMethod = "COD"

// Validate checks that the payment method is a recognized value.
func (p PaymentMethod) Validate() error {
	if p != PaymentCashOnDelivery {
		return errs.NewValueIsInvalidErrorWithCause("paymentMethod",
			fmt.Errorf("%q is not a supported payment method", string(p)))
	}
	return nil
}

// String returns the wire name of the payment method.
func (p PaymentMethod) String() string {
	return string(p)
}
