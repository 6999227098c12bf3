package order

import (
	"errors"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// Charges is the monetary breakdown of an order. All components are
// fixed-point decimals; the total is derived, never stored independently.
type Charges struct {
	subtotal    kernel.Money
	deliveryFee kernel.Money
	tax         kernel.Money
	discount    kernel.Money
}

// NewCharges validates and builds the monetary breakdown.
// No component may be negative and the resulting total
// (subtotal + deliveryFee + tax - discount) must be non-negative.
func NewCharges(subtotal, deliveryFee, tax, discount kernel.Money) (Charges, error) {
	if subtotal.IsNegative() || deliveryFee.IsNegative() || tax.IsNegative() || discount.IsNegative() {
		return Charges{}, errs.NewValueIsInvalidErrorWithCause("charges",
			errors.New("monetary components must not be negative"))
	}

	charges := Charges{
		subtotal:    subtotal,
		deliveryFee: deliveryFee,
		tax:         tax,
		discount:    discount,
	}
	if charges.Total().IsNegative() {
		return Charges{}, errs.NewValueIsInvalidErrorWithCause("charges",
			errors.New("discount exceeds the order total"))
	}

	return charges, nil
}

// Subtotal returns the item subtotal.
func (c Charges) Subtotal() kernel.Money {
	return c.subtotal
}

// DeliveryFee returns the delivery fee credited to the courier on completion.
func (c Charges) DeliveryFee() kernel.Money {
	return c.deliveryFee
}

// Tax returns the tax component.
func (c Charges) Tax() kernel.Money {
	return c.tax
}

// Discount returns the discount component.
func (c Charges) Discount() kernel.Money {
	return c.discount
}

// Total returns subtotal + deliveryFee + tax - discount.
func (c Charges) Total() kernel.Money {
	return c.subtotal.Add(c.deliveryFee).Add(c.tax).Sub(c.discount)
}
