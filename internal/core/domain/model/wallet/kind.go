package wallet

import (
	"fmt"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

// TransactionKind classifies a ledger entry and fixes the sign of its amount.
type TransactionKind int

const (
	// KindUnknown represents an invalid or undefined kind.
	KindUnknown TransactionKind = iota

	// KindDeliveryFee credits the courier for a completed delivery.
	KindDeliveryFee

	// KindBonus credits an incentive payment.
	KindBonus

	// KindTip credits a customer tip.
	KindTip

	// KindRefund credits a reversal of an earlier debit.
	KindRefund

	// KindCompensation credits reimbursement of courier expenses.
	KindCompensation

	// KindWithdrawal debits a payout to the courier's bank account.
	KindWithdrawal

	// KindFine debits a penalty.
	KindFine

	// KindAdjustment applies an administrative correction carrying the sign
	// of the supplied amount as-is.
	KindAdjustment
)

func getKindStrings() map[TransactionKind]string {
	return map[TransactionKind]string{
		KindUnknown:      "UNKNOWN",
		KindDeliveryFee:  "DELIVERY_FEE",
		KindBonus:        "BONUS",
		KindTip:          "TIP",
		KindRefund:       "REFUND",
		KindCompensation: "COMPENSATION",
		KindWithdrawal:   "WITHDRAWAL",
		KindFine:         "FINE",
		KindAdjustment:   "ADJUSTMENT",
	}
}

// AllKinds returns every valid transaction kind.
func AllKinds() []TransactionKind {
	return []TransactionKind{
		KindDeliveryFee, KindBonus, KindTip, KindRefund,
		KindCompensation, KindWithdrawal, KindFine, KindAdjustment,
	}
}

// ParseKind resolves a transaction kind name.
func ParseKind(name string) (TransactionKind, error) {
	for kind, str := range getKindStrings() {
		if str == name && kind != KindUnknown {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("transaction kind",
		fmt.Errorf("%q is not a known transaction kind", name))
}

// Validate checks that the value is a member of the kind set.
func (k TransactionKind) Validate() error {
	if _, ok := getKindStrings()[k]; !ok || k == KindUnknown {
		return errs.NewValueIsInvalidErrorWithCause("transaction kind",
			fmt.Errorf("%d is not a valid transaction kind", int(k)))
	}
	return nil
}

// String returns the canonical name of the kind. Implements fmt.Stringer.
func (k TransactionKind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsCredit reports whether the kind increases the balance.
// KindAdjustment is neither: it carries its own sign.
func (k TransactionKind) IsCredit() bool {
	switch k {
	case KindDeliveryFee, KindBonus, KindTip, KindRefund, KindCompensation:
		return true
	default:
		return false
	}
}

// Signed converts a non-negative amount into the signed delta this kind
// applies to the balance: credits stay positive, withdrawals and fines
// become negative, adjustments pass through unchanged.
func (k TransactionKind) Signed(amount kernel.Money) kernel.Money {
	switch k {
	case KindWithdrawal, KindFine:
		return amount.Neg()
	default:
		return amount
	}
}
