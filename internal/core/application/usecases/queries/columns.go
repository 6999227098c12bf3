package queries

import (
	"fulfillment/internal/core/domain/model/kernel"
)

// moneyFromColumn converts a numeric column read as text into Money.
func moneyFromColumn(value string) (kernel.Money, error) {
	return kernel.NewMoneyFromString(value)
}
