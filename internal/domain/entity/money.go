package entity

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// Money converts a stored amount to the number sent over the wire.
func Money(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}

// SingleOrderKey is the group key of a sale recorded without an order identifier.
func SingleOrderKey(id uint) string {
	return "single-" + strconv.FormatUint(uint64(id), 10)
}
