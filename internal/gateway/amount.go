package gateway

import "github.com/shopspring/decimal"

// ToMinorUnits converts a major-unit price into the integer amount the
// processor bills, rounding half away from zero: 0.125 becomes 13 and 1.005
// becomes 101. Every currency is treated as having two decimal places. price
// must already have passed CheckoutSessionRequest.Validate, which bounds it by
// models.MaxUnitAmount so the result fits in an int64.
func ToMinorUnits(price decimal.Decimal) int64 {
	return price.Shift(2).Round(0).IntPart()
}
