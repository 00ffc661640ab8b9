package entities

import (
	"errors"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned when an amount cannot be expressed in minor units.
var ErrInvalidAmount = errors.New("invalid amount")

// MinorUnitDigits is the number of fractional digits the processor expects.
//
// Only two-decimal currencies are supported: the conversion below never looks
// at currency metadata, so zero- and three-decimal currencies must not be sent.
const MinorUnitDigits = 2

// ParseAmount parses a decimal amount such as "10.50".
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAmount
	}
	return d, nil
}

// ToMinorUnits converts an amount to the processor's integer minor-unit form.
//
// The amount is rendered with exactly two fractional digits and the decimal
// separator is dropped (10.50 -> 1050, 0.01 -> 1). Negative amounts and
// amounts carrying sub-cent precision are rejected instead of rounded.
func ToMinorUnits(amount decimal.Decimal) (int64, error) {
	if amount.IsNegative() {
		return 0, ErrInvalidAmount
	}
	if !amount.Equal(amount.Truncate(MinorUnitDigits)) {
		return 0, ErrInvalidAmount
	}

	text := strings.Replace(amount.StringFixed(MinorUnitDigits), ".", "", 1)
	minor, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	return minor, nil
}
