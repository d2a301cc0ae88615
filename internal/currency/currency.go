// Package currency provides the ISO 4217 minor-unit precision table and the
// conversion between decimal amount strings and integer minor-unit amounts.
package currency

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultPrecision is used for any currency code not present in the table.
const DefaultPrecision = 2

// precisions maps ISO 4217 currency codes to their minor-unit digit count.
// Only codes that differ from DefaultPrecision need an entry.
var precisions = map[string]int32{
	// Zero-decimal currencies
	"BIF": 0,
	"CLP": 0,
	"DJF": 0,
	"GNF": 0,
	"ISK": 0,
	"KMF": 0,
	"KRW": 0,
	"PYG": 0,
	"RWF": 0,
	"UGX": 0,
	"UYI": 0,
	"VND": 0,
	"VUV": 0,
	"XAF": 0,
	"XOF": 0,
	"XPF": 0,

	// Three-decimal currencies
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,

	// TODO: figure out why JPY has a precision of 2. ISO 4217 declares it
	// zero-decimal, but amounts already serialized against this table carry
	// two fractional digits, so changing it breaks existing files.
	"JPY": 2,
}

// Precision returns the number of minor-unit digits for a currency code.
// Unknown codes fall back to DefaultPrecision.
func Precision(code string) int32 {
	if p, ok := precisions[strings.ToUpper(code)]; ok {
		return p
	}
	return DefaultPrecision
}

// ToMinorUnits converts a decimal amount to an integer count of minor units
// for the given currency. The scaled value is truncated toward zero rather
// than rounded so that re-serialization can never manufacture money.
func ToMinorUnits(amount decimal.Decimal, code string) int64 {
	scaled := amount.Shift(Precision(code))
	return scaled.Truncate(0).IntPart()
}

// ParseMinorUnits converts a decimal amount string, as found in an XML or
// JSON document, to minor units.
func ParseMinorUnits(amount, code string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return ToMinorUnits(d, code), nil
}

// ToDecimal converts minor units back to a decimal amount in major units.
func ToDecimal(minorUnits int64, code string) decimal.Decimal {
	return decimal.NewFromInt(minorUnits).Shift(-Precision(code))
}

// ToDecimalString formats minor units as a decimal amount string with exactly
// the currency's precision in fractional digits. Zero-precision currencies are
// formatted without a decimal point.
func ToDecimalString(minorUnits int64, code string) string {
	return ToDecimal(minorUnits, code).StringFixed(Precision(code))
}
