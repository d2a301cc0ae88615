// Package models provides the canonical domain model the message mappers
// produce and consume. All types are immutable value objects; construction
// validates the invariants and nothing mutates them afterwards.
package models

import (
	"fmt"

	"github.com/shopspring/decimal"

	"fjacquet/iso20022/internal/currency"
)

// Money is a monetary value held as an integer count of minor currency units
// paired with an ISO 4217 currency code. Amounts are always non-negative;
// direction (credit or debit) is carried separately and never encoded as sign.
type Money struct {
	MinorUnits int64  `json:"minor_units"`
	Currency   string `json:"currency"`
}

// NewMoney creates a Money value from minor units.
func NewMoney(minorUnits int64, currencyCode string) (Money, error) {
	if minorUnits < 0 {
		return Money{}, fmt.Errorf("amount must be non-negative, got %d %s", minorUnits, currencyCode)
	}
	if currencyCode == "" {
		return Money{}, fmt.Errorf("currency code is required")
	}
	return Money{MinorUnits: minorUnits, Currency: currencyCode}, nil
}

// NewMoneyFromDecimalString creates a Money value from a decimal amount string
// as found in a raw document, converting to minor units with the currency's
// table precision.
func NewMoneyFromDecimalString(amount, currencyCode string) (Money, error) {
	if currencyCode == "" {
		return Money{}, fmt.Errorf("currency code is required")
	}
	minorUnits, err := currency.ParseMinorUnits(amount, currencyCode)
	if err != nil {
		return Money{}, err
	}
	return NewMoney(minorUnits, currencyCode)
}

// Decimal returns the amount in major units as a decimal.
func (m Money) Decimal() decimal.Decimal {
	return currency.ToDecimal(m.MinorUnits, m.Currency)
}

// DecimalString formats the amount in major units with the currency's
// canonical precision, the form written back into documents.
func (m Money) DecimalString() string {
	return currency.ToDecimalString(m.MinorUnits, m.Currency)
}

// IsZero reports whether the amount is zero.
func (m Money) IsZero() bool {
	return m.MinorUnits == 0
}

// Equal reports whether two Money values have the same amount and currency.
func (m Money) Equal(other Money) bool {
	return m.MinorUnits == other.MinorUnits && m.Currency == other.Currency
}

// String returns a human-readable representation, e.g. "10.50 USD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.DecimalString(), m.Currency)
}
