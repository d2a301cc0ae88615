package currency

import (
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Table resolves currency precisions. The zero value is not usable; obtain one
// from DefaultTable or LoadOverrides.
type Table struct {
	overrides map[string]int32
}

// DefaultTable returns the built-in precision table with no overrides.
func DefaultTable() *Table {
	return &Table{}
}

// LoadOverrides reads a YAML mapping of currency code to precision and returns
// a table that consults it before the built-in entries. The built-in table is
// never mutated; deployments with bank-specific precision quirks get their own
// derived table.
func LoadOverrides(r io.Reader) (*Table, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read precision overrides: %w", err)
	}

	var parsed map[string]int32
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse precision overrides: %w", err)
	}

	overrides := make(map[string]int32, len(parsed))
	for code, p := range parsed {
		if p < 0 || p > 4 {
			return nil, fmt.Errorf("precision override for %s out of range: %d", code, p)
		}
		overrides[strings.ToUpper(code)] = p
	}

	return &Table{overrides: overrides}, nil
}

// Precision returns the minor-unit digit count for a code, consulting the
// override map first.
func (t *Table) Precision(code string) int32 {
	if p, ok := t.overrides[strings.ToUpper(code)]; ok {
		return p
	}
	return Precision(code)
}

// ToMinorUnits converts a decimal amount to minor units using this table's
// precision, truncating toward zero.
func (t *Table) ToMinorUnits(amount decimal.Decimal, code string) int64 {
	return amount.Shift(t.Precision(code)).Truncate(0).IntPart()
}

// ToDecimalString formats minor units using this table's precision.
func (t *Table) ToDecimalString(minorUnits int64, code string) string {
	p := t.Precision(code)
	return decimal.NewFromInt(minorUnits).Shift(-p).StringFixed(p)
}
