package currency

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrecision(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		expected int32
	}{
		{name: "TwoDecimalDefault", code: "USD", expected: 2},
		{name: "TwoDecimalEUR", code: "EUR", expected: 2},
		{name: "ZeroDecimal", code: "VND", expected: 0},
		{name: "ZeroDecimalKRW", code: "KRW", expected: 0},
		{name: "ThreeDecimal", code: "BHD", expected: 3},
		{name: "ThreeDecimalKWD", code: "KWD", expected: 3},
		{name: "UnknownCodeFallsBack", code: "XXX", expected: 2},
		{name: "LowercaseCode", code: "kwd", expected: 3},
		// JPY is zero-decimal per ISO 4217 but this table deliberately
		// declares 2; see the TODO at the table entry.
		{name: "JPYDeclaresTwo", code: "JPY", expected: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Precision(tt.code))
		})
	}
}

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		code     string
		expected int64
	}{
		{name: "SimpleUSD", amount: "10.50", code: "USD", expected: 1050},
		{name: "OneCent", amount: "0.01", code: "USD", expected: 1},
		{name: "JPYUsesTableNotISO", amount: "100000", code: "JPY", expected: 10000000},
		{name: "ZeroDecimalCurrency", amount: "5000", code: "VND", expected: 5000},
		{name: "ThreeDecimalCurrency", amount: "1.234", code: "KWD", expected: 1234},
		{name: "TruncatesNotRounds", amount: "1.999", code: "USD", expected: 199},
		{name: "TruncatesFloatingOvershoot", amount: "0.29", code: "USD", expected: 29},
		{name: "Zero", amount: "0", code: "USD", expected: 0},
		{name: "LargeAmount", amount: "90600.00", code: "EUR", expected: 9060000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ToMinorUnits(d, tt.code))
		})
	}
}

func TestParseMinorUnits(t *testing.T) {
	v, err := ParseMinorUnits("10.50", "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1050), v)

	v, err = ParseMinorUnits(" 1.234 ", "BHD")
	require.NoError(t, err)
	assert.Equal(t, int64(1234), v)

	_, err = ParseMinorUnits("not-a-number", "USD")
	assert.Error(t, err)
}

func TestToDecimalString(t *testing.T) {
	tests := []struct {
		name       string
		minorUnits int64
		code       string
		expected   string
	}{
		{name: "USD", minorUnits: 1050, code: "USD", expected: "10.50"},
		{name: "SingleCent", minorUnits: 1, code: "USD", expected: "0.01"},
		{name: "ZeroDecimalNoPoint", minorUnits: 5000, code: "VND", expected: "5000"},
		{name: "ThreeDecimal", minorUnits: 1234, code: "KWD", expected: "1.234"},
		{name: "EURControlSum", minorUnits: 9060000, code: "EUR", expected: "90600.00"},
		{name: "Zero", minorUnits: 0, code: "USD", expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToDecimalString(tt.minorUnits, tt.code))
		})
	}
}

func TestRoundTripReproducesCanonicalForm(t *testing.T) {
	for _, tc := range []struct {
		amount string
		code   string
	}{
		{"10.50", "USD"},
		{"0.01", "USD"},
		{"1.234", "KWD"},
		{"5000", "VND"},
		{"90600.00", "EUR"},
	} {
		d, err := decimal.NewFromString(tc.amount)
		require.NoError(t, err)

		got := ToDecimalString(ToMinorUnits(d, tc.code), tc.code)
		want := d.StringFixed(Precision(tc.code))
		assert.Equal(t, want, got, "round trip for %s %s", tc.amount, tc.code)
	}
}

func TestLoadOverrides(t *testing.T) {
	table, err := LoadOverrides(strings.NewReader("JPY: 0\nCHF: 2\n"))
	require.NoError(t, err)

	assert.Equal(t, int32(0), table.Precision("JPY"))
	assert.Equal(t, int32(2), table.Precision("CHF"))
	// Non-overridden codes fall through to the built-in table.
	assert.Equal(t, int32(3), table.Precision("KWD"))

	assert.Equal(t, int64(100), table.ToMinorUnits(decimal.NewFromInt(100), "JPY"))
	assert.Equal(t, "100", table.ToDecimalString(100, "JPY"))
}

func TestLoadOverridesRejectsBadInput(t *testing.T) {
	_, err := LoadOverrides(strings.NewReader("JPY: 9"))
	assert.Error(t, err)

	_, err = LoadOverrides(strings.NewReader("{not yaml"))
	assert.Error(t, err)
}
