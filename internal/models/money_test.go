package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	m, err := NewMoney(1050, "USD")
	require.NoError(t, err)
	assert.Equal(t, int64(1050), m.MinorUnits)
	assert.Equal(t, "10.50", m.DecimalString())
	assert.Equal(t, "10.50 USD", m.String())
}

func TestNewMoneyRejectsNegative(t *testing.T) {
	_, err := NewMoney(-1, "USD")
	assert.ErrorContains(t, err, "non-negative")
}

func TestNewMoneyRequiresCurrency(t *testing.T) {
	_, err := NewMoney(100, "")
	assert.ErrorContains(t, err, "currency")
}

func TestNewMoneyFromDecimalString(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		currency string
		want     int64
	}{
		{"TwoDecimals", "10.50", "USD", 1050},
		{"SmallestUnit", "0.01", "USD", 1},
		{"ZeroDecimalCurrency", "150", "CLP", 150},
		{"ThreeDecimalCurrency", "1.234", "BHD", 1234},
		{"TruncatesExtraDigits", "10.509", "USD", 1050},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMoneyFromDecimalString(tt.amount, tt.currency)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.MinorUnits)
		})
	}
}

func TestMoneyEqual(t *testing.T) {
	a := Money{MinorUnits: 100, Currency: "EUR"}
	assert.True(t, a.Equal(Money{MinorUnits: 100, Currency: "EUR"}))
	assert.False(t, a.Equal(Money{MinorUnits: 100, Currency: "USD"}))
	assert.False(t, a.Equal(Money{MinorUnits: 101, Currency: "EUR"}))
}
