package dateutils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISODate(t *testing.T) {
	parsed, err := ParseISODate("2023-04-15")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), parsed)

	parsed, err = ParseISODate(" 2023-04-15 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseISODate("15.04.2023")
	assert.Error(t, err)
}

func TestParseISODateTime(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected time.Time
	}{
		{
			name:     "WithZuluZone",
			value:    "2023-04-15T10:30:00Z",
			expected: time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "WithOffset",
			value:    "2023-04-15T10:30:00+02:00",
			expected: time.Date(2023, 4, 15, 8, 30, 0, 0, time.UTC),
		},
		{
			name:     "WithoutZone",
			value:    "2023-04-15T10:30:00",
			expected: time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "WithFractionalSeconds",
			value:    "2023-04-15T10:30:00.123Z",
			expected: time.Date(2023, 4, 15, 10, 30, 0, 123000000, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseISODateTime(tt.value)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(parsed), "got %v", parsed)
		})
	}

	_, err := ParseISODateTime("tomorrow")
	assert.Error(t, err)
}

func TestParseDateOrDateTime(t *testing.T) {
	// Date-time wins when both are present.
	parsed, err := ParseDateOrDateTime("2023-04-15", "2023-04-15T10:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, 10, parsed.Hour())

	parsed, err = ParseDateOrDateTime("2023-04-15", "")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, err = ParseDateOrDateTime("", "")
	assert.Error(t, err)
}

func TestFormatting(t *testing.T) {
	instant := time.Date(2023, 4, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "2023-04-15", FormatDate(instant))
	assert.Equal(t, "2023-04-15T10:30:00Z", FormatDateTime(instant))

	// Non-UTC input is normalized.
	zurich := time.FixedZone("CEST", 2*60*60)
	assert.Equal(t, "2023-04-15T08:30:00Z", FormatDateTime(time.Date(2023, 4, 15, 10, 30, 0, 0, zurich)))
}

func TestHasTimeComponent(t *testing.T) {
	assert.False(t, HasTimeComponent(time.Date(2023, 4, 15, 0, 0, 0, 0, time.UTC)))
	assert.True(t, HasTimeComponent(time.Date(2023, 4, 15, 0, 0, 1, 0, time.UTC)))
}
