// Package dateutils provides the date and date-time handling shared by the
// message mappers. ISO 20022 carries dates either as a bare date (Dt) or as a
// date-time (DtTm); both are normalized to timezone-aware instants in UTC.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Layouts for the date shapes seen in ISO 20022 documents.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04:05"
)

// dateTimeLayouts lists the date-time variants banks actually emit: with and
// without zone offset, with and without fractional seconds.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	DateTimeLayout,
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02 15:04:05",
}

// ParseISODate parses a bare YYYY-MM-DD date and returns midnight UTC.
func ParseISODate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("unable to parse date %q: %w", value, err)
	}
	return t.UTC(), nil
}

// ParseISODateTime parses an ISO 8601 date-time, trying zone-qualified layouts
// first. Values without a zone are taken as UTC.
func ParseISODateTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse date-time %q", value)
}

// ParseDateOrDateTime resolves the ISO 20022 date choice: the date-time form is
// preferred when both are present, falling back to the bare date.
func ParseDateOrDateTime(dt, dtTm string) (time.Time, error) {
	if strings.TrimSpace(dtTm) != "" {
		return ParseISODateTime(dtTm)
	}
	if strings.TrimSpace(dt) != "" {
		return ParseISODate(dt)
	}
	return time.Time{}, fmt.Errorf("no date or date-time value present")
}

// FormatDate renders an instant as a bare YYYY-MM-DD date in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatDateTime renders an instant as an ISO 8601 date-time in UTC with an
// explicit Z suffix, the form banks accept most consistently.
func FormatDateTime(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05Z07:00")
}

// HasTimeComponent reports whether the instant carries a non-midnight time.
// Used by exporters to decide between the Dt and DtTm shapes.
func HasTimeComponent(t time.Time) bool {
	u := t.UTC()
	return u.Hour() != 0 || u.Minute() != 0 || u.Second() != 0 || u.Nanosecond() != 0
}
