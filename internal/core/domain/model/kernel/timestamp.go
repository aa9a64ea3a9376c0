package kernel

import (
	"fmt"
	"time"

	"campusfood/internal/pkg/errs"
)

// Clock supplies the current time. Commands take a Clock so tests can pin "now".
type Clock func() time.Time

// SystemClock returns the wall clock in UTC.
func SystemClock() time.Time {
	return time.Now().UTC()
}

var zonelessLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// ParseTimestamp reads an ISO-8601 timestamp. Values carrying an offset or
// "Z" are converted to UTC; values without a zone are taken to be UTC.
func ParseTimestamp(paramName, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errs.NewValueIsRequiredError(paramName)
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return NormalizeTime(t), nil
	}
	for _, layout := range zonelessLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return NormalizeTime(t), nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName, fmt.Errorf("%q is not an ISO-8601 timestamp", s))
}

const dateLayout = "2006-01-02"

// ParseRangeBound reads one end of an inclusive time range. A bare date
// covers the whole day: as a lower bound it is midnight UTC, as an upper
// bound the last microsecond of that day. Anything else goes through
// ParseTimestamp.
func ParseRangeBound(paramName, s string, upper bool) (time.Time, error) {
	day, err := time.ParseInLocation(dateLayout, s, time.UTC)
	if err != nil {
		return ParseTimestamp(paramName, s)
	}
	if upper {
		return day.AddDate(0, 0, 1).Add(-time.Microsecond), nil
	}
	return day, nil
}

// NormalizeTime converts t to UTC at microsecond precision, which is what
// both postgres and sqlite round-trip without loss.
func NormalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// FormatTimestamp renders t in UTC as RFC 3339.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
