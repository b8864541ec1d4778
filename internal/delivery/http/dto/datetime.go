package dto

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// dateTimeLayout is the wire format for timestamps: local ISO-8601 without
// a zone offset, seconds precision.
const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime marshals as ISO-8601 without a zone offset. Fractional seconds
// are accepted on input and dropped on output.
type DateTime time.Time

// NewDateTime wraps a time.Time for the wire.
func NewDateTime(t time.Time) DateTime {
	return DateTime(t)
}

// Time unwraps the underlying time.Time.
func (d DateTime) Time() time.Time {
	return time.Time(d)
}

// MarshalJSON implements json.Marshaler.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateTimeLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateTime) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}

	for _, layout := range []string{dateTimeLayout, "2006-01-02T15:04:05.999999999", time.RFC3339} {
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			*d = DateTime(t)

			return nil
		}
	}

	return errors.Errorf("cannot parse %q as date-time", raw)
}
