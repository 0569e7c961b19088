// Package timex provides time helpers shared by the config and storage
// layers: a JSON-friendly Duration and the canonical text encoding used for
// timestamp columns in the local database.
package timex

import (
	"encoding/json"
	"errors"
	"time"
)

// Duration wraps time.Duration so JSON config files can specify intervals
// either as strings like "250ms" or as integer nanoseconds.
type Duration time.Duration

// UnmarshalJSON accepts both a duration string and a bare number.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(parsed)
		return nil
	default:
		return errors.New("invalid duration")
	}
}

// MarshalJSON encodes the duration as a string, e.g. "1.5s".
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }

// Timestamp columns are stored as RFC3339 text with nanosecond precision,
// always in UTC, so that lexicographic order matches chronological order.

// FormatStamp encodes t for storage in a timestamp column.
func FormatStamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// ParseStamp decodes a timestamp column value written by FormatStamp.
func ParseStamp(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}
