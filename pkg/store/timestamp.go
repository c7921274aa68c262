package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// TimestampLayout is the ISO-8601 form written to the record files (UTC, milliseconds)
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Timestamp is a point in time that serializes as an ISO-8601 string
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to milliseconds so the value survives a save/load cycle unchanged
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC().Truncate(time.Millisecond)}
}

func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// MarshalJSON encodes the timestamp as a quoted ISO-8601 string
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// MarshalYAML encodes the timestamp in the same form as the JSON files
func (t Timestamp) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// UnmarshalJSON accepts any RFC 3339 timestamp, with or without fractional seconds
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	*t = NewTimestamp(parsed)
	return nil
}
