package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

const timeLayout = "15:04"

var (
	// ErrInvalidTimeString is returned for values that are not "HH:MM"
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString represents a wall-clock time of day in "HH:MM" format.
// The zero value ("") means "not set".
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time
func (ts TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(ts)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return nil
}

// IsZero returns true if the value is not set
func (ts TimeString) IsZero() bool {
	return ts == ""
}

// String returns the "HH:MM" representation
func (ts TimeString) String() string {
	return string(ts)
}

// IsBefore returns true if ts is strictly earlier than other
func (ts TimeString) IsBefore(other TimeString) bool {
	a, errA := time.Parse(timeLayout, string(ts))
	b, errB := time.Parse(timeLayout, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.Before(b)
}

// IsAfter returns true if ts is strictly later than other
func (ts TimeString) IsAfter(other TimeString) bool {
	a, errA := time.Parse(timeLayout, string(ts))
	b, errB := time.Parse(timeLayout, string(other))
	if errA != nil || errB != nil {
		return false
	}
	return a.After(b)
}

// AddMinutes returns the time shifted forward by m minutes.
// The result is clamped within the same day ("23:59" + 1 wraps to "00:00").
func (ts TimeString) AddMinutes(m int) (TimeString, error) {
	t, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	return TimeString(t.Add(time.Duration(m) * time.Minute).Format(timeLayout)), nil
}

// MinutesUntil returns the difference other - ts in minutes.
// Negative when other is earlier than ts.
func (ts TimeString) MinutesUntil(other TimeString) (int, error) {
	a, err := time.Parse(timeLayout, string(ts))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(ts))
	}
	b, err := time.Parse(timeLayout, string(other))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(other))
	}
	return int(b.Sub(a) / time.Minute), nil
}

// Value implements driver.Valuer so the type can be written to TIME columns
func (ts TimeString) Value() (driver.Value, error) {
	if ts.IsZero() {
		return nil, nil
	}
	if err := ts.Validate(); err != nil {
		return nil, err
	}
	return string(ts), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive either as
// "HH:MM:SS" strings or as time.Time depending on the driver version.
func (ts *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*ts = ""
		return nil
	case time.Time:
		*ts = NewTimeString(v)
		return nil
	case []byte:
		return ts.scanString(string(v))
	case string:
		return ts.scanString(v)
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (ts *TimeString) scanString(s string) error {
	// Trim seconds ("10:00:00" -> "10:00")
	if parts := strings.Split(s, ":"); len(parts) == 3 {
		s = parts[0] + ":" + parts[1]
	}
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*ts = parsed
	return nil
}
