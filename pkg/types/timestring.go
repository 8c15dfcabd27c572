package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrMalformedTime возвращается, когда строка времени не соответствует формату HH:MM
var ErrMalformedTime = errors.New("types: malformed time string, expected HH:MM")

// TimeString represents a wall-clock time of day as a validated "HH:MM" string.
// The zero-padded representation makes lexicographic comparison equivalent to
// chronological comparison.
type TimeString string

// NewTimeString creates a TimeString from a time.Time value
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format("15:04"))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
// Hours must be 00-23 and minutes 00-59; anything else is ErrMalformedTime.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if _, _, err := ts.Clock(); err != nil {
		return "", err
	}
	return ts, nil
}

// Clock returns the hour and minute components.
// Malformed values fail loudly instead of being coerced.
func (t TimeString) Clock() (hour, minute int, err error) {
	s := string(t)
	if len(s) != 5 || s[2] != ':' {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
		}
	}
	hour = int(s[0]-'0')*10 + int(s[1]-'0')
	minute = int(s[3]-'0')*10 + int(s[4]-'0')
	if hour > 23 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return hour, minute, nil
}

// Minutes returns the time of day as minutes since midnight
func (t TimeString) Minutes() (int, error) {
	hour, minute, err := t.Clock()
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// IsBefore reports whether t is chronologically before other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is chronologically after other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// String returns the "HH:MM" representation
func (t TimeString) String() string {
	return string(t)
}
