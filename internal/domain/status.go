package domain

import (
	"fmt"
	"time"
)

// StatusReason explains why a location is open or closed right now
type StatusReason string

const (
	ReasonOpen        StatusReason = "open"
	ReasonClosedToday StatusReason = "closed_today"
	ReasonHoliday     StatusReason = "holiday"
	ReasonClosedHours StatusReason = "closed_hours"
	Reason24h         StatusReason = "24h"
)

// Countdown is a duration until the next open/close transition,
// exposed both as raw seconds and as an hours/minutes breakdown so
// callers can render their own phrasing.
type Countdown struct {
	Seconds int64
	Hours   int
	Minutes int
}

// NewCountdown builds a Countdown from a duration, rounding down to whole minutes
func NewCountdown(d time.Duration) *Countdown {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	return &Countdown{
		Seconds: total,
		Hours:   int(total / 3600),
		Minutes: int(total % 3600 / 60),
	}
}

// String returns a countdown-friendly "Xh Ym" breakdown
func (c *Countdown) String() string {
	if c.Hours > 0 {
		return fmt.Sprintf("%dh %dm", c.Hours, c.Minutes)
	}
	return fmt.Sprintf("%dm", c.Minutes)
}

// OpenStatus is the result of a status evaluation. It is a pure value:
// no identity, recomputed on every call, never stored by the engine.
type OpenStatus struct {
	IsOpen      bool
	Reason      StatusReason
	HolidayName *string
	OpensAt     *string // "09:00" for later today, "Monday 09:00" for another day
	ClosesAt    *string
	ClosesIn    *Countdown
	OpensIn     *Countdown // non-nil only for same-day "opens later today"
	LocalTime   string
	Timezone    string
	TodayHours  string
}
