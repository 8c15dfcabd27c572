package domain

import "github.com/AjwadDaiki/isopen-service/pkg/types"

// DayHours represents the opening window for a single day of the week.
// A day with IsClosed=false but without both OpenTime and CloseTime is
// treated as closed for that day.
type DayHours struct {
	DayOfWeek     int // 0=Sunday .. 6=Saturday
	OpenTime      *types.TimeString
	CloseTime     *types.TimeString
	IsClosed      bool
	SpansMidnight bool // CloseTime falls on the following calendar day
}

// HasWindow returns true if the day carries a usable open/close window
func (d *DayHours) HasWindow() bool {
	return !d.IsClosed && d.OpenTime != nil && d.CloseTime != nil
}

// WeeklySchedule is the recurring per-day-of-week schedule of a brand or
// location. Fewer than 7 entries is legal; a missing day is closed.
type WeeklySchedule []DayHours

// ByDay returns the entry for the given day of week, or nil if absent
func (s WeeklySchedule) ByDay(dayOfWeek int) *DayHours {
	for i := range s {
		if s[i].DayOfWeek == dayOfWeek {
			return &s[i]
		}
	}
	return nil
}

// HolidayOverride forces the location closed for the current day when
// AffectsAll is set. It does not project into the next-opening search.
type HolidayOverride struct {
	Name       string
	AffectsAll bool
}

// SpecialHours is a one-off replacement for a single date's schedule.
// It takes precedence over both the weekly pattern and holiday rules.
type SpecialHours struct {
	Date  string // YYYY-MM-DD, local to the brand's timezone
	Hours DayHours
}
