package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// DayNames maps DayOfWeek (0=Sunday) to its English name.
// Locale-aware day naming is a presentation concern outside the engine.
var DayNames = [7]string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// Fixed labels used in TodayHours
const (
	LabelOpen24Hours = "Open 24 hours"
	LabelClosedToday = "Closed today"
)

// Default configuration values
const (
	DefaultTimezone       = "America/New_York"
	DefaultSearchRadiusKm = 50.0
	DefaultStatusCacheTTL = 30 // seconds
)

// Business validation constants
const (
	MinDayOfWeek       = 0
	MaxDayOfWeek       = 6
	MaxWeeklyEntries   = 7
	MaxHolidayNameLen  = 100
	CoordRoundDecimals = 2 // cache key granularity for coordinates
)
