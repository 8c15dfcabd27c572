package domain

import "time"

// Brand represents a chain whose hours are tracked by the service
type Brand struct {
	ID        int64
	Slug      string
	Name      string
	Category  string
	Timezone  string // reference timezone for brand-wide pages
	Is24h     bool   // a 24h brand is always open, schedule is ignored
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Location is a single verified establishment of a brand
type Location struct {
	ID        int64
	BrandID   int64
	City      string
	Region    string
	Latitude  float64
	Longitude float64
	Timezone  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoursSource указывает, откуда взято расписание при вычислении статуса
type HoursSource string

const (
	SourceBrand    HoursSource = "brand"    // расписание бренда по умолчанию
	SourceLocation HoursSource = "location" // расписание ближайшей точки
)
