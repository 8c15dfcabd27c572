package models

import (
	"github.com/AjwadDaiki/isopen-service/internal/domain"
)

// BrandResponse краткая информация о бренде
type BrandResponse struct {
	Slug     string `json:"slug"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Timezone string `json:"timezone"`
	Is24h    bool   `json:"is24h"`
}

// BrandListResponse список брендов
type BrandListResponse struct {
	Brands []BrandResponse `json:"brands"`
}

// DayHoursPayload запись расписания на один день недели
type DayHoursPayload struct {
	DayOfWeek     int     `json:"dayOfWeek"` // 0=Sunday .. 6=Saturday
	OpenTime      *string `json:"openTime"`
	CloseTime     *string `json:"closeTime"`
	IsClosed      bool    `json:"isClosed"`
	SpansMidnight bool    `json:"spansMidnight"`
}

// WeeklyHoursResponse недельное расписание бренда
type WeeklyHoursResponse struct {
	BrandSlug string            `json:"brandSlug"`
	Timezone  string            `json:"timezone"`
	Is24h     bool              `json:"is24h"`
	Days      []DayHoursPayload `json:"days"`
}

// UpdateHoursRequest запрос на замену недельного расписания бренда
type UpdateHoursRequest struct {
	BrandSlug string
	Days      []DayHoursPayload
}

// FromDomainBrand конвертирует доменный бренд в ответ сервиса
func FromDomainBrand(b *domain.Brand) BrandResponse {
	return BrandResponse{
		Slug:     b.Slug,
		Name:     b.Name,
		Category: b.Category,
		Timezone: b.Timezone,
		Is24h:    b.Is24h,
	}
}

// FromDomainSchedule конвертирует доменное расписание в payload
func FromDomainSchedule(schedule domain.WeeklySchedule) []DayHoursPayload {
	days := make([]DayHoursPayload, len(schedule))
	for i, entry := range schedule {
		days[i] = DayHoursPayload{
			DayOfWeek:     entry.DayOfWeek,
			IsClosed:      entry.IsClosed,
			SpansMidnight: entry.SpansMidnight,
		}
		if entry.OpenTime != nil {
			s := entry.OpenTime.String()
			days[i].OpenTime = &s
		}
		if entry.CloseTime != nil {
			s := entry.CloseTime.String()
			days[i].CloseTime = &s
		}
	}
	return days
}
