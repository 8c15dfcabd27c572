package get_store_status

import (
	"strconv"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	getStoreStatus "github.com/AjwadDaiki/isopen-service/internal/usecase/get_store_status"
)

// StatusResponse HTTP response model
type StatusResponse struct {
	Brand  string      `json:"brand"`
	Name   string      `json:"name"`
	Source string      `json:"source"`
	Status BrandStatus `json:"status"`
}

// BrandStatus модель статуса открыто/закрыто
type BrandStatus struct {
	IsOpen      bool       `json:"isOpen"`
	Reason      string     `json:"reason"`
	HolidayName *string    `json:"holidayName,omitempty"`
	OpensAt     *string    `json:"opensAt"`
	ClosesAt    *string    `json:"closesAt"`
	OpensIn     *Countdown `json:"opensIn"`
	ClosesIn    *Countdown `json:"closesIn"`
	LocalTime   string     `json:"localTime"`
	Timezone    string     `json:"timezone"`
	TodayHours  string     `json:"todayHours"`
}

// Countdown длительность до ближайшего перехода
type Countdown struct {
	Seconds int64  `json:"seconds"`
	Label   string `json:"label"` // "2h 15m"
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getStoreStatus.Response) *StatusResponse {
	return &StatusResponse{
		Brand:  resp.BrandSlug,
		Name:   resp.BrandName,
		Source: string(resp.Source),
		Status: BrandStatus{
			IsOpen:      resp.Status.IsOpen,
			Reason:      string(resp.Status.Reason),
			HolidayName: resp.Status.HolidayName,
			OpensAt:     resp.Status.OpensAt,
			ClosesAt:    resp.Status.ClosesAt,
			OpensIn:     fromCountdown(resp.Status.OpensIn),
			ClosesIn:    fromCountdown(resp.Status.ClosesIn),
			LocalTime:   resp.Status.LocalTime,
			Timezone:    resp.Status.Timezone,
			TodayHours:  resp.Status.TodayHours,
		},
	}
}

func fromCountdown(c *domain.Countdown) *Countdown {
	if c == nil {
		return nil
	}
	return &Countdown{
		Seconds: c.Seconds,
		Label:   c.String(),
	}
}

// ToUseCaseRequest создает запрос use case из параметров HTTP запроса
func ToUseCaseRequest(slug, tz, latStr, lonStr, clientIP string) (*getStoreStatus.Request, error) {
	req := &getStoreStatus.Request{
		BrandSlug: slug,
		Timezone:  tz,
		ClientIP:  clientIP,
	}

	if latStr != "" {
		lat, err := strconv.ParseFloat(latStr, 64)
		if err != nil {
			return nil, err
		}
		req.Latitude = &lat
	}
	if lonStr != "" {
		lon, err := strconv.ParseFloat(lonStr, 64)
		if err != nil {
			return nil, err
		}
		req.Longitude = &lon
	}

	return req, nil
}
