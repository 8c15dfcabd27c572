package get_store_status

import (
	"context"
	"time"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	"github.com/AjwadDaiki/isopen-service/internal/integrations/geoip"
)

// BrandRepository интерфейс репозитория брендов
type BrandRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Brand, error)
	GetLocationByID(ctx context.Context, id int64) (*domain.Location, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetWeeklyByBrand(ctx context.Context, brandID int64) (domain.WeeklySchedule, error)
	GetWeeklyByLocation(ctx context.Context, locationID int64) (domain.WeeklySchedule, error)
	// GetHolidayForDate возвращает праздничное закрытие на локальную дату (YYYY-MM-DD)
	GetHolidayForDate(ctx context.Context, brandID int64, date string) (*domain.HolidayOverride, error)
	// GetSpecialHoursForDate возвращает разовое исключение на локальную дату
	GetSpecialHoursForDate(ctx context.Context, brandID int64, locationID *int64, date string) (*domain.DayHours, error)
}

// StatusCache короткоживущий кеш ответов статуса
type StatusCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// GeoIndex гео-индекс точек для поиска ближайшей к координатам
type GeoIndex interface {
	NearestLocationID(ctx context.Context, lat, lon, radiusKm float64) (int64, error)
}

// GeoIPClient клиент для определения координат по IP клиента
type GeoIPClient interface {
	LookupWithGracefulDegradation(ctx context.Context, ip string) (*geoip.Position, error)
}

// Metrics интерфейс метрик вычислений статуса (опционально)
type Metrics interface {
	IncEngineEvaluation(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
