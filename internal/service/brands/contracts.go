package brands

import (
	"context"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
)

// BrandRepository интерфейс репозитория брендов
type BrandRepository interface {
	GetBySlug(ctx context.Context, slug string) (*domain.Brand, error)
	List(ctx context.Context) ([]*domain.Brand, error)
}

// ScheduleRepository интерфейс репозитория расписаний
type ScheduleRepository interface {
	GetWeeklyByBrand(ctx context.Context, brandID int64) (domain.WeeklySchedule, error)
	ReplaceWeeklyForBrand(ctx context.Context, brandID int64, entries domain.WeeklySchedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
