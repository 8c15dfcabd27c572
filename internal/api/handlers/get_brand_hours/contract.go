package get_brand_hours

import (
	"context"

	"github.com/AjwadDaiki/isopen-service/internal/service/brands/models"
)

type BrandsService interface {
	GetHours(ctx context.Context, slug string) (*models.WeeklyHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
