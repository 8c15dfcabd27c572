package update_brand_hours

import (
	"context"

	"github.com/AjwadDaiki/isopen-service/internal/service/brands/models"
)

type BrandsService interface {
	UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.WeeklyHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
