package list_brands

import (
	"context"

	"github.com/AjwadDaiki/isopen-service/internal/service/brands/models"
)

type BrandsService interface {
	List(ctx context.Context) (*models.BrandListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
