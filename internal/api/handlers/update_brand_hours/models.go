package update_brand_hours

import (
	"github.com/AjwadDaiki/isopen-service/internal/service/brands/models"
)

// UpdateHoursBody тело запроса на замену недельного расписания
type UpdateHoursBody struct {
	Days []models.DayHoursPayload `json:"days"`
}

// ToServiceRequest формирует запрос к сервису из URL и тела запроса
func ToServiceRequest(slug string, body *UpdateHoursBody) *models.UpdateHoursRequest {
	return &models.UpdateHoursRequest{
		BrandSlug: slug,
		Days:      body.Days,
	}
}
