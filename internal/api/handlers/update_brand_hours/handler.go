package update_brand_hours

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AjwadDaiki/isopen-service/internal/api/handlers"
	"github.com/AjwadDaiki/isopen-service/internal/service/brands"
)

const (
	msgMissingBrand  = "slug бренда обязателен"
	msgInvalidBody   = "некорректное тело запроса"
	msgInvalidHours  = "некорректное расписание"
	msgMalformedTime = "некорректный формат времени, ожидается HH:MM"
	msgBrandNotFound = "бренд не найден"
)

type Handler struct {
	service BrandsService
	logger  Logger
}

func NewHandler(service BrandsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/brands/{slug}/hours
// Защищённый endpoint - требует X-Admin-Token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("PUT /brands/{slug}/hours - Missing brand slug")
		handlers.RespondBadRequest(w, msgMissingBrand)
		return
	}

	var body UpdateHoursBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.logger.Warn("PUT /brands/{slug}/hours - Invalid body: slug=%s, error=%v", slug, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	result, err := h.service.UpdateHours(r.Context(), ToServiceRequest(slug, &body))
	if err != nil {
		switch {
		case errors.Is(err, brands.ErrBrandNotFound):
			h.logger.Warn("PUT /brands/{slug}/hours - Brand not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBrandNotFound)

		case errors.Is(err, brands.ErrMalformedTime):
			h.logger.Warn("PUT /brands/{slug}/hours - Malformed time: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgMalformedTime)

		case errors.Is(err, brands.ErrInvalidInput):
			h.logger.Warn("PUT /brands/{slug}/hours - Invalid hours: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidHours)

		default:
			h.logger.Error("PUT /brands/{slug}/hours - Failed to update hours: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /brands/{slug}/hours - Hours updated: slug=%s, days=%d", slug, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
