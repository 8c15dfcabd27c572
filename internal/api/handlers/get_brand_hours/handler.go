package get_brand_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/AjwadDaiki/isopen-service/internal/api/handlers"
	"github.com/AjwadDaiki/isopen-service/internal/service/brands"
)

const (
	msgMissingBrand  = "slug бренда обязателен"
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

// Handle GET /api/v1/brands/{slug}/hours
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /brands/{slug}/hours - Missing brand slug")
		handlers.RespondBadRequest(w, msgMissingBrand)
		return
	}

	result, err := h.service.GetHours(r.Context(), slug)
	if err != nil {
		if errors.Is(err, brands.ErrBrandNotFound) {
			h.logger.Warn("GET /brands/{slug}/hours - Brand not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBrandNotFound)
			return
		}
		h.logger.Error("GET /brands/{slug}/hours - Failed to get hours: slug=%s, error=%v", slug, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /brands/{slug}/hours - Hours retrieved: slug=%s, days=%d", slug, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, result)
}
