package list_brands

import (
	"net/http"

	"github.com/AjwadDaiki/isopen-service/internal/api/handlers"
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

// Handle GET /api/v1/brands
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /brands - Failed to list brands: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /brands - Brands listed: count=%d", len(result.Brands))
	handlers.RespondJSON(w, http.StatusOK, result)
}
