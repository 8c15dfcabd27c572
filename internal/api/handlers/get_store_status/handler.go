package get_store_status

import (
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/AjwadDaiki/isopen-service/internal/api/handlers"
	getStoreStatus "github.com/AjwadDaiki/isopen-service/internal/usecase/get_store_status"
)

const (
	msgMissingBrand    = "slug бренда обязателен"
	msgInvalidCoords   = "некорректные координаты"
	msgInvalidParams   = "некорректные параметры запроса"
	msgInvalidTimezone = "некорректная таймзона"
	msgBrandNotFound   = "бренд не найден"
)

type Handler struct {
	useCase GetStoreStatusUseCase
	logger  Logger
}

func NewHandler(useCase GetStoreStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/brands/{slug}/status
// Query params: tz (опционально), lat/lon (опционально, парой)
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	slug := vars["slug"]
	if slug == "" {
		h.logger.Warn("GET /brands/{slug}/status - Missing brand slug")
		handlers.RespondBadRequest(w, msgMissingBrand)
		return
	}

	query := r.URL.Query()

	// Формируем запрос к use case (с парсингом координат)
	useCaseReq, err := ToUseCaseRequest(
		slug,
		query.Get("tz"),
		query.Get("lat"),
		query.Get("lon"),
		clientIP(r),
	)
	if err != nil {
		h.logger.Warn("GET /brands/{slug}/status - Invalid coordinates: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCoords)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getStoreStatus.ErrBrandNotFound):
			h.logger.Warn("GET /brands/{slug}/status - Brand not found: slug=%s", slug)
			handlers.RespondNotFound(w, msgBrandNotFound)

		case errors.Is(err, getStoreStatus.ErrInvalidInput):
			h.logger.Warn("GET /brands/{slug}/status - Invalid input: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getStoreStatus.ErrInvalidTimezone):
			h.logger.Warn("GET /brands/{slug}/status - Invalid timezone: slug=%s, error=%v", slug, err)
			handlers.RespondBadRequest(w, msgInvalidTimezone)

		default:
			// В том числе ErrMalformedTime: порча данных в расписании - это
			// внутренняя ошибка, а не ошибка клиента
			h.logger.Error("GET /brands/{slug}/status - Failed to compute status: slug=%s, error=%v", slug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /brands/{slug}/status - Status computed: slug=%s, reason=%s, is_open=%t",
		slug, response.Status.Reason, response.Status.IsOpen)
	handlers.RespondJSON(w, http.StatusOK, response)
}

// clientIP извлекает IP клиента: первый адрес из X-Forwarded-For, иначе RemoteAddr
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
