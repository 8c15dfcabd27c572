package get_store_status

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	statusCache "github.com/AjwadDaiki/isopen-service/internal/infra/cache/status"
	"github.com/AjwadDaiki/isopen-service/internal/infra/geo"
	brandRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/brand"
	scheduleRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/schedule"
)

// UseCase use case вычисления статуса открыто/закрыто для бренда
type UseCase struct {
	brandRepo       BrandRepository
	scheduleRepo    ScheduleRepository
	cache           StatusCache
	geoIndex        GeoIndex
	geoipClient     GeoIPClient
	timeProvider    TimeProvider
	metrics         Metrics
	logger          Logger
	searchRadiusKm  float64
	defaultTimezone string
	cacheTTL        time.Duration
}

// NewUseCase создает новый экземпляр use case.
// cache, geoIndex, geoipClient и metrics опциональны (nil отключает соответствующий шаг)
func NewUseCase(
	brands BrandRepository,
	schedules ScheduleRepository,
	cache StatusCache,
	geoIndex GeoIndex,
	geoipClient GeoIPClient,
	searchRadiusKm float64,
	defaultTimezone string,
	cacheTTL time.Duration,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if searchRadiusKm <= 0 {
		searchRadiusKm = domain.DefaultSearchRadiusKm
	}
	if defaultTimezone == "" {
		defaultTimezone = domain.DefaultTimezone
	}
	return &UseCase{
		brandRepo:       brands,
		scheduleRepo:    schedules,
		cache:           cache,
		geoIndex:        geoIndex,
		geoipClient:     geoipClient,
		timeProvider:    &RealTimeProvider{},
		metrics:         metrics,
		logger:          logger,
		searchRadiusKm:  searchRadiusKm,
		defaultTimezone: defaultTimezone,
		cacheTTL:        cacheTTL,
	}
}

// Execute выполняет use case получения статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetStoreStatus: brand=%s, tz=%q, has_coords=%t",
		req.BrandSlug, req.Timezone, req.Latitude != nil)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetStoreStatus: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Получаем бренд
	brand, err := uc.brandRepo.GetBySlug(ctx, req.BrandSlug)
	if err != nil {
		if errors.Is(err, brandRepo.ErrBrandNotFound) {
			uc.logger.Warn("GetStoreStatus: brand %q not found", req.BrandSlug)
			return nil, ErrBrandNotFound
		}
		uc.logger.Error("GetStoreStatus: failed to get brand %q: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: failed to get brand: %v", ErrInternal, err)
	}

	// 3. Координаты: явные из запроса, иначе по IP клиента.
	// Недоступность geoip не ломает запрос - остаёмся без координат
	lat, lon := req.Latitude, req.Longitude
	if lat == nil && uc.geoipClient != nil && req.ClientIP != "" {
		pos, err := uc.geoipClient.LookupWithGracefulDegradation(ctx, req.ClientIP)
		if err != nil {
			uc.logger.Warn("GetStoreStatus: geoip lookup skipped for brand=%s: %v", req.BrandSlug, err)
		} else {
			lat, lon = &pos.Latitude, &pos.Longitude
		}
	}

	// 4. Ближайшая точка бренда по координатам
	source := domain.SourceBrand
	timezone := req.Timezone
	var locationID *int64

	if lat != nil && lon != nil && uc.geoIndex != nil {
		locID, err := uc.geoIndex.NearestLocationID(ctx, *lat, *lon, uc.searchRadiusKm)
		switch {
		case err == nil:
			location, lerr := uc.brandRepo.GetLocationByID(ctx, locID)
			if lerr != nil {
				uc.logger.Warn("GetStoreStatus: nearest location id=%d not resolvable: %v", locID, lerr)
			} else if location.BrandID == brand.ID {
				locationID = &locID
				source = domain.SourceLocation
				if timezone == "" {
					timezone = location.Timezone
				}
			}
		case errors.Is(err, geo.ErrNoLocationsFound):
			// в радиусе ничего нет - используем расписание бренда
		default:
			uc.logger.Warn("GetStoreStatus: geo search failed, falling back to brand hours: %v", err)
		}
	}

	// 5. Итоговая таймзона: запрос > точка > бренд > дефолт
	if timezone == "" {
		timezone = brand.Timezone
	}
	if timezone == "" {
		timezone = uc.defaultTimezone
	}

	// 6. Кеш ответа (короткий TTL, ключ учитывает источник расписания)
	cacheKey := buildCacheKey(brand.Slug, timezone, lat, lon, source)
	if uc.cache != nil {
		if data, err := uc.cache.Get(ctx, cacheKey); err == nil {
			var cached Response
			if uerr := json.Unmarshal(data, &cached); uerr != nil {
				uc.logger.Warn("GetStoreStatus: failed to unmarshal cached response: %v", uerr)
			} else {
				uc.logger.Info("GetStoreStatus: cache hit for %s", cacheKey)
				return &cached, nil
			}
		} else if !errors.Is(err, statusCache.ErrCacheMiss) {
			uc.logger.Warn("GetStoreStatus: cache get failed: %v", err)
		}
	}

	// 7. Локальная дата для поиска праздников и разовых исключений
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		uc.logger.Warn("GetStoreStatus: invalid timezone %q: %v", timezone, err)
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTimezone, timezone, err)
	}
	localDate := now.In(loc).Format(domain.DateFormat)

	// 8. Недельное расписание: точки или бренда
	var schedule domain.WeeklySchedule
	if locationID != nil {
		schedule, err = uc.scheduleRepo.GetWeeklyByLocation(ctx, *locationID)
	} else {
		schedule, err = uc.scheduleRepo.GetWeeklyByBrand(ctx, brand.ID)
	}
	if err != nil {
		uc.logger.Error("GetStoreStatus: failed to load schedule for brand=%s: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	// 9. Праздничное закрытие на сегодня
	holiday, err := uc.scheduleRepo.GetHolidayForDate(ctx, brand.ID, localDate)
	if err != nil && !errors.Is(err, scheduleRepo.ErrHolidayNotFound) {
		uc.logger.Error("GetStoreStatus: failed to load holiday for brand=%s: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: failed to load holiday: %v", ErrInternal, err)
	}

	// 10. Разовое исключение на сегодня
	special, err := uc.scheduleRepo.GetSpecialHoursForDate(ctx, brand.ID, locationID, localDate)
	if err != nil && !errors.Is(err, scheduleRepo.ErrSpecialHoursNotFound) {
		uc.logger.Error("GetStoreStatus: failed to load special hours for brand=%s: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: failed to load special hours: %v", ErrInternal, err)
	}

	// 11. Вычисляем статус
	status, err := computeOpenStatus(schedule, timezone, brand.Is24h, holiday, special, now)
	if err != nil {
		if errors.Is(err, ErrInvalidTimezone) || errors.Is(err, ErrMalformedTime) {
			uc.logger.Warn("GetStoreStatus: engine rejected input for brand=%s: %v", req.BrandSlug, err)
			return nil, err
		}
		uc.logger.Error("GetStoreStatus: engine failed for brand=%s: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: status computation failed: %v", ErrInternal, err)
	}
	if uc.metrics != nil {
		uc.metrics.IncEngineEvaluation(string(status.Reason))
	}

	resp := &Response{
		BrandSlug: brand.Slug,
		BrandName: brand.Name,
		Source:    source,
		Status:    status,
	}

	// 12. Кладём ответ в кеш (best effort)
	if uc.cache != nil && uc.cacheTTL > 0 {
		if data, merr := json.Marshal(resp); merr == nil {
			if serr := uc.cache.Set(ctx, cacheKey, data, uc.cacheTTL); serr != nil {
				uc.logger.Warn("GetStoreStatus: cache set failed: %v", serr)
			}
		}
	}

	uc.logger.Info("GetStoreStatus: brand=%s, source=%s, reason=%s, is_open=%t",
		brand.Slug, source, status.Reason, status.IsOpen)

	return resp, nil
}

// buildCacheKey строит ключ кеша: бренд, таймзона, округлённые координаты, источник
func buildCacheKey(slug, timezone string, lat, lon *float64, source domain.HoursSource) string {
	coords := "-"
	if lat != nil && lon != nil {
		coords = fmt.Sprintf("%.2f,%.2f", *lat, *lon)
	}
	return fmt.Sprintf("store_status_v1:%s|%s|%s|%s", slug, timezone, coords, source)
}
