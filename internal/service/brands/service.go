package brands

import (
	"context"
	"errors"
	"fmt"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	brandRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/brand"
	"github.com/AjwadDaiki/isopen-service/internal/service/brands/models"
	"github.com/AjwadDaiki/isopen-service/pkg/types"
)

// Service сервис управления брендами и их расписаниями
type Service struct {
	brandRepo    BrandRepository
	scheduleRepo ScheduleRepository
	logger       Logger
}

// NewService создает новый экземпляр сервиса брендов
func NewService(
	brands BrandRepository,
	schedules ScheduleRepository,
	logger Logger,
) *Service {
	return &Service{
		brandRepo:    brands,
		scheduleRepo: schedules,
		logger:       logger,
	}
}

// List возвращает все бренды
// Публичный метод - доступен всем
func (s *Service) List(ctx context.Context) (*models.BrandListResponse, error) {
	s.logger.Info("List: fetching brands")

	brands, err := s.brandRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.BrandListResponse{Brands: make([]models.BrandResponse, len(brands))}
	for i, b := range brands {
		resp.Brands[i] = models.FromDomainBrand(b)
	}

	s.logger.Info("List: fetched %d brands", len(brands))
	return resp, nil
}

// GetHours возвращает недельное расписание бренда
// Публичный метод - доступен всем
func (s *Service) GetHours(ctx context.Context, slug string) (*models.WeeklyHoursResponse, error) {
	s.logger.Info("GetHours: fetching hours for brand=%s", slug)

	brand, err := s.brandRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, brandRepo.ErrBrandNotFound) {
			s.logger.Warn("GetHours: brand %q not found", slug)
			return nil, ErrBrandNotFound
		}
		s.logger.Error("GetHours: failed to get brand %q: %v", slug, err)
		return nil, fmt.Errorf("%w: failed to get brand: %v", ErrInternal, err)
	}

	schedule, err := s.scheduleRepo.GetWeeklyByBrand(ctx, brand.ID)
	if err != nil {
		s.logger.Error("GetHours: failed to load schedule for brand=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: failed to load schedule: %v", ErrInternal, err)
	}

	return &models.WeeklyHoursResponse{
		BrandSlug: brand.Slug,
		Timezone:  brand.Timezone,
		Is24h:     brand.Is24h,
		Days:      models.FromDomainSchedule(schedule),
	}, nil
}

// UpdateHours заменяет недельное расписание бренда.
// Строки HH:MM валидируются здесь, на границе приёма данных, чтобы
// некорректное время никогда не доходило до движка статусов
func (s *Service) UpdateHours(ctx context.Context, req *models.UpdateHoursRequest) (*models.WeeklyHoursResponse, error) {
	s.logger.Info("UpdateHours: updating hours for brand=%s, entries=%d", req.BrandSlug, len(req.Days))

	brand, err := s.brandRepo.GetBySlug(ctx, req.BrandSlug)
	if err != nil {
		if errors.Is(err, brandRepo.ErrBrandNotFound) {
			s.logger.Warn("UpdateHours: brand %q not found", req.BrandSlug)
			return nil, ErrBrandNotFound
		}
		s.logger.Error("UpdateHours: failed to get brand %q: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: failed to get brand: %v", ErrInternal, err)
	}

	schedule, err := toDomainSchedule(req.Days)
	if err != nil {
		s.logger.Warn("UpdateHours: validation failed for brand=%s: %v", req.BrandSlug, err)
		return nil, err
	}

	if err := s.scheduleRepo.ReplaceWeeklyForBrand(ctx, brand.ID, schedule); err != nil {
		s.logger.Error("UpdateHours: repository error for brand=%s: %v", req.BrandSlug, err)
		return nil, fmt.Errorf("%w: UpdateHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateHours: successfully updated hours for brand=%s", req.BrandSlug)
	return &models.WeeklyHoursResponse{
		BrandSlug: brand.Slug,
		Timezone:  brand.Timezone,
		Is24h:     brand.Is24h,
		Days:      models.FromDomainSchedule(schedule),
	}, nil
}

// toDomainSchedule валидирует payload и строит доменное расписание
func toDomainSchedule(days []models.DayHoursPayload) (domain.WeeklySchedule, error) {
	if len(days) > domain.MaxWeeklyEntries {
		return nil, fmt.Errorf("%w: at most %d entries per week", ErrInvalidInput, domain.MaxWeeklyEntries)
	}

	seen := make(map[int]bool, len(days))
	schedule := make(domain.WeeklySchedule, 0, len(days))

	for _, day := range days {
		if day.DayOfWeek < domain.MinDayOfWeek || day.DayOfWeek > domain.MaxDayOfWeek {
			return nil, fmt.Errorf("%w: dayOfWeek must be between 0 and 6", ErrInvalidInput)
		}
		if seen[day.DayOfWeek] {
			return nil, fmt.Errorf("%w: duplicate entry for %s", ErrInvalidInput, domain.DayNames[day.DayOfWeek])
		}
		seen[day.DayOfWeek] = true

		entry := domain.DayHours{
			DayOfWeek:     day.DayOfWeek,
			IsClosed:      day.IsClosed,
			SpansMidnight: day.SpansMidnight,
		}

		if day.OpenTime != nil {
			ts, err := types.NewTimeStringFromString(*day.OpenTime)
			if err != nil {
				return nil, err
			}
			entry.OpenTime = &ts
		}
		if day.CloseTime != nil {
			ts, err := types.NewTimeStringFromString(*day.CloseTime)
			if err != nil {
				return nil, err
			}
			entry.CloseTime = &ts
		}

		// spansMidnight подразумевает закрытие не позже открытия в терминах HH:MM
		if entry.SpansMidnight && entry.OpenTime != nil && entry.CloseTime != nil {
			if entry.CloseTime.IsAfter(*entry.OpenTime) {
				return nil, fmt.Errorf("%w: spansMidnight requires closeTime <= openTime for %s",
					ErrInvalidInput, domain.DayNames[day.DayOfWeek])
			}
		}

		schedule = append(schedule, entry)
	}

	return schedule, nil
}
