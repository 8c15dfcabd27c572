package get_store_status

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	statusCache "github.com/AjwadDaiki/isopen-service/internal/infra/cache/status"
	"github.com/AjwadDaiki/isopen-service/internal/infra/geo"
	brandRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/brand"
	scheduleRepo "github.com/AjwadDaiki/isopen-service/internal/infra/storage/schedule"
	"github.com/AjwadDaiki/isopen-service/internal/integrations/geoip"
	"github.com/AjwadDaiki/isopen-service/pkg/ptr"
)

// ===== Фейки зависимостей =====

type fakeBrandRepo struct {
	brands    map[string]*domain.Brand
	locations map[int64]*domain.Location
}

func (f *fakeBrandRepo) GetBySlug(_ context.Context, slug string) (*domain.Brand, error) {
	if b, ok := f.brands[slug]; ok {
		return b, nil
	}
	return nil, brandRepo.ErrBrandNotFound
}

func (f *fakeBrandRepo) GetLocationByID(_ context.Context, id int64) (*domain.Location, error) {
	if l, ok := f.locations[id]; ok {
		return l, nil
	}
	return nil, brandRepo.ErrLocationNotFound
}

type fakeScheduleRepo struct {
	brandSchedules    map[int64]domain.WeeklySchedule
	locationSchedules map[int64]domain.WeeklySchedule
	holidays          map[string]*domain.HolidayOverride // ключ "brandID|date"
	specials          map[string]*domain.DayHours        // ключ "brandID|date"
}

func (f *fakeScheduleRepo) GetWeeklyByBrand(_ context.Context, brandID int64) (domain.WeeklySchedule, error) {
	return f.brandSchedules[brandID], nil
}

func (f *fakeScheduleRepo) GetWeeklyByLocation(_ context.Context, locationID int64) (domain.WeeklySchedule, error) {
	return f.locationSchedules[locationID], nil
}

func (f *fakeScheduleRepo) GetHolidayForDate(_ context.Context, brandID int64, date string) (*domain.HolidayOverride, error) {
	if h, ok := f.holidays[fmt.Sprintf("%d|%s", brandID, date)]; ok {
		return h, nil
	}
	return nil, scheduleRepo.ErrHolidayNotFound
}

func (f *fakeScheduleRepo) GetSpecialHoursForDate(_ context.Context, brandID int64, _ *int64, date string) (*domain.DayHours, error) {
	if s, ok := f.specials[fmt.Sprintf("%d|%s", brandID, date)]; ok {
		return s, nil
	}
	return nil, scheduleRepo.ErrSpecialHoursNotFound
}

type fakeCache struct {
	store map[string][]byte
	sets  int
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: make(map[string][]byte)}
}

func (f *fakeCache) Get(_ context.Context, key string) ([]byte, error) {
	if v, ok := f.store[key]; ok {
		return v, nil
	}
	return nil, statusCache.ErrCacheMiss
}

func (f *fakeCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.store[key] = value
	f.sets++
	return nil
}

type fakeGeoIndex struct {
	locationID int64
	err        error
	calls      int
}

func (f *fakeGeoIndex) NearestLocationID(_ context.Context, _, _, _ float64) (int64, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	return f.locationID, nil
}

type fakeGeoIP struct {
	pos *geoip.Position
	err error
}

func (f *fakeGeoIP) LookupWithGracefulDegradation(_ context.Context, _ string) (*geoip.Position, error) {
	return f.pos, f.err
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// ===== Фикстуры =====

func testBrand() *domain.Brand {
	return &domain.Brand{
		ID:       1,
		Slug:     "mcdonalds",
		Name:     "McDonald's",
		Category: "fast-food",
		Timezone: testTimezone,
	}
}

func newTestUseCase(
	brands *fakeBrandRepo,
	schedules *fakeScheduleRepo,
	cache StatusCache,
	geoIndex GeoIndex,
	geoipClient GeoIPClient,
	now time.Time,
) *UseCase {
	uc := NewUseCase(
		brands, schedules, cache, geoIndex, geoipClient,
		50, testTimezone, 30*time.Second, nil, nopLogger{},
	)
	uc.timeProvider = &fixedTimeProvider{now: now}
	return uc
}

// ===== Тесты =====

func TestExecuteBrandScheduleHappyPath(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
	}
	cache := newFakeCache()

	// Среда 12:00 по Нью-Йорку
	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, cache, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BrandSlug: brand.Slug})
	require.NoError(t, err)

	assert.Equal(t, brand.Slug, resp.BrandSlug)
	assert.Equal(t, brand.Name, resp.BrandName)
	assert.Equal(t, domain.SourceBrand, resp.Source)
	require.NotNil(t, resp.Status)
	assert.True(t, resp.Status.IsOpen)
	assert.Equal(t, domain.ReasonOpen, resp.Status.Reason)
	assert.Equal(t, testTimezone, resp.Status.Timezone)

	// Ответ должен попасть в кеш
	assert.Equal(t, 1, cache.sets)
}

func TestExecuteBrandNotFound(t *testing.T) {
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{}}
	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, &fakeScheduleRepo{}, nil, nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{BrandSlug: "ghost"})
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestExecuteValidation(t *testing.T) {
	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(&fakeBrandRepo{}, &fakeScheduleRepo{}, nil, nil, nil, now)

	t.Run("missing slug", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("latitude without longitude", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			BrandSlug: "mcdonalds",
			Latitude:  ptr.Ptr(40.7),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), &Request{
			BrandSlug: "mcdonalds",
			Latitude:  ptr.Ptr(91.0),
			Longitude: ptr.Ptr(0.0),
		})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}

func TestExecuteCacheHitSkipsComputation(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	cache := newFakeCache()

	cached := &Response{
		BrandSlug: brand.Slug,
		BrandName: brand.Name,
		Source:    domain.SourceBrand,
		Status:    &domain.OpenStatus{IsOpen: true, Reason: domain.ReasonOpen, Timezone: testTimezone},
	}
	data, err := json.Marshal(cached)
	require.NoError(t, err)
	key := buildCacheKey(brand.Slug, testTimezone, nil, nil, domain.SourceBrand)
	cache.store[key] = data

	// Расписания в репозитории нет вообще - при промахе кеша ответ был бы closed_today
	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, &fakeScheduleRepo{}, cache, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BrandSlug: brand.Slug})
	require.NoError(t, err)

	assert.True(t, resp.Status.IsOpen)
	assert.Equal(t, domain.ReasonOpen, resp.Status.Reason)
	assert.Equal(t, 0, cache.sets)
}

func TestExecuteNearestLocationOverridesBrandSchedule(t *testing.T) {
	brand := testBrand()
	location := &domain.Location{
		ID:       42,
		BrandID:  brand.ID,
		City:     "Chicago",
		Timezone: "America/Chicago",
	}
	brands := &fakeBrandRepo{
		brands:    map[string]*domain.Brand{brand.Slug: brand},
		locations: map[int64]*domain.Location{location.ID: location},
	}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nil},
		locationSchedules: map[int64]domain.WeeklySchedule{
			location.ID: nineToFiveWeek(),
		},
	}
	geoIndex := &fakeGeoIndex{locationID: location.ID}

	// 12:00 по Чикаго = 13:00 по Нью-Йорку
	chi, err := time.LoadLocation("America/Chicago")
	require.NoError(t, err)
	now := time.Date(2025, time.January, 15, 12, 0, 0, 0, chi)

	uc := newTestUseCase(brands, schedules, nil, geoIndex, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		Latitude:  ptr.Ptr(41.88),
		Longitude: ptr.Ptr(-87.63),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceLocation, resp.Source)
	// Таймзона точки выигрывает, когда запрос её не задал
	assert.Equal(t, "America/Chicago", resp.Status.Timezone)
	assert.Equal(t, "12:00", resp.Status.LocalTime)
	assert.True(t, resp.Status.IsOpen)
	assert.Equal(t, 1, geoIndex.calls)
}

func TestExecuteForeignLocationFallsBackToBrand(t *testing.T) {
	brand := testBrand()
	foreign := &domain.Location{ID: 99, BrandID: 777, Timezone: "America/Chicago"}
	brands := &fakeBrandRepo{
		brands:    map[string]*domain.Brand{brand.Slug: brand},
		locations: map[int64]*domain.Location{foreign.ID: foreign},
	}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
	}
	geoIndex := &fakeGeoIndex{locationID: foreign.ID}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, geoIndex, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		Latitude:  ptr.Ptr(40.7),
		Longitude: ptr.Ptr(-74.0),
	})
	require.NoError(t, err)

	// Точка чужого бренда игнорируется
	assert.Equal(t, domain.SourceBrand, resp.Source)
	assert.Equal(t, testTimezone, resp.Status.Timezone)
}

func TestExecuteNoLocationsInRadiusFallsBackToBrand(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
	}
	geoIndex := &fakeGeoIndex{err: geo.ErrNoLocationsFound}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, geoIndex, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		Latitude:  ptr.Ptr(40.7),
		Longitude: ptr.Ptr(-74.0),
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceBrand, resp.Source)
	assert.True(t, resp.Status.IsOpen)
}

func TestExecuteGeoIPSuppliesCoordinates(t *testing.T) {
	brand := testBrand()
	location := &domain.Location{ID: 7, BrandID: brand.ID, Timezone: testTimezone}
	brands := &fakeBrandRepo{
		brands:    map[string]*domain.Brand{brand.Slug: brand},
		locations: map[int64]*domain.Location{location.ID: location},
	}
	schedules := &fakeScheduleRepo{
		locationSchedules: map[int64]domain.WeeklySchedule{location.ID: nineToFiveWeek()},
	}
	geoIndex := &fakeGeoIndex{locationID: location.ID}
	geoipClient := &fakeGeoIP{pos: &geoip.Position{Latitude: 40.7, Longitude: -74.0}}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, geoIndex, geoipClient, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		ClientIP:  "203.0.113.7",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SourceLocation, resp.Source)
	assert.Equal(t, 1, geoIndex.calls)
}

func TestExecuteGeoIPFailureDegradesGracefully(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
	}
	geoIndex := &fakeGeoIndex{locationID: 1}
	geoipClient := &fakeGeoIP{err: geoip.ErrServiceDegraded}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, geoIndex, geoipClient, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		ClientIP:  "203.0.113.7",
	})
	require.NoError(t, err)

	// Без координат гео-поиск не выполняется
	assert.Equal(t, 0, geoIndex.calls)
	assert.Equal(t, domain.SourceBrand, resp.Source)
}

func TestExecuteHolidayApplied(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
		holidays: map[string]*domain.HolidayOverride{
			"1|2025-01-15": {Name: "Christmas", AffectsAll: true},
		},
	}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BrandSlug: brand.Slug})
	require.NoError(t, err)

	assert.False(t, resp.Status.IsOpen)
	assert.Equal(t, domain.ReasonHoliday, resp.Status.Reason)
	require.NotNil(t, resp.Status.HolidayName)
	assert.Equal(t, "Christmas", *resp.Status.HolidayName)
}

func TestExecuteSpecialHoursApplied(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
		holidays: map[string]*domain.HolidayOverride{
			"1|2025-01-15": {Name: "Christmas", AffectsAll: true},
		},
		specials: map[string]*domain.DayHours{
			"1|2025-01-15": {DayOfWeek: 3, OpenTime: ts("10:00"), CloseTime: ts("14:00")},
		},
	}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{BrandSlug: brand.Slug})
	require.NoError(t, err)

	// Разовое исключение перекрывает праздник
	assert.True(t, resp.Status.IsOpen)
	require.NotNil(t, resp.Status.ClosesAt)
	assert.Equal(t, "14:00", *resp.Status.ClosesAt)
}

func TestExecuteRequestTimezoneWins(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
	}

	// 17:00 UTC = 09:00 по Лос-Анджелесу (зимнее время)
	utc, err := time.LoadLocation("UTC")
	require.NoError(t, err)
	now := time.Date(2025, time.January, 15, 17, 0, 0, 0, utc)

	uc := newTestUseCase(brands, schedules, nil, nil, nil, now)

	resp, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		Timezone:  "America/Los_Angeles",
	})
	require.NoError(t, err)

	assert.Equal(t, "America/Los_Angeles", resp.Status.Timezone)
	assert.Equal(t, "09:00", resp.Status.LocalTime)
}

func TestExecuteInvalidRequestTimezone(t *testing.T) {
	brand := testBrand()
	brands := &fakeBrandRepo{brands: map[string]*domain.Brand{brand.Slug: brand}}
	schedules := &fakeScheduleRepo{
		brandSchedules: map[int64]domain.WeeklySchedule{brand.ID: nineToFiveWeek()},
	}

	now := nyTime(t, 2025, time.January, 15, 12, 0)
	uc := newTestUseCase(brands, schedules, nil, nil, nil, now)

	_, err := uc.Execute(context.Background(), &Request{
		BrandSlug: brand.Slug,
		Timezone:  "Not/A_Zone",
	})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t,
		"store_status_v1:mcdonalds|America/New_York|-|brand",
		buildCacheKey("mcdonalds", testTimezone, nil, nil, domain.SourceBrand),
	)
	assert.Equal(t,
		"store_status_v1:mcdonalds|America/Chicago|41.88,-87.63|location",
		buildCacheKey("mcdonalds", "America/Chicago", ptr.Ptr(41.881), ptr.Ptr(-87.629), domain.SourceLocation),
	)
}
