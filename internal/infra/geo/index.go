package geo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
)

const (
	locationsGeoKey      = "brand_locations_geo_v1"
	locationMemberFormat = "location_v1:%d"
	locationMemberPrefix = "location_v1:"
)

// Index гео-индекс точек брендов поверх redis GEO команд.
// Наполняется из Postgres при старте сервиса
type Index struct {
	client *redis.Client
}

// NewIndex создает гео-индекс точек
func NewIndex(client *redis.Client) *Index {
	return &Index{client: client}
}

// AddLocation добавляет точку в гео-индекс (идемпотентно)
func (i *Index) AddLocation(ctx context.Context, loc *domain.Location) error {
	member := fmt.Sprintf(locationMemberFormat, loc.ID)
	err := i.client.GeoAdd(ctx, locationsGeoKey, &redis.GeoLocation{
		Name:      member,
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	}).Err()
	if err != nil {
		return fmt.Errorf("%w: geoadd %s: %v", ErrIndexUnavailable, member, err)
	}
	return nil
}

// NearestLocationID возвращает ID ближайшей точки в радиусе radiusKm
// или ErrNoLocationsFound, если радиус пуст
func (i *Index) NearestLocationID(ctx context.Context, lat, lon, radiusKm float64) (int64, error) {
	results, err := i.client.GeoRadius(ctx, locationsGeoKey, lon, lat, &redis.GeoRadiusQuery{
		Radius: radiusKm,
		Unit:   "km",
		Sort:   "ASC",
		Count:  1,
	}).Result()
	if err != nil {
		return 0, fmt.Errorf("%w: georadius: %v", ErrIndexUnavailable, err)
	}
	if len(results) == 0 {
		return 0, ErrNoLocationsFound
	}

	idStr := strings.TrimPrefix(results[0].Name, locationMemberPrefix)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrBadMember, results[0].Name, err)
	}

	return id, nil
}
