package brand

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	"github.com/AjwadDaiki/isopen-service/pkg/psqlbuilder"
)

// Repository репозиторий брендов и их точек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория брендов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetBySlug получает бренд по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Brand, error) {
	query, args, err := psqlbuilder.Select(
		"id", "slug", "name", "category", "timezone", "is_24h", "created_at", "updated_at",
	).
		From("brands").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	return scanBrand(row)
}

// List возвращает все бренды, отсортированные по slug
func (r *Repository) List(ctx context.Context) ([]*domain.Brand, error) {
	query, args, err := psqlbuilder.Select(
		"id", "slug", "name", "category", "timezone", "is_24h", "created_at", "updated_at",
	).
		From("brands").
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	brands := make([]*domain.Brand, 0)
	for rows.Next() {
		var b domain.Brand
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&b.ID, &b.Slug, &b.Name, &b.Category, &b.Timezone, &b.Is24h,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		brands = append(brands, &b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return brands, nil
}

// GetLocationByID получает точку по ID
func (r *Repository) GetLocationByID(ctx context.Context, id int64) (*domain.Location, error) {
	query, args, err := psqlbuilder.Select(
		"id", "brand_id", "city", "region", "latitude", "longitude", "timezone", "created_at", "updated_at",
	).
		From("brand_locations").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocationByID - build select query: %v", ErrBuildQuery, err)
	}

	var loc domain.Location
	var createdAt, updatedAt sql.NullTime
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&loc.ID, &loc.BrandID, &loc.City, &loc.Region,
		&loc.Latitude, &loc.Longitude, &loc.Timezone,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLocationByID - scan location: %v", ErrScanRow, err)
	}
	loc.CreatedAt = createdAt.Time
	loc.UpdatedAt = updatedAt.Time

	return &loc, nil
}

// ListLocations возвращает все точки всех брендов.
// Используется для начального наполнения гео-индекса
func (r *Repository) ListLocations(ctx context.Context) ([]*domain.Location, error) {
	query, args, err := psqlbuilder.Select(
		"id", "brand_id", "city", "region", "latitude", "longitude", "timezone", "created_at", "updated_at",
	).
		From("brand_locations").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListLocations - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	locations := make([]*domain.Location, 0)
	for rows.Next() {
		var loc domain.Location
		var createdAt, updatedAt sql.NullTime
		if err := rows.Scan(
			&loc.ID, &loc.BrandID, &loc.City, &loc.Region,
			&loc.Latitude, &loc.Longitude, &loc.Timezone,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: ListLocations - scan row: %v", ErrScanRow, err)
		}
		loc.CreatedAt = createdAt.Time
		loc.UpdatedAt = updatedAt.Time
		locations = append(locations, &loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListLocations - rows error: %v", ErrScanRow, err)
	}

	return locations, nil
}

func scanBrand(row *sql.Row) (*domain.Brand, error) {
	var b domain.Brand
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID, &b.Slug, &b.Name, &b.Category, &b.Timezone, &b.Is24h,
		&createdAt, &updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBrandNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: scan brand: %v", ErrScanRow, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}
