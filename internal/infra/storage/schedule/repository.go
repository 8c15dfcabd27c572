package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/AjwadDaiki/isopen-service/internal/domain"
	"github.com/AjwadDaiki/isopen-service/pkg/psqlbuilder"
	"github.com/AjwadDaiki/isopen-service/pkg/types"
)

// DBExecutor минимальный интерфейс над *sql.DB, достаточный репозиторию
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxBeginner интерфейс для начала транзакций (реализуется *sql.DB)
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

// Repository репозиторий недельных расписаний, праздников и разовых исключений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписаний
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWeeklyByBrand получает недельное расписание бренда (записи без привязки к точке)
func (r *Repository) GetWeeklyByBrand(ctx context.Context, brandID int64) (domain.WeeklySchedule, error) {
	return r.getWeekly(ctx, squirrel.And{
		squirrel.Eq{"brand_id": brandID},
		squirrel.Eq{"location_id": nil},
	})
}

// GetWeeklyByLocation получает недельное расписание конкретной точки
func (r *Repository) GetWeeklyByLocation(ctx context.Context, locationID int64) (domain.WeeklySchedule, error) {
	return r.getWeekly(ctx, squirrel.Eq{"location_id": locationID})
}

func (r *Repository) getWeekly(ctx context.Context, pred interface{}) (domain.WeeklySchedule, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week", "open_time", "close_time", "is_closed", "spans_midnight",
	).
		From("weekly_hours").
		Where(pred).
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getWeekly - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: getWeekly - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	schedule := make(domain.WeeklySchedule, 0, 7)
	for rows.Next() {
		var (
			entry     domain.DayHours
			openTime  sql.NullString
			closeTime sql.NullString
		)
		if err := rows.Scan(
			&entry.DayOfWeek, &openTime, &closeTime, &entry.IsClosed, &entry.SpansMidnight,
		); err != nil {
			return nil, fmt.Errorf("%w: getWeekly - scan row: %v", ErrScanRow, err)
		}

		if entry.OpenTime, err = parseStoredTime(openTime); err != nil {
			return nil, err
		}
		if entry.CloseTime, err = parseStoredTime(closeTime); err != nil {
			return nil, err
		}

		schedule = append(schedule, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: getWeekly - rows error: %v", ErrScanRow, err)
	}

	return schedule, nil
}

// ReplaceWeeklyForBrand атомарно заменяет недельное расписание бренда
func (r *Repository) ReplaceWeeklyForBrand(ctx context.Context, brandID int64, entries domain.WeeklySchedule) error {
	beginner, ok := r.db.(TxBeginner)
	if !ok {
		return fmt.Errorf("%w: db does not support transactions", ErrTransaction)
	}

	tx, err := beginner.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyForBrand - begin: %v", ErrTransaction, err)
	}
	defer tx.Rollback()

	delQuery, delArgs, err := psqlbuilder.Delete("weekly_hours").
		Where(squirrel.And{
			squirrel.Eq{"brand_id": brandID},
			squirrel.Eq{"location_id": nil},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyForBrand - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := tx.ExecContext(ctx, delQuery, delArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyForBrand - execute delete: %v", ErrExecQuery, err)
	}

	for _, entry := range entries {
		insQuery, insArgs, err := psqlbuilder.Insert("weekly_hours").
			Columns("brand_id", "location_id", "day_of_week", "open_time", "close_time", "is_closed", "spans_midnight").
			Values(
				brandID,
				nil,
				entry.DayOfWeek,
				timeStringValue(entry.OpenTime),
				timeStringValue(entry.CloseTime),
				entry.IsClosed,
				entry.SpansMidnight,
			).
			ToSql()
		if err != nil {
			return fmt.Errorf("%w: ReplaceWeeklyForBrand - build insert query: %v", ErrBuildQuery, err)
		}
		if _, err := tx.ExecContext(ctx, insQuery, insArgs...); err != nil {
			return fmt.Errorf("%w: ReplaceWeeklyForBrand - execute insert: %v", ErrExecQuery, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: ReplaceWeeklyForBrand - commit: %v", ErrTransaction, err)
	}

	return nil
}

// GetHolidayForDate получает праздничное закрытие бренда на локальную дату (YYYY-MM-DD)
func (r *Repository) GetHolidayForDate(ctx context.Context, brandID int64, date string) (*domain.HolidayOverride, error) {
	query, args, err := psqlbuilder.Select("name", "affects_all").
		From("holidays").
		Where(squirrel.And{
			squirrel.Eq{"brand_id": brandID},
			squirrel.Eq{"holiday_date": date},
		}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayForDate - build select query: %v", ErrBuildQuery, err)
	}

	var h domain.HolidayOverride
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&h.Name, &h.AffectsAll)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrHolidayNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetHolidayForDate - scan holiday: %v", ErrScanRow, err)
	}

	return &h, nil
}

// GetSpecialHoursForDate получает разовое исключение на локальную дату.
// Исключение уровня точки приоритетнее исключения уровня бренда
func (r *Repository) GetSpecialHoursForDate(ctx context.Context, brandID int64, locationID *int64, date string) (*domain.DayHours, error) {
	// 1. Сначала исключение конкретной точки
	if locationID != nil {
		hours, err := r.getSpecialHours(ctx, squirrel.And{
			squirrel.Eq{"location_id": *locationID},
			squirrel.Eq{"special_date": date},
		})
		if err == nil {
			return hours, nil
		}
		if !errors.Is(err, ErrSpecialHoursNotFound) {
			return nil, err
		}
	}

	// 2. Затем исключение уровня бренда
	return r.getSpecialHours(ctx, squirrel.And{
		squirrel.Eq{"brand_id": brandID},
		squirrel.Eq{"location_id": nil},
		squirrel.Eq{"special_date": date},
	})
}

func (r *Repository) getSpecialHours(ctx context.Context, pred interface{}) (*domain.DayHours, error) {
	query, args, err := psqlbuilder.Select(
		"day_of_week", "open_time", "close_time", "is_closed", "spans_midnight",
	).
		From("special_hours").
		Where(pred).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialHours - build select query: %v", ErrBuildQuery, err)
	}

	var (
		entry     domain.DayHours
		openTime  sql.NullString
		closeTime sql.NullString
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&entry.DayOfWeek, &openTime, &closeTime, &entry.IsClosed, &entry.SpansMidnight,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSpecialHoursNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getSpecialHours - scan row: %v", ErrScanRow, err)
	}

	if entry.OpenTime, err = parseStoredTime(openTime); err != nil {
		return nil, err
	}
	if entry.CloseTime, err = parseStoredTime(closeTime); err != nil {
		return nil, err
	}

	return &entry, nil
}

// parseStoredTime валидирует строку времени из БД на границе загрузки данных
func parseStoredTime(v sql.NullString) (*types.TimeString, error) {
	if !v.Valid {
		return nil, nil
	}
	ts, err := types.NewTimeStringFromString(v.String)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrMalformedStoredTime, v.String, err)
	}
	return &ts, nil
}

func timeStringValue(ts *types.TimeString) interface{} {
	if ts == nil {
		return nil
	}
	return ts.String()
}
