package brand

import (
	"context"
	"database/sql"
)

// DBExecutor минимальный интерфейс над *sql.DB, достаточный репозиторию
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}
