package setting

import (
	"context"
	"database/sql"
)

// DBExecutor интерфейс для выполнения SQL запросов
type DBExecutor interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}
