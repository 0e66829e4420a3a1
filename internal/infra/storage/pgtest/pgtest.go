// Package pgtest поднимает подключение к тестовой PostgreSQL для интеграционных тестов хранилищ.
package pgtest

import (
	"context"
	"database/sql"
	"os"
	"testing"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/migrations"
)

// EnvDSN переменная окружения со строкой подключения к тестовой базе
const EnvDSN = "TEST_POSTGRES_DSN"

// Open подключается к базе из TEST_POSTGRES_DSN, применяет миграции и очищает таблицы
// Без переменной окружения тест пропускается. Пакеты делят одну базу, поэтому запускать с -p 1
func Open(t *testing.T) *sql.DB {
	t.Helper()

	dsn := os.Getenv(EnvDSN)
	if dsn == "" {
		t.Skipf("%s is not set", EnvDSN)
	}

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, db.PingContext(ctx))
	require.NoError(t, migrations.Up(ctx, db))

	_, err = db.ExecContext(ctx, "TRUNCATE bookings, courts, settings, admins CASCADE")
	require.NoError(t, err)

	return db
}

// InsertCourt создает корт напрямую, минуя репозиторий
func InsertCourt(t *testing.T, db *sql.DB, id, name string, active bool) {
	t.Helper()

	_, err := db.ExecContext(context.Background(),
		"INSERT INTO courts (id, name, type, active) VALUES ($1, $2, 'badminton', $3)",
		id, name, active)
	require.NoError(t, err)
}
