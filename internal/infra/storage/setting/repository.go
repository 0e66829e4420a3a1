package setting

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий глобальных булевых настроек
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetOrCreate возвращает значение настройки, создавая ее со значением по умолчанию при отсутствии
// Существующая строка только читается и не блокируется
func (r *Repository) GetOrCreate(ctx context.Context, key string, def bool) (bool, error) {
	value, found, err := r.get(ctx, key)
	if err != nil {
		return false, err
	}
	if found {
		return value, nil
	}

	query, args, err := insertSetting(key, def).
		Suffix("ON CONFLICT (key) DO NOTHING").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: GetOrCreate - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("%w: GetOrCreate - execute insert: %v", ErrExecQuery, err)
	}

	// Строку мог создать или переключить параллельный запрос, поэтому значение читается заново
	value, found, err = r.get(ctx, key)
	if err != nil {
		return false, err
	}
	if !found {
		return false, fmt.Errorf("%w: GetOrCreate - setting %q missing after insert", ErrExecQuery, key)
	}

	return value, nil
}

// Toggle атомарно инвертирует настройку и возвращает новое значение
// Отсутствующая настройка считается равной def, поэтому создается сразу инвертированной
func (r *Repository) Toggle(ctx context.Context, key string, def bool) (bool, error) {
	query, args, err := insertSetting(key, !def).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = NOT settings.value, updated_at = NOW() RETURNING value").
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Toggle - build upsert query: %v", ErrBuildQuery, err)
	}

	var value bool
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&value); err != nil {
		return false, fmt.Errorf("%w: Toggle - execute upsert: %v", ErrExecQuery, err)
	}

	return value, nil
}

func (r *Repository) get(ctx context.Context, key string) (bool, bool, error) {
	query, args, err := psqlbuilder.Select("value").
		From("settings").
		Where(squirrel.Eq{"key": key}).
		ToSql()

	if err != nil {
		return false, false, fmt.Errorf("%w: get - build select query: %v", ErrBuildQuery, err)
	}

	var value bool
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, false, nil
	}
	if err != nil {
		return false, false, fmt.Errorf("%w: get - execute select: %v", ErrExecQuery, err)
	}

	return value, true, nil
}

func insertSetting(key string, value bool) squirrel.InsertBuilder {
	return psqlbuilder.Insert("settings").
		Columns("key", "value").
		Values(key, value)
}
