package court

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/pgerr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// Repository репозиторий кортов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория кортов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет корт
func (r *Repository) Create(ctx context.Context, court *domain.Court) (*domain.Court, error) {
	if court.ID == "" {
		court.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("courts").
		Columns("id", "name", "type", "active").
		Values(court.ID, court.Name, court.Type, court.Active).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&court.CreatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return court, nil
}

// GetByID получает корт по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Court, error) {
	query, args, err := psqlbuilder.Select("id", "name", "type", "active", "created_at").
		From("courts").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var court domain.Court
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&court.ID,
		&court.Name,
		&court.Type,
		&court.Active,
		&court.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) || pgerr.IsInvalidTextRepresentation(err) {
		return nil, ErrCourtNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan court: %v", ErrScanRow, err)
	}

	return &court, nil
}

// List возвращает корты, отсортированные по названию
// Если onlyActive, выключенные корты не попадают в выборку
func (r *Repository) List(ctx context.Context, onlyActive bool) ([]*domain.Court, error) {
	builder := psqlbuilder.Select("id", "name", "type", "active", "created_at").
		From("courts").
		OrderBy("name ASC")

	if onlyActive {
		builder = builder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	courts := make([]*domain.Court, 0)
	for rows.Next() {
		var court domain.Court
		if err := rows.Scan(&court.ID, &court.Name, &court.Type, &court.Active, &court.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan court: %v", ErrScanRow, err)
		}
		courts = append(courts, &court)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return courts, nil
}
