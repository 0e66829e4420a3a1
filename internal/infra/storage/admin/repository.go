package admin

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

const emailConstraint = "admins_email_key"

// Repository репозиторий администраторов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория администраторов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет администратора с уже посчитанным хешем пароля
func (r *Repository) Create(ctx context.Context, admin *domain.Admin) (*domain.Admin, error) {
	if admin.ID == "" {
		admin.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("admins").
		Columns("id", "email", "password_hash").
		Values(admin.ID, admin.Email, admin.PasswordHash).
		Suffix("RETURNING created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(&admin.CreatedAt)
	if pgerr.IsUniqueViolation(err, emailConstraint) {
		return nil, ErrAdminExists
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return admin, nil
}

// GetByEmail ищет администратора по нормализованному email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	query, args, err := psqlbuilder.Select("id", "email", "password_hash", "created_at").
		From("admins").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var admin domain.Admin
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&admin.ID,
		&admin.Email,
		&admin.PasswordHash,
		&admin.CreatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan admin: %v", ErrScanRow, err)
	}

	return &admin, nil
}
