package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/pkg/pgerr"
	"github.com/m04kA/SMC-CourtBookingService/pkg/psqlbuilder"
)

// ActiveSlotIndex частичный уникальный индекс, обеспечивающий эксклюзивность слота
const ActiveSlotIndex = "bookings_active_slot_uidx"

// bookingColumns колонки бронирования вместе с данными корта
var bookingColumns = []string{
	"b.id",
	"b.student_name",
	"b.student_email",
	"b.court_id",
	"b.booking_date",
	"b.start_time",
	"b.team_members",
	"b.status",
	"b.created_at",
	"b.updated_at",
	"c.name",
	"c.type",
	"c.active",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет бронирование
// Проверка конфликта и запись выполняются одной операцией: уникальный индекс
// bookings_active_slot_uidx отклоняет вторую активную запись на тот же слот
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.ID == "" {
		booking.ID = uuid.NewString()
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"id",
			"student_name",
			"student_email",
			"court_id",
			"booking_date",
			"start_time",
			"team_members",
			"status",
		).
		Values(
			booking.ID,
			booking.StudentName,
			booking.StudentEmail,
			booking.CourtID,
			domain.FormatDate(booking.BookingDate),
			string(booking.StartTime),
			booking.TeamMembers,
			string(booking.Status),
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)

	switch {
	case err == nil:
	case pgerr.IsUniqueViolation(err, ActiveSlotIndex):
		return nil, ErrSlotTaken
	case pgerr.IsForeignKeyViolation(err), pgerr.IsInvalidTextRepresentation(err):
		return nil, ErrCourtNotFound
	default:
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// FindConflict возвращает бронирование, занимающее слот, или nil, если слот свободен
func (r *Repository) FindConflict(ctx context.Context, courtID string, date time.Time, slot domain.Slot) (*domain.Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{
			"b.court_id":     courtID,
			"b.booking_date": domain.FormatDate(date),
			"b.start_time":   string(slot),
		}).
		Where("b.status = ANY(?)", pq.Array(statusStrings(domain.OccupyingStatuses))).
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || pgerr.IsInvalidTextRepresentation(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindConflict - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID вместе с кортом
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(r.db.QueryRowContext(ctx, query, args...))
	// Некорректный uuid для клиента не отличается от отсутствующей записи
	if errors.Is(err, sql.ErrNoRows) || pgerr.IsInvalidTextRepresentation(err) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListByCourtDate возвращает все неотклоненные бронирования корта на дату
func (r *Repository) ListByCourtDate(ctx context.Context, courtID string, date time.Time) ([]*domain.Booking, error) {
	query, args, err := selectBookings().
		Where(squirrel.Eq{
			"b.court_id":     courtID,
			"b.booking_date": domain.FormatDate(date),
		}).
		Where(squirrel.NotEq{"b.status": string(domain.StatusRejected)}).
		OrderBy("b.start_time ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourtDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if pgerr.IsInvalidTextRepresentation(err) {
		return []*domain.Booking{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: ListByCourtDate - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List возвращает бронирования, новые первыми
// Если status не nil, выборка ограничивается этим статусом
func (r *Repository) List(ctx context.Context, status *domain.BookingStatus) ([]*domain.Booking, error) {
	builder := selectBookings().
		OrderBy("b.created_at DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": string(*status)})
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

	return scanBookings(rows)
}

// Transition атомарно меняет статус, если текущий статус входит в from
// Если ни одна строка не изменилась, различает отсутствующую запись и недопустимый переход
func (r *Repository) Transition(ctx context.Context, id string, to domain.BookingStatus, from []domain.BookingStatus) (*domain.Booking, error) {
	if len(from) == 0 {
		return nil, ErrInvalidTransition
	}

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(to)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where("status = ANY(?)", pq.Array(statusStrings(from))).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Transition - build update query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if pgerr.IsInvalidTextRepresentation(err) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Transition - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("%w: Transition - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		// GetByID вернет ErrBookingNotFound для отсутствующей записи
		if _, err := r.GetByID(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrInvalidTransition
	}

	return r.GetByID(ctx, id)
}

// Delete удаляет бронирование, освобождая слот
func (r *Repository) Delete(ctx context.Context, id string) error {
	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if pgerr.IsInvalidTextRepresentation(err) {
		return ErrBookingNotFound
	}
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Join("courts c ON c.id = b.court_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking domain.Booking
		court   domain.Court
		date    time.Time
	)

	err := row.Scan(
		&booking.ID,
		&booking.StudentName,
		&booking.StudentEmail,
		&booking.CourtID,
		&date,
		&booking.StartTime,
		&booking.TeamMembers,
		&booking.Status,
		&booking.CreatedAt,
		&booking.UpdatedAt,
		&court.Name,
		&court.Type,
		&court.Active,
	)
	if err != nil {
		return nil, err
	}

	booking.BookingDate = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	court.ID = booking.CourtID
	booking.Court = &court

	return &booking, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func statusStrings(statuses []domain.BookingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
