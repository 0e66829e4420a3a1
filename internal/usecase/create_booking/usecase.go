package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/booking"
	courtRepo "github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/court"
	"github.com/m04kA/SMC-CourtBookingService/pkg/metrics"
)

const defaultNotifyTimeout = 5 * time.Second

// UseCase use case для создания бронирования студентом
type UseCase struct {
	bookingRepo  BookingRepository
	courtRepo    CourtRepository
	settingRepo  SettingRepository
	tokens       TokenVerifier
	notifier     Notifier
	metrics      MetricsCollector
	cfg          Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	courtRepo CourtRepository,
	settingRepo SettingRepository,
	tokens TokenVerifier,
	notifier Notifier,
	metrics MetricsCollector,
	cfg Config,
	logger Logger,
) *UseCase {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.NotifyTimeout <= 0 {
		cfg.NotifyTimeout = defaultNotifyTimeout
	}

	return &UseCase{
		bookingRepo:  bookingRepo,
		courtRepo:    courtRepo,
		settingRepo:  settingRepo,
		tokens:       tokens,
		notifier:     notifier,
		metrics:      metrics,
		cfg:          cfg,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Эксклюзивность слота гарантирует уникальный индекс хранилища: из параллельных вставок проходит одна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: court=%s, date=%s, time=%s", req.CourtID, req.Date, req.StartTime)

	// 1. Прием заявок должен быть включен
	enabled, err := uc.settingRepo.GetOrCreate(ctx, domain.SettingBookingEnabled, domain.DefaultBookingEnabled)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read booking setting: %v", err)
		return nil, fmt.Errorf("%w: failed to read booking setting: %v", ErrInternal, err)
	}
	if !enabled {
		uc.reject("bookings disabled")
		return nil, ErrBookingsDisabled
	}

	// 2. Обязательные поля
	if err := validateRequest(req); err != nil {
		uc.reject(err.Error())
		return nil, err
	}

	// 3. Email: синтаксис и домен
	email := domain.NormalizeEmail(req.StudentEmail)
	if err := validateEmail(email, uc.cfg.AllowedEmailDomain); err != nil {
		uc.reject(err.Error())
		return nil, err
	}

	// 4. Токен подтверждения должен быть выдан на этот же email
	verified, err := uc.tokens.VerifyEmailVerification(req.VerificationToken)
	if err != nil || domain.NormalizeEmail(verified) != email {
		uc.reject("email not verified")
		return nil, ErrEmailNotVerified
	}

	// 5. Слот из каталога
	slot, err := domain.ParseSlot(req.StartTime)
	if err != nil {
		uc.reject(fmt.Sprintf("slot %q", req.StartTime))
		return nil, fmt.Errorf("%w: %s", ErrInvalidSlot, req.StartTime)
	}

	// 6. Дата и запас времени на сегодня
	date, err := domain.ParseDate(req.Date)
	if err != nil {
		uc.reject(fmt.Sprintf("date %q", req.Date))
		return nil, fmt.Errorf("%w: %s", ErrInvalidDate, req.Date)
	}

	now := uc.timeProvider.Now()
	if err := validateDate(date, slot, now, uc.cfg); err != nil {
		uc.reject(err.Error())
		return nil, err
	}

	// 7. Корт существует и активен
	court, err := uc.courtRepo.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, courtRepo.ErrCourtNotFound) {
			uc.reject(fmt.Sprintf("court %s not found", req.CourtID))
			return nil, fmt.Errorf("%w: court %s not found", ErrInvalidCourt, req.CourtID)
		}
		uc.logger.Error("CreateBooking: failed to get court id=%s: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}
	if !court.Active {
		uc.reject(fmt.Sprintf("court %s inactive", court.ID))
		return nil, fmt.Errorf("%w: court %s is not active", ErrInvalidCourt, court.ID)
	}

	// 8. Проверка конфликта для понятного сообщения; окончательное решение принимает индекс при вставке
	if err := uc.checkConflict(ctx, court.ID, date, slot); err != nil {
		return nil, err
	}

	// 9. Вставка со статусом pending
	booking := &domain.Booking{
		StudentName:  strings.TrimSpace(req.StudentName),
		StudentEmail: email,
		CourtID:      court.ID,
		BookingDate:  date,
		StartTime:    slot,
		TeamMembers:  strings.TrimSpace(req.TeamMembers),
		Status:       domain.StatusPending,
	}

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// Проиграли гонку: перечитываем, чтобы различить бронь и блокировку
			uc.logger.Warn("CreateBooking: lost insert race for court=%s date=%s slot=%s",
				court.ID, domain.FormatDate(date), slot)
			if cerr := uc.checkConflict(ctx, court.ID, date, slot); cerr != nil {
				return nil, cerr
			}
			uc.metrics.IncBooking(metrics.BookingOutcomeConflict)
			return nil, &SlotTakenError{}
		}
		if errors.Is(err, bookingRepo.ErrCourtNotFound) {
			return nil, fmt.Errorf("%w: court %s not found", ErrInvalidCourt, court.ID)
		}
		uc.logger.Error("CreateBooking: failed to insert booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}
	created.Court = court

	uc.metrics.IncBooking(metrics.BookingOutcomeCreated)
	uc.logger.Info("CreateBooking: created booking id=%s for %s (court=%s, date=%s, time=%s)",
		created.ID, email, court.ID, domain.FormatDate(date), slot)

	// 10. Уведомление не влияет на результат операции
	uc.notifyCreated(ctx, created)

	return &Response{Booking: created}, nil
}

func (uc *UseCase) checkConflict(ctx context.Context, courtID string, date time.Time, slot domain.Slot) error {
	existing, err := uc.bookingRepo.FindConflict(ctx, courtID, date, slot)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to check conflict: %v", err)
		return fmt.Errorf("%w: failed to check conflict: %v", ErrInternal, err)
	}
	if existing == nil {
		return nil
	}

	uc.metrics.IncBooking(metrics.BookingOutcomeConflict)
	uc.logger.Warn("CreateBooking: slot court=%s date=%s time=%s held by booking id=%s (%s)",
		courtID, domain.FormatDate(date), slot, existing.ID, existing.Status)
	return &SlotTakenError{Blocked: existing.IsBlocked()}
}

func (uc *UseCase) notifyCreated(ctx context.Context, booking *domain.Booking) {
	notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.cfg.NotifyTimeout)

	go func() {
		defer cancel()
		if err := uc.notifier.OnCreated(notifyCtx, booking); err != nil {
			uc.logger.Error("CreateBooking: failed to dispatch created notification for booking id=%s: %v", booking.ID, err)
		}
	}()
}

func (uc *UseCase) reject(reason string) {
	uc.metrics.IncBooking(metrics.BookingOutcomeRejected)
	uc.logger.Warn("CreateBooking: rejected: %s", reason)
}
