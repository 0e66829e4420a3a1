package otp

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
)

const (
	keyPrefix         = "otp:"
	cooldownKeyPrefix = "otp_cooldown:"

	fieldHash       = "otp_hash"
	fieldLastSentAt = "last_sent_at"
	fieldExpiresAt  = "expires_at"
)

// Store хранилище кодов подтверждения в Redis
// Запись живет в хеше otp:<email>; TTL ключа равен сроку действия кода плюс grace,
// так что просроченные записи удаляет сам Redis
type Store struct {
	client redis.Cmdable
	grace  time.Duration
}

// NewStore создает хранилище поверх клиента Redis
func NewStore(client redis.Cmdable, grace time.Duration) *Store {
	return &Store{client: client, grace: grace}
}

// Get возвращает запись кода для email
func (s *Store) Get(ctx context.Context, email string) (*domain.VerificationCode, error) {
	values, err := s.client.HGetAll(ctx, key(email)).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - hgetall: %v", ErrStore, err)
	}
	if len(values) == 0 {
		return nil, ErrCodeNotFound
	}

	lastSentAt, err := parseMillis(values[fieldLastSentAt])
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrCorruptRecord, fieldLastSentAt, err)
	}
	expiresAt, err := parseMillis(values[fieldExpiresAt])
	if err != nil {
		return nil, fmt.Errorf("%w: Get - %s: %v", ErrCorruptRecord, fieldExpiresAt, err)
	}

	return &domain.VerificationCode{
		Email:      email,
		CodeHash:   values[fieldHash],
		LastSentAt: lastSentAt,
		ExpiresAt:  expiresAt,
	}, nil
}

// Save заменяет запись для email целиком
func (s *Store) Save(ctx context.Context, code *domain.VerificationCode) error {
	k := key(code.Email)

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, k)
		pipe.HSet(ctx, k,
			fieldHash, code.CodeHash,
			fieldLastSentAt, formatMillis(code.LastSentAt),
			fieldExpiresAt, formatMillis(code.ExpiresAt),
		)
		pipe.ExpireAt(ctx, k, code.ExpiresAt.Add(s.grace))
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Save - pipeline: %v", ErrStore, err)
	}

	return nil
}

// Delete удаляет запись; отсутствие записи ошибкой не считается
func (s *Store) Delete(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, key(email)).Err(); err != nil {
		return fmt.Errorf("%w: Delete - del: %v", ErrStore, err)
	}
	return nil
}

// Consume удаляет запись и сообщает, была ли она удалена именно этим вызовом
// Из параллельных подтверждений одного кода true получает только один
func (s *Store) Consume(ctx context.Context, email string) (bool, error) {
	n, err := s.client.Del(ctx, key(email)).Result()
	if err != nil {
		return false, fmt.Errorf("%w: Consume - del: %v", ErrStore, err)
	}
	return n == 1, nil
}

// AcquireCooldown атомарно занимает паузу между выдачами кодов (SET NX PX)
// Если пауза уже занята, возвращает false и оставшееся время
func (s *Store) AcquireCooldown(ctx context.Context, email string, cooldown time.Duration) (bool, time.Duration, error) {
	k := cooldownKey(email)

	// Ключ может истечь между SETNX и PTTL, тогда пробуем занять его еще раз
	for attempt := 0; attempt < 2; attempt++ {
		acquired, err := s.client.SetNX(ctx, k, 1, cooldown).Result()
		if err != nil {
			return false, 0, fmt.Errorf("%w: AcquireCooldown - setnx: %v", ErrStore, err)
		}
		if acquired {
			return true, 0, nil
		}

		remaining, err := s.client.PTTL(ctx, k).Result()
		if err != nil {
			return false, 0, fmt.Errorf("%w: AcquireCooldown - pttl: %v", ErrStore, err)
		}
		if remaining > 0 {
			return false, remaining, nil
		}
	}
	return false, cooldown, nil
}

// ReleaseCooldown снимает паузу, например если код не удалось отправить
func (s *Store) ReleaseCooldown(ctx context.Context, email string) error {
	if err := s.client.Del(ctx, cooldownKey(email)).Err(); err != nil {
		return fmt.Errorf("%w: ReleaseCooldown - del: %v", ErrStore, err)
	}
	return nil
}

func cooldownKey(email string) string {
	return cooldownKeyPrefix + email
}

func key(email string) string {
	return keyPrefix + email
}

func formatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

func parseMillis(v string) (time.Time, error) {
	ms, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
