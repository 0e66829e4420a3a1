package settings

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/pkg/logger"
)

type memSettings struct {
	mu     sync.Mutex
	values map[string]bool
	err    error
}

func (m *memSettings) GetOrCreate(_ context.Context, key string, def bool) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		m.values[key] = def
		return def, nil
	}
	return v, nil
}

func (m *memSettings) Toggle(_ context.Context, key string, def bool) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	if !ok {
		v = def
	}
	m.values[key] = !v
	return !v, nil
}

func TestGetBookingEnabled_DefaultAndIdempotent(t *testing.T) {
	svc := NewService(&memSettings{values: map[string]bool{}}, logger.NewNop())
	ctx := context.Background()

	first, err := svc.GetBookingEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, first.BookingEnabled)

	second, err := svc.GetBookingEnabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToggle_Involution(t *testing.T) {
	svc := NewService(&memSettings{values: map[string]bool{}}, logger.NewNop())
	ctx := context.Background()

	initial, err := svc.GetBookingEnabled(ctx)
	require.NoError(t, err)

	toggled, err := svc.ToggleBookingEnabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, !initial.BookingEnabled, toggled.BookingEnabled)

	restored, err := svc.ToggleBookingEnabled(ctx)
	require.NoError(t, err)
	assert.Equal(t, initial.BookingEnabled, restored.BookingEnabled)
}

func TestToggle_WithoutPriorRead(t *testing.T) {
	svc := NewService(&memSettings{values: map[string]bool{}}, logger.NewNop())

	toggled, err := svc.ToggleBookingEnabled(context.Background())
	require.NoError(t, err)
	assert.False(t, toggled.BookingEnabled)
}

func TestGetBookingEnabled_RepositoryError(t *testing.T) {
	svc := NewService(&memSettings{values: map[string]bool{}, err: errors.New("db down")}, logger.NewNop())

	_, err := svc.GetBookingEnabled(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
