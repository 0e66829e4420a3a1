package court

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CourtBookingService/internal/domain"
	"github.com/m04kA/SMC-CourtBookingService/internal/infra/storage/pgtest"
)

func TestRepository_CreateGetList(t *testing.T) {
	db := pgtest.Open(t)
	repo := NewRepository(db)
	ctx := context.Background()

	created, err := repo.Create(ctx, &domain.Court{Name: "Badminton 1", Type: "badminton", Active: true})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	_, err = repo.Create(ctx, &domain.Court{Name: "Archive", Type: "badminton", Active: false})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Badminton 1", got.Name)
	assert.True(t, got.Active)

	active, err := repo.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := repo.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "Archive", all[0].Name)

	_, err = repo.GetByID(ctx, "bad-id")
	assert.ErrorIs(t, err, ErrCourtNotFound)
}
